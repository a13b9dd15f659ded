package feed

import (
	"encoding/json"
	"fmt"
	"strings"
)

// gvizPayload mirrors the spreadsheet response: a column list with labels and
// rows of cells, where V is the typed value and F an optional formatted
// display string.
type gvizPayload struct {
	Table struct {
		Cols []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"cols"`
		Rows []struct {
			C []*Cell `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

// Cell is one spreadsheet cell.
type Cell struct {
	V any    `json:"v"`
	F string `json:"f"`
}

// unwrapEnvelope strips the callback wrapper `<prefix>(<json>);` around the
// payload. The prefix varies between responses, so everything up to the first
// opening parenthesis is discarded.
func unwrapEnvelope(raw string) (string, error) {
	open := strings.Index(raw, "(")
	close_ := strings.LastIndex(raw, ")")
	if open < 0 || close_ <= open {
		return "", fmt.Errorf("%w: no callback envelope", ErrParse)
	}
	return raw[open+1 : close_], nil
}

// decodePayload unwraps and decodes a raw feed response.
func decodePayload(raw string) (*gvizPayload, error) {
	body, err := unwrapEnvelope(raw)
	if err != nil {
		return nil, err
	}
	var payload gvizPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &payload, nil
}
