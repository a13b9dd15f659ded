package recorder

import "time"

// LoadSnapshot records one successful feed load.
type LoadSnapshot struct {
	Source      string
	ParsedCount int
	Duration    time.Duration
}

// Evaluation records one suitability scoring result.
type Evaluation struct {
	FundID   int
	FundName string
	Score    int
	Label    string
}

// BasketEvent records a basket mutation.
type BasketEvent struct {
	Action string // "ADD", "REMOVE", "REJECT"
	FundID int
	Count  int
}

// Recorder persists history for later analysis.
type Recorder interface {
	RecordLoad(snap *LoadSnapshot) error
	RecordEvaluation(evt *Evaluation) error
	RecordBasketEvent(evt *BasketEvent) error
	Close() error
}
