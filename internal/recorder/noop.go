package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordLoad(_ *LoadSnapshot) error       { return nil }
func (n *NoopRecorder) RecordEvaluation(_ *Evaluation) error   { return nil }
func (n *NoopRecorder) RecordBasketEvent(_ *BasketEvent) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
