package domain

import "context"

// SourcePort yields records in input order and io.EOF when exhausted
type SourcePort interface {
	Next() (Record, error)
}

// SinkPort receives outcomes in input order, one chunk at a time
type SinkPort interface {
	Write(ctx context.Context, b Batch, outs []Outcome) error
}

// RunnerPort classifies a whole source into a sink
type RunnerPort interface {
	Run(ctx context.Context, src SourcePort, sink SinkPort) (Summary, error)
}

// ClassifierPort classifies records already in memory
type ClassifierPort interface {
	ClassifyAll(ctx context.Context, recs []Record) (Batch, []Outcome, error)
}

// SinkFunc adapts a function to SinkPort
type SinkFunc func(ctx context.Context, b Batch, outs []Outcome) error

// Write calls f
func (f SinkFunc) Write(ctx context.Context, b Batch, outs []Outcome) error { return f(ctx, b, outs) }
