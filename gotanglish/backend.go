package gotanglish

import "context"

// Backend is an optional source of higher-quality transliterations consulted
// before the rule transducer. A typical implementation wraps a remote
// service or a trained model; the learnings dictionary is the built-in one.
//
// Implementations must not panic across this interface. An internal failure
// is returned as an error; the pipeline turns it into a diagnostic note and
// carries on with the remaining sources. Returning ("", nil) means the
// backend has nothing to offer for this input.
type Backend interface {
	// ID identifies the backend in diagnostic notes.
	ID() string

	// Attempt returns at most one Tamil rendering of text. scheme names
	// the romanization convention the caller claims text follows;
	// backends are free to ignore it.
	Attempt(ctx context.Context, text string, scheme string) (string, error)
}

// RegisterBackend appends a backend to the pipeline. Backends run in
// registration order and their candidates outrank transducer output.
func (tanglish *Tanglish) RegisterBackend(backend Backend) {
	tanglish.backends = append(tanglish.backends, backend)
}
