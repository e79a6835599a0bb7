// Package inflect generates the inflected forms of Pali nouns and verbs
// from a fixed catalog of dictionary patterns, identifies every paradigm
// cell and candidate spelling by a reversible numeric FormID, and picks the
// form to present as canonical according to corpus attestation.
package inflect

// Engine combines lemmas with the pattern tables. An Engine is immutable
// after NewEngine returns and is safe for concurrent use.
type Engine struct {
	corpus   Attestation
	fallback IrregularSource
}

// Option configures an Engine.
type Option func(*Engine)

// WithFallback makes the engine consult src for Irregular pattern cells
// the built-in tables leave empty.
func WithFallback(src IrregularSource) Option {
	return func(e *Engine) {
		e.fallback = src
	}
}

// NewEngine returns an engine tagging candidates with corpus. A nil corpus
// attests nothing, so no cell has a primary form.
func NewEngine(corpus Attestation, opts ...Option) *Engine {
	e := &Engine{corpus: corpus}
	if e.corpus == nil {
		e.corpus = noAttestation{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
