package inflect

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPatternLabel is matched by every *UnknownPatternLabelError.
	ErrUnknownPatternLabel = errors.New("unknown pattern label")

	// ErrInvalidLemmaID is returned for ids outside both the noun and the
	// verb range.
	ErrInvalidLemmaID = errors.New("lemma id outside noun and verb ranges")

	// ErrWordClassMismatch is returned when a lemma id range and its
	// pattern disagree on the word class.
	ErrWordClassMismatch = errors.New("lemma id and pattern word class differ")

	ErrMalformedLine = errors.New("malformed lexicon line")
)

// UnknownPatternLabelError reports a dictionary label missing from the
// catalog. Callers usually log it and skip the lemma.
type UnknownPatternLabelError struct {
	Label string
}

func (e *UnknownPatternLabelError) Error() string {
	return fmt.Sprintf("unknown pattern label %q", e.Label)
}

func (e *UnknownPatternLabelError) Is(target error) bool {
	return target == ErrUnknownPatternLabel
}
