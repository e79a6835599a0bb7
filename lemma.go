package inflect

import (
	"fmt"
	"strconv"
	"strings"
)

// Lemma is a dictionary headword together with its inflection pattern.
// Lemmas are values and are never modified after loading.
type Lemma struct {
	// ID places the lemma in the noun or verb id range.
	ID LemmaID
	// Word is the citation form, e.g. "dhamma".
	Word string
	// Stem is the cleaned stem endings are appended to. For a lemma with
	// an Irregular pattern it is the prefix put before the full forms.
	Stem string
	// Pattern is a NounPattern or a VerbPattern.
	Pattern Pattern
	// Gloss is an optional short English meaning.
	Gloss string
}

// Class is the word class of the lemma's pattern.
func (l Lemma) Class() WordClass {
	if l.Pattern == nil {
		return UnknownClass
	}
	return l.Pattern.Class()
}

// NounPattern returns the lemma's pattern if it is a noun pattern.
func (l Lemma) NounPattern() (NounPattern, bool) {
	p, ok := l.Pattern.(NounPattern)
	return p, ok
}

// VerbPattern returns the lemma's pattern if it is a verb pattern.
func (l Lemma) VerbPattern() (VerbPattern, bool) {
	p, ok := l.Pattern.(VerbPattern)
	return p, ok
}

// Gender of a noun lemma, GenderNone for verbs.
func (l Lemma) Gender() Gender {
	if p, ok := l.NounPattern(); ok {
		return p.Gender()
	}
	return GenderNone
}

func (l Lemma) String() string {
	return fmt.Sprintf("%s (%d, %s)", l.Word, l.ID, l.Pattern)
}

// NewLemma checks that id and pattern agree on the word class.
func NewLemma(id LemmaID, word, stem string, p Pattern, gloss string) (Lemma, error) {
	if id.Class() == UnknownClass {
		return Lemma{}, fmt.Errorf("lemma %d: %w", id, ErrInvalidLemmaID)
	}
	if p == nil || id.Class() != p.Class() {
		return Lemma{}, fmt.Errorf("lemma %d is a %s id but pattern %v is not: %w", id, id.Class(), p, ErrWordClassMismatch)
	}
	return Lemma{
		ID:      id,
		Word:    NFC(strings.TrimSpace(word)),
		Stem:    CleanStem(stem),
		Pattern: p,
		Gloss:   strings.TrimSpace(gloss),
	}, nil
}

// parseLemmaLine reads one lexicon line:
//
//	lemmaId|word|stem|pattern[|gloss]
func parseLemmaLine(line string) (Lemma, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 4 || len(fields) > 5 {
		return Lemma{}, fmt.Errorf("%d fields: %w", len(fields), ErrMalformedLine)
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Lemma{}, fmt.Errorf("lemma id %q: %w", fields[0], ErrInvalidLemmaID)
	}
	p, err := ParsePattern(fields[3])
	if err != nil {
		return Lemma{}, err
	}
	var gloss string
	if len(fields) == 5 {
		gloss = fields[4]
	}
	return NewLemma(LemmaID(n), fields[1], fields[2], p, gloss)
}
