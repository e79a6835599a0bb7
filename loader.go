package inflect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Lexicon is an in-memory set of lemmas read from a lexicon file.
// It is not modified after loading and may be shared between goroutines.
type Lexicon struct {
	byID   map[LemmaID]Lemma
	byWord map[string][]LemmaID
	order  []LemmaID
}

func newLexicon() *Lexicon {
	return &Lexicon{
		byID:   make(map[LemmaID]Lemma),
		byWord: make(map[string][]LemmaID),
	}
}

// LoadLexicon reads a lexicon file. See ReadLexicon for the format.
func LoadLexicon(path string, logger zerolog.Logger) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	lex, err := ReadLexicon(f, logger)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return lex, nil
}

// ReadLexicon parses lines of the form
//
//	lemmaId|word|stem|pattern[|gloss]
//
// Lines starting with "!" are comments. Lines with an unknown pattern
// label, an id outside both ranges, a word class mismatch or a duplicate
// id are logged and skipped; only I/O errors abort loading.
func ReadLexicon(r io.Reader, logger zerolog.Logger) (*Lexicon, error) {
	lex := newLexicon()
	sc := bufio.NewScanner(r)
	var lineNo, skipped int
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		lemma, err := parseLemmaLine(line)
		if err != nil {
			skipped++
			logger.Warn().Err(err).Int("line", lineNo).Str("content", line).Msg("skipping lexicon line")
			continue
		}
		if _, dup := lex.byID[lemma.ID]; dup {
			skipped++
			logger.Warn().Int("line", lineNo).Int("lemmaId", int(lemma.ID)).Msg("skipping duplicate lemma id")
			continue
		}
		lex.add(lemma)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	logger.Info().
		Int("lemmas", lex.Len()).
		Int("nouns", len(lex.Nouns())).
		Int("verbs", len(lex.Verbs())).
		Int("skipped", skipped).
		Msg("lexicon loaded")
	return lex, nil
}

type stemGender struct {
	stem   string
	gender Gender
}

// DropRedundantPlurals removes plural-only noun lemmas whose forms all
// occur in the plural cells of a singular lemma with the same cleaned stem
// and gender, and returns them ordered by id. Plural-only lemmas without
// such a match are kept as pluralia tantum. It must run before the lexicon
// is shared.
func (lex *Lexicon) DropRedundantPlurals(e *Engine, logger zerolog.Logger) []Lemma {
	plurals := make(map[stemGender][]Lemma)
	var pluralOnly []Lemma
	for _, l := range lex.Nouns() {
		p, _ := l.NounPattern()
		if !p.valid() {
			continue
		}
		if p.IsPluralOnly() {
			pluralOnly = append(pluralOnly, l)
			continue
		}
		key := stemGender{stem: CleanStem(l.Stem), gender: p.Gender()}
		plurals[key] = append(plurals[key], l)
	}

	var dropped []Lemma
	for _, l := range pluralOnly {
		forms := declinedForms(e, l, Plural)
		if len(forms) == 0 {
			continue
		}
		key := stemGender{stem: CleanStem(l.Stem), gender: l.Gender()}
		for _, sg := range plurals[key] {
			if !subset(forms, declinedForms(e, sg, Plural)) {
				continue
			}
			logger.Debug().
				Int("lemmaId", int(l.ID)).
				Str("word", l.Word).
				Int("matchedId", int(sg.ID)).
				Msg("dropping redundant plural-only lemma")
			lex.remove(l.ID)
			dropped = append(dropped, l)
			break
		}
	}
	logger.Info().
		Int("redundant", len(dropped)).
		Int("pluralOnly", len(pluralOnly)-len(dropped)).
		Msg("plural-only lemmas checked")
	return dropped
}

// declinedForms collects the spellings of all cells of lemma in number n.
func declinedForms(e *Engine, lemma Lemma, n Number) map[string]bool {
	out := make(map[string]bool)
	for _, d := range e.Declensions(lemma) {
		if d.Cell.Number != n {
			continue
		}
		for _, f := range d.Forms {
			out[f.Form] = true
		}
	}
	return out
}

func subset(a, b map[string]bool) bool {
	for s := range a {
		if !b[s] {
			return false
		}
	}
	return true
}

func (lex *Lexicon) remove(id LemmaID) {
	l, ok := lex.byID[id]
	if !ok {
		return
	}
	delete(lex.byID, id)
	key := NormalizeForm(l.Word)
	lex.byWord[key] = slices.DeleteFunc(lex.byWord[key], func(x LemmaID) bool { return x == id })
	if len(lex.byWord[key]) == 0 {
		delete(lex.byWord, key)
	}
	lex.order = slices.DeleteFunc(lex.order, func(x LemmaID) bool { return x == id })
}

func (lex *Lexicon) add(l Lemma) {
	lex.byID[l.ID] = l
	key := NormalizeForm(l.Word)
	lex.byWord[key] = append(lex.byWord[key], l.ID)
	lex.order = append(lex.order, l.ID)
}

// Len is the number of loaded lemmas.
func (lex *Lexicon) Len() int {
	return len(lex.order)
}

// Lemma looks up a lemma by id.
func (lex *Lexicon) Lemma(id LemmaID) (Lemma, bool) {
	l, ok := lex.byID[id]
	return l, ok
}

// Find returns all lemmas with the given citation form, in file order.
// The comparison ignores case and niggahīta spelling.
func (lex *Lexicon) Find(word string) []Lemma {
	ids := lex.byWord[NormalizeForm(word)]
	out := make([]Lemma, 0, len(ids))
	for _, id := range ids {
		out = append(out, lex.byID[id])
	}
	return out
}

// Nouns returns noun lemmas ordered by id.
func (lex *Lexicon) Nouns() []Lemma {
	return lex.ofClass(Noun)
}

// Verbs returns verb lemmas ordered by id.
func (lex *Lexicon) Verbs() []Lemma {
	return lex.ofClass(Verb)
}

func (lex *Lexicon) ofClass(c WordClass) []Lemma {
	var out []Lemma
	for _, id := range lex.order {
		if l := lex.byID[id]; l.Class() == c {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b Lemma) int {
		return int(a.ID - b.ID)
	})
	return out
}
