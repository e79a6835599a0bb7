package inflect

// maxCandidates is the largest EndingID a FormID can carry.
const maxCandidates = 9

// Form is one candidate spelling of a paradigm cell.
type Form struct {
	// Form is the full surface form, stem included.
	Form string `json:"form"`
	// Ending is the part appended to the stem; for Irregular patterns it
	// is the whole listed form.
	Ending string `json:"ending"`
	// EndingID is the 1-based position of the ending in the cell's
	// declared list.
	EndingID int    `json:"endingId"`
	InCorpus bool   `json:"inCorpus"`
	ID       FormID `json:"formId"`
}

// Declension holds the candidates of one noun cell.
type Declension struct {
	LemmaID LemmaID
	Cell    NounCell
	Forms   []Form
}

// ID is the combination FormID of the cell (EndingID 0).
func (d Declension) ID() FormID {
	return DeclensionID{LemmaID: d.LemmaID, Case: d.Cell.Case, Gender: d.Cell.Gender, Number: d.Cell.Number}.Encode()
}

// Primary returns the canonical form of the cell.
func (d Declension) Primary() (Form, bool) {
	return primary(d.Forms)
}

// Conjugation holds the candidates of one verb cell.
type Conjugation struct {
	LemmaID LemmaID
	Cell    VerbCell
	Forms   []Form
}

func (c Conjugation) ID() FormID {
	return ConjugationID{LemmaID: c.LemmaID, Tense: c.Cell.Tense, Person: c.Cell.Person, Number: c.Cell.Number, Voice: c.Cell.Voice}.Encode()
}

// Primary returns the canonical form of the cell.
func (c Conjugation) Primary() (Form, bool) {
	return primary(c.Forms)
}

// primary prefers the first declared candidate when the corpus attests it,
// otherwise the first attested one. Unattested cells have no primary form.
func primary(forms []Form) (Form, bool) {
	for _, f := range forms {
		if f.EndingID == 1 && f.InCorpus {
			return f, true
		}
	}
	for _, f := range forms {
		if f.InCorpus {
			return f, true
		}
	}
	return Form{}, false
}

// Decline computes one noun cell of lemma. Verb lemmas and cells whose
// gender differs from the pattern's gender have no candidates.
func (e *Engine) Decline(lemma Lemma, cell NounCell) Declension {
	d := Declension{LemmaID: lemma.ID, Cell: cell}
	p, ok := lemma.NounPattern()
	if !ok || !p.valid() || cell.Gender != p.Gender() {
		return d
	}
	var endings []string
	if p.Kind() == Irregular {
		endings = IrregularNounForms(p, cell.Case, cell.Number)
		if len(endings) == 0 && e.fallback != nil {
			endings = e.fallback.NounForms(p, cell.Case, cell.Number)
		}
	} else {
		endings = NounEndings(p, cell.Case, cell.Number)
	}
	base := d.ID()
	d.Forms = e.candidates(lemma.Stem, endings, base)
	return d
}

// Conjugate computes one verb cell of lemma.
func (e *Engine) Conjugate(lemma Lemma, cell VerbCell) Conjugation {
	c := Conjugation{LemmaID: lemma.ID, Cell: cell}
	p, ok := lemma.VerbPattern()
	if !ok || !p.valid() {
		return c
	}
	var endings []string
	if p.Kind() == Irregular {
		endings = IrregularVerbForms(p, cell.Tense, cell.Person, cell.Number, cell.Voice)
		if len(endings) == 0 && e.fallback != nil {
			endings = e.fallback.VerbForms(p, cell.Tense, cell.Person, cell.Number, cell.Voice)
		}
	} else {
		endings = VerbEndings(p, cell.Tense, cell.Person, cell.Number, cell.Voice)
	}
	c.Forms = e.candidates(lemma.Stem, endings, c.ID())
	return c
}

// candidates joins stem and endings. Each candidate keeps the 1-based
// position of its ending in the declared list as its EndingID, so empty
// slots and repeated spellings are skipped without renumbering the rest.
// Positions past maxCandidates cannot be encoded and are dropped.
func (e *Engine) candidates(stem string, endings []string, base FormID) []Form {
	var out []Form
	seen := make(map[string]bool)
	for i, end := range endings {
		pos := i + 1
		if pos > maxCandidates {
			break
		}
		if end == "" {
			continue
		}
		form := NFC(stem + end)
		if seen[form] {
			continue
		}
		seen[form] = true
		id := base.WithEnding(pos)
		out = append(out, Form{
			Form:     form,
			Ending:   end,
			EndingID: pos,
			InCorpus: e.corpus.Attested(id),
			ID:       id,
		})
	}
	return out
}
