package inflect

// Declensions computes the sixteen cells of a noun lemma in its own gender,
// case-major. Verb lemmas yield nil.
func (e *Engine) Declensions(lemma Lemma) []Declension {
	p, ok := lemma.NounPattern()
	if !ok || !p.valid() {
		return nil
	}
	g := p.Gender()
	out := make([]Declension, 0, len(Cases)*len(Numbers))
	for _, c := range Cases {
		for _, n := range Numbers {
			out = append(out, e.Decline(lemma, NounCell{Case: c, Gender: g, Number: n}))
		}
	}
	return out
}

// Conjugations computes the sixty tense×person×number×voice cells of a
// verb lemma for the active and reflexive voices. Cells the pattern does
// not cover (aorist, missing reflexive) are returned without forms.
func (e *Engine) Conjugations(lemma Lemma) []Conjugation {
	if _, ok := lemma.VerbPattern(); !ok {
		return nil
	}
	out := make([]Conjugation, 0, len(Tenses)*len(Persons)*len(Numbers)*len(ParadigmVoices))
	for _, t := range Tenses {
		for _, v := range ParadigmVoices {
			for _, p := range Persons {
				for _, n := range Numbers {
					out = append(out, e.Conjugate(lemma, VerbCell{Tense: t, Person: p, Number: n, Voice: v}))
				}
			}
		}
	}
	return out
}

// HasReflexive reports whether any reflexive cell of a verb lemma has
// candidates.
func (e *Engine) HasReflexive(lemma Lemma) bool {
	if _, ok := lemma.VerbPattern(); !ok {
		return false
	}
	for _, t := range Tenses {
		for _, p := range Persons {
			for _, n := range Numbers {
				c := e.Conjugate(lemma, VerbCell{Tense: t, Person: p, Number: n, Voice: Reflexive})
				if len(c.Forms) > 0 {
					return true
				}
			}
		}
	}
	return false
}

// Practicable returns the combination ids of the cells of lemma that have
// a primary form, in paradigm order. Only these are offered for drilling.
func (e *Engine) Practicable(lemma Lemma) []FormID {
	var out []FormID
	switch lemma.Class() {
	case Noun:
		for _, d := range e.Declensions(lemma) {
			if _, ok := d.Primary(); ok {
				out = append(out, d.ID())
			}
		}
	case Verb:
		for _, c := range e.Conjugations(lemma) {
			if _, ok := c.Primary(); ok {
				out = append(out, c.ID())
			}
		}
	}
	return out
}
