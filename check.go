package inflect

// CheckDeclension reports whether answer is one of the candidates of the
// cell, ignoring surrounding space, letter case, Unicode composition and
// the ṁ/ṃ spelling of niggahīta. The matched candidate is returned.
func (e *Engine) CheckDeclension(lemma Lemma, cell NounCell, answer string) (Form, bool) {
	return match(e.Decline(lemma, cell).Forms, answer)
}

// CheckConjugation is CheckDeclension for verb cells.
func (e *Engine) CheckConjugation(lemma Lemma, cell VerbCell, answer string) (Form, bool) {
	return match(e.Conjugate(lemma, cell).Forms, answer)
}

// Check decodes a combination id of lemma and checks answer against the
// cell it names.
func (e *Engine) Check(lemma Lemma, id FormID, answer string) (Form, bool) {
	switch id.Class() {
	case Noun:
		d := DecodeDeclension(id)
		if d.LemmaID != lemma.ID {
			return Form{}, false
		}
		return e.CheckDeclension(lemma, d.Cell(), answer)
	case Verb:
		c := DecodeConjugation(id)
		if c.LemmaID != lemma.ID {
			return Form{}, false
		}
		return e.CheckConjugation(lemma, c.Cell(), answer)
	default:
		return Form{}, false
	}
}

func match(forms []Form, answer string) (Form, bool) {
	key := NormalizeForm(answer)
	if key == "" {
		return Form{}, false
	}
	for _, f := range forms {
		if NormalizeForm(f.Form) == key {
			return f, true
		}
	}
	return Form{}, false
}
