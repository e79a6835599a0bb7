package inflect

// ExpectedTenses are the tenses a present-system verb pattern is expected
// to fill. The aorist is not part of any built-in table.
var ExpectedTenses = []Tense{Present, Imperative, Optative, Future}

// Report lists the gaps of a lemma's paradigm. Noun fields are set for
// noun lemmas, verb fields for verb lemmas.
type Report struct {
	LemmaID LemmaID `json:"lemmaId"`

	// MissingNounCells are the expected noun cells without candidates.
	// Plural-only nouns expect only plural cells, singular-only nouns only
	// singular ones.
	MissingNounCells []NounCell `json:"missingNounCells,omitempty"`
	PluralOnly       bool       `json:"pluralOnly,omitempty"`
	// SingularOnly is set for nouns that have singular forms but no plural
	// ones and are not declared plural-only.
	SingularOnly bool `json:"singularOnly,omitempty"`

	// MissingTenses are expected tenses without any form in either voice.
	MissingTenses []Tense `json:"missingTenses,omitempty"`
	// MissingVerbCells are the active cells of the expected tenses
	// without candidates.
	MissingVerbCells []VerbCell `json:"missingVerbCells,omitempty"`
	// Impersonal is set when the only person with forms is the third.
	Impersonal bool `json:"impersonal,omitempty"`
	// DefectivePersons maps a tense that has some persons but not all to
	// the persons it lacks. Impersonal verbs report no defective persons.
	DefectivePersons map[Tense][]Person `json:"defectivePersons,omitempty"`
	HasReflexive     bool               `json:"hasReflexive,omitempty"`
}

// Complete reports whether the paradigm has no gaps. Plural-only and
// singular-only nouns are not complete even when every expected cell is
// filled.
func (r Report) Complete() bool {
	return len(r.MissingNounCells) == 0 && !r.PluralOnly && !r.SingularOnly &&
		len(r.MissingTenses) == 0 && len(r.MissingVerbCells) == 0 &&
		!r.Impersonal && len(r.DefectivePersons) == 0
}

// Completeness checks the computed paradigm of lemma for missing cells,
// tenses and persons.
func (e *Engine) Completeness(lemma Lemma) Report {
	switch lemma.Class() {
	case Noun:
		p, ok := lemma.NounPattern()
		if !ok || !p.valid() {
			return Report{LemmaID: lemma.ID}
		}
		return nounReport(lemma.ID, p.IsPluralOnly(), e.Declensions(lemma))
	case Verb:
		return verbReport(lemma.ID, e.Conjugations(lemma))
	default:
		return Report{LemmaID: lemma.ID}
	}
}

func nounReport(id LemmaID, pluralOnly bool, cells []Declension) Report {
	r := Report{LemmaID: id, PluralOnly: pluralOnly}
	filled := make(map[NounCell]bool)
	var hasSg, hasPl bool
	for _, d := range cells {
		if len(d.Forms) == 0 {
			continue
		}
		filled[d.Cell] = true
		switch d.Cell.Number {
		case Singular:
			hasSg = true
		case Plural:
			hasPl = true
		}
	}
	r.SingularOnly = hasSg && !hasPl && !pluralOnly
	for _, d := range cells {
		if filled[d.Cell] {
			continue
		}
		if pluralOnly && d.Cell.Number == Singular || r.SingularOnly && d.Cell.Number == Plural {
			continue
		}
		r.MissingNounCells = append(r.MissingNounCells, d.Cell)
	}
	return r
}

func verbReport(id LemmaID, cells []Conjugation) Report {
	r := Report{LemmaID: id}
	tenses := make(map[Tense]bool)
	persons := make(map[Person]bool)
	personsByTense := make(map[Tense]map[Person]bool)
	active := make(map[VerbCell]bool)
	for _, c := range cells {
		if len(c.Forms) == 0 {
			continue
		}
		tenses[c.Cell.Tense] = true
		persons[c.Cell.Person] = true
		if personsByTense[c.Cell.Tense] == nil {
			personsByTense[c.Cell.Tense] = make(map[Person]bool)
		}
		personsByTense[c.Cell.Tense][c.Cell.Person] = true
		if c.Cell.Voice == Active {
			active[c.Cell] = true
		} else {
			r.HasReflexive = true
		}
	}
	r.Impersonal = len(persons) == 1 && persons[Third]

	for _, t := range ExpectedTenses {
		if !tenses[t] {
			r.MissingTenses = append(r.MissingTenses, t)
		}
		if found := personsByTense[t]; len(found) > 0 && !r.Impersonal {
			var missing []Person
			for _, p := range Persons {
				if !found[p] {
					missing = append(missing, p)
				}
			}
			if len(missing) > 0 {
				if r.DefectivePersons == nil {
					r.DefectivePersons = make(map[Tense][]Person)
				}
				r.DefectivePersons[t] = missing
			}
		}
		for _, p := range Persons {
			for _, n := range Numbers {
				cell := VerbCell{Tense: t, Person: p, Number: n, Voice: Active}
				if !active[cell] {
					r.MissingVerbCells = append(r.MissingVerbCells, cell)
				}
			}
		}
	}
	return r
}
