package inflect

import "fmt"

// LemmaID identifies a lemma. Nouns and verbs use disjoint ranges so the
// word class of a FormID follows from its magnitude.
type LemmaID int

const (
	FirstNounLemmaID LemmaID = 10001
	LastNounLemmaID  LemmaID = 69999
	FirstVerbLemmaID LemmaID = 70001
	LastVerbLemmaID  LemmaID = 99999
)

// Class reports the word class implied by the id range.
func (id LemmaID) Class() WordClass {
	switch {
	case id >= FirstNounLemmaID && id <= LastNounLemmaID:
		return Noun
	case id >= FirstVerbLemmaID && id <= LastVerbLemmaID:
		return Verb
	default:
		return UnknownClass
	}
}

// Field weights of the decimal encodings.
//
//	noun: LemmaId×10⁴ + Case×10³ + Gender×10² + Number×10 + EndingId
//	verb: LemmaId×10⁵ + Tense×10⁴ + Person×10³ + Number×10² + Voice×10 + EndingId
const (
	nounLemmaWeight = 10_000
	verbLemmaWeight = 100_000
)

// FormID is the persisted identifier of a cell (EndingID 0) or of one
// candidate spelling in it (EndingID 1-9).
type FormID int64

// Class tells noun ids (9 digits) from verb ids (10 digits).
func (id FormID) Class() WordClass {
	switch {
	case LemmaID(id/nounLemmaWeight).Class() == Noun:
		return Noun
	case LemmaID(id/verbLemmaWeight).Class() == Verb:
		return Verb
	default:
		return UnknownClass
	}
}

// EndingID is the lowest digit.
func (id FormID) EndingID() int {
	return int(id % 10)
}

// Combination drops the EndingID, yielding the key shared by all
// candidates of the same cell.
func (id FormID) Combination() FormID {
	return id - id%10
}

// WithEnding replaces the EndingID digit.
func (id FormID) WithEnding(endingID int) FormID {
	return id.Combination() + FormID(endingID)
}

// DeclensionID is the decoded form of a noun FormID.
type DeclensionID struct {
	LemmaID  LemmaID
	Case     Case
	Gender   Gender
	Number   Number
	EndingID int
}

// Encode does not validate its fields; every axis fits one digit and no
// cell holds more than nine candidates.
func (d DeclensionID) Encode() FormID {
	return FormID(d.LemmaID)*nounLemmaWeight +
		FormID(d.Case)*1000 +
		FormID(d.Gender)*100 +
		FormID(d.Number)*10 +
		FormID(d.EndingID)
}

func (d DeclensionID) Cell() NounCell {
	return NounCell{Case: d.Case, Gender: d.Gender, Number: d.Number}
}

func (d DeclensionID) String() string {
	return fmt.Sprintf("%d/%s/%s/%s/%d", d.LemmaID, d.Case, d.Gender, d.Number, d.EndingID)
}

// DecodeDeclension splits a noun FormID into its fields.
func DecodeDeclension(id FormID) DeclensionID {
	return DeclensionID{
		LemmaID:  LemmaID(id / nounLemmaWeight),
		Case:     Case(id / 1000 % 10),
		Gender:   Gender(id / 100 % 10),
		Number:   Number(id / 10 % 10),
		EndingID: int(id % 10),
	}
}

// ConjugationID is the decoded form of a verb FormID.
type ConjugationID struct {
	LemmaID  LemmaID
	Tense    Tense
	Person   Person
	Number   Number
	Voice    Voice
	EndingID int
}

func (c ConjugationID) Encode() FormID {
	return FormID(c.LemmaID)*verbLemmaWeight +
		FormID(c.Tense)*10_000 +
		FormID(c.Person)*1000 +
		FormID(c.Number)*100 +
		FormID(c.Voice)*10 +
		FormID(c.EndingID)
}

func (c ConjugationID) Cell() VerbCell {
	return VerbCell{Tense: c.Tense, Person: c.Person, Number: c.Number, Voice: c.Voice}
}

func (c ConjugationID) String() string {
	return fmt.Sprintf("%d/%s/%s/%s/%s/%d", c.LemmaID, c.Tense, c.Person, c.Number, c.Voice, c.EndingID)
}

// DecodeConjugation splits a verb FormID into its fields.
func DecodeConjugation(id FormID) ConjugationID {
	return ConjugationID{
		LemmaID:  LemmaID(id / verbLemmaWeight),
		Tense:    Tense(id / 10_000 % 10),
		Person:   Person(id / 1000 % 10),
		Number:   Number(id / 100 % 10),
		Voice:    Voice(id / 10 % 10),
		EndingID: int(id % 10),
	}
}
