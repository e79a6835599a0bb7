package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var natthi = Lemma{ID: 70130, Word: "natthi", Stem: "", Pattern: NatthiPr}

func TestCompletenessNatthi(t *testing.T) {
	r := NewEngine(nil).Completeness(natthi)
	assert.False(t, r.Complete())
	assert.Equal(t, LemmaID(70130), r.LemmaID)
	assert.Equal(t, []Tense{Optative, Future}, r.MissingTenses)
	assert.False(t, r.Impersonal)
	assert.False(t, r.HasReflexive)
	assert.Equal(t, map[Tense][]Person{Imperative: {First, Second}}, r.DefectivePersons)

	require.Len(t, r.MissingVerbCells, 19)
	assert.Equal(t, []VerbCell{
		{Tense: Present, Person: First, Number: Plural, Voice: Active},
		{Tense: Present, Person: Second, Number: Plural, Voice: Active},
		{Tense: Imperative, Person: First, Number: Singular, Voice: Active},
		{Tense: Imperative, Person: First, Number: Plural, Voice: Active},
		{Tense: Imperative, Person: Second, Number: Singular, Voice: Active},
		{Tense: Imperative, Person: Second, Number: Plural, Voice: Active},
		{Tense: Imperative, Person: Third, Number: Plural, Voice: Active},
	}, r.MissingVerbCells[:7])
	assert.Empty(t, r.MissingNounCells)
}

func TestCompletenessHoti(t *testing.T) {
	r := NewEngine(nil).Completeness(hoti)
	assert.True(t, r.Complete())
	assert.False(t, r.HasReflexive)
	assert.Empty(t, r.MissingTenses)
	assert.Empty(t, r.MissingVerbCells)
	assert.Nil(t, r.DefectivePersons)

	assert.True(t, NewEngine(nil).Completeness(gacchati).HasReflexive)
}

func TestCompletenessImpersonal(t *testing.T) {
	var cells []Conjugation
	for _, c := range NewEngine(nil).Conjugations(gacchati) {
		if c.Cell.Person != Third {
			c.Forms = nil
		}
		cells = append(cells, c)
	}
	r := verbReport(gacchati.ID, cells)
	assert.True(t, r.Impersonal)
	assert.Nil(t, r.DefectivePersons)
	assert.Empty(t, r.MissingTenses)
	assert.Len(t, r.MissingVerbCells, 16)
	assert.False(t, r.Complete())
}

func TestCompletenessNouns(t *testing.T) {
	e := NewEngine(nil)
	assert.True(t, e.Completeness(dhamma).Complete())
	assert.True(t, e.Completeness(rajaEx).Complete())

	plOnly := e.Completeness(Lemma{ID: 10850, Word: "pāṇā", Stem: "pāṇ", Pattern: AMascPl})
	assert.True(t, plOnly.PluralOnly)
	assert.False(t, plOnly.SingularOnly)
	assert.Empty(t, plOnly.MissingNounCells)
	assert.False(t, plOnly.Complete())

	assert.Equal(t, Report{LemmaID: 10851}, e.Completeness(Lemma{ID: 10851, Pattern: NounPatternNone}))
}

func TestCompletenessSingularOnly(t *testing.T) {
	accSg := NounCell{Case: Accusative, Gender: Masculine, Number: Singular}
	var cells []Declension
	for _, d := range NewEngine(nil).Declensions(dhamma) {
		if d.Cell.Number == Plural || d.Cell == accSg {
			d.Forms = nil
		}
		cells = append(cells, d)
	}
	r := nounReport(dhamma.ID, false, cells)
	assert.True(t, r.SingularOnly)
	assert.Equal(t, []NounCell{accSg}, r.MissingNounCells)
	assert.False(t, r.Complete())
}
