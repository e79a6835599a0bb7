package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDeclensionFixedPoint(t *testing.T) {
	d := DecodeDeclension(107893120)
	assert.Equal(t, DeclensionID{
		LemmaID:  10789,
		Case:     Genitive,
		Gender:   Masculine,
		Number:   Plural,
		EndingID: 0,
	}, d)
	assert.Equal(t, FormID(107893120), d.Encode())
}

func TestDeclensionRoundTrip(t *testing.T) {
	for _, lemma := range []LemmaID{FirstNounLemmaID, 10789, 42000, LastNounLemmaID} {
		for _, c := range Cases {
			for _, g := range []Gender{Masculine, Neuter, Feminine} {
				for _, n := range Numbers {
					for e := 0; e <= maxCandidates; e++ {
						d := DeclensionID{LemmaID: lemma, Case: c, Gender: g, Number: n, EndingID: e}
						id := d.Encode()
						require.Equal(t, d, DecodeDeclension(id), "id %d", id)
						require.Equal(t, Noun, id.Class(), "id %d", id)
						require.Equal(t, e, id.EndingID())
					}
				}
			}
		}
	}
}

func TestConjugationRoundTrip(t *testing.T) {
	voices := []Voice{Active, Reflexive, Passive, Causative}
	for _, lemma := range []LemmaID{FirstVerbLemmaID, 75432, LastVerbLemmaID} {
		for _, tense := range Tenses {
			for _, p := range Persons {
				for _, n := range Numbers {
					for _, v := range voices {
						for e := 0; e <= maxCandidates; e++ {
							c := ConjugationID{LemmaID: lemma, Tense: tense, Person: p, Number: n, Voice: v, EndingID: e}
							id := c.Encode()
							require.Equal(t, c, DecodeConjugation(id), "id %d", id)
							require.Equal(t, Verb, id.Class(), "id %d", id)
						}
					}
				}
			}
		}
	}
}

func TestConjugationEncode(t *testing.T) {
	id := ConjugationID{LemmaID: 70001, Tense: Present, Person: First, Number: Singular, Voice: Reflexive, EndingID: 3}.Encode()
	assert.Equal(t, FormID(7000111123), id)
	assert.Equal(t, FormID(7000111120), id.Combination())
	assert.Equal(t, FormID(7000111125), id.WithEnding(5))
}

func TestFormIDClassDigits(t *testing.T) {
	noun := DeclensionID{LemmaID: LastNounLemmaID, Case: Vocative, Gender: Feminine, Number: Plural, EndingID: 9}.Encode()
	verb := ConjugationID{LemmaID: FirstVerbLemmaID, Tense: Present, Person: First, Number: Singular, Voice: Active}.Encode()
	assert.Less(t, int64(noun), int64(1_000_000_000))
	assert.GreaterOrEqual(t, int64(verb), int64(1_000_000_000))
	assert.Equal(t, UnknownClass, FormID(12).Class())
	assert.Equal(t, UnknownClass, FormID(-107893120).Class())
}

func TestLemmaIDClass(t *testing.T) {
	tests := []struct {
		id   LemmaID
		want WordClass
	}{
		{10000, UnknownClass},
		{10001, Noun},
		{69999, Noun},
		{70000, UnknownClass},
		{70001, Verb},
		{99999, Verb},
		{100000, UnknownClass},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.id.Class(), "lemma id %d", tt.id)
	}
}

// Every axis value and every cell must fit a single decimal digit.
func TestSlotWidthAudit(t *testing.T) {
	assert.LessOrEqual(t, len(Cases)+1, 10)
	assert.LessOrEqual(t, len(Tenses)+1, 10)
	assert.LessOrEqual(t, len(Persons)+1, 10)
	assert.LessOrEqual(t, int(Causative)+1, 10)
	assert.LessOrEqual(t, int(Feminine)+1, 10)
	assert.LessOrEqual(t, len(Numbers)+1, 10)

	for _, p := range NounPatterns() {
		for _, c := range Cases {
			for _, n := range Numbers {
				assert.LessOrEqual(t, len(NounEndings(p, c, n)), maxCandidates, "%s %s %s", p, c, n)
				assert.LessOrEqual(t, len(IrregularNounForms(p, c, n)), maxCandidates, "%s %s %s", p, c, n)
			}
		}
	}
	for _, p := range VerbPatterns() {
		for _, cell := range allVerbCells() {
			assert.LessOrEqual(t, len(VerbEndings(p, cell.Tense, cell.Person, cell.Number, cell.Voice)), maxCandidates)
			assert.LessOrEqual(t, len(IrregularVerbForms(p, cell.Tense, cell.Person, cell.Number, cell.Voice)), maxCandidates)
		}
	}
}

func allVerbCells() []VerbCell {
	var out []VerbCell
	for _, tense := range Tenses {
		for _, v := range ParadigmVoices {
			for _, p := range Persons {
				for _, n := range Numbers {
					out = append(out, VerbCell{Tense: tense, Person: p, Number: n, Voice: v})
				}
			}
		}
	}
	return out
}
