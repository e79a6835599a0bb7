package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNounEndingsSamples(t *testing.T) {
	tests := []struct {
		p    NounPattern
		c    Case
		n    Number
		want []string
	}{
		{AMasc, Nominative, Singular, []string{"o"}},
		{AMasc, Genitive, Plural, []string{"ānaṃ"}},
		{AMasc, Ablative, Singular, []string{"ā", "amhā", "asmā", "ato"}},
		{ALongFem, Vocative, Singular, []string{"e"}},
		{ANt, Nominative, Plural, []string{"āni", "ā"}},
		{AMascEast, Nominative, Singular, []string{"e", "o"}},
		{A2Masc, Instrumental, Singular, []string{"ena", "asā"}},
		{AMascPl, Nominative, Plural, []string{"ā", "āse"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NounEndings(tt.p, tt.c, tt.n), "%s %s %s", tt.p, tt.c, tt.n)
	}
}

func TestVerbEndingsSamples(t *testing.T) {
	assert.Equal(t, []string{"ati"}, VerbEndings(AtiPr, Present, Third, Singular, Active))
	assert.Equal(t, []string{"e"}, VerbEndings(AtiPr, Present, First, Singular, Reflexive))
	assert.Equal(t, []string{"issāma"}, VerbEndings(AtiPr, Future, First, Plural, Active))
	assert.Equal(t, []string{"oti", "uṇāti"}, VerbEndings(OtiPr, Present, Third, Singular, Active))
	assert.Empty(t, VerbEndings(AtiPr, Aorist, Third, Singular, Active))
	assert.Empty(t, VerbEndings(AtiPr, Present, Third, Singular, Passive))
}

func TestEndingsAreTotal(t *testing.T) {
	cases := append([]Case{CaseNone, Case(9)}, Cases...)
	numbers := []Number{NumberNone, Singular, Plural, Number(7)}
	patterns := append([]NounPattern{NounPatternNone, nounPatternEnd, NounPattern(-3)}, NounPatterns()...)
	assert.NotPanics(t, func() {
		for _, p := range patterns {
			for _, c := range cases {
				for _, n := range numbers {
					NounEndings(p, c, n)
					IrregularNounForms(p, c, n)
				}
			}
		}
	})
	assert.Empty(t, NounEndings(AMasc, CaseNone, Singular))
	assert.Empty(t, NounEndings(AMasc, Nominative, NumberNone))
	assert.Empty(t, NounEndings(NounPatternNone, Nominative, Singular))

	tenses := append([]Tense{TenseNone}, Tenses...)
	persons := []Person{PersonNone, First, Second, Third, Person(4)}
	voices := []Voice{VoiceNone, Active, Reflexive, Passive, Causative}
	assert.NotPanics(t, func() {
		for _, p := range append([]VerbPattern{VerbPatternNone, verbPatternEnd}, VerbPatterns()...) {
			for _, tense := range tenses {
				for _, person := range persons {
					for _, n := range numbers {
						for _, v := range voices {
							VerbEndings(p, tense, person, n, v)
							IrregularVerbForms(p, tense, person, n, v)
						}
					}
				}
			}
		}
	})
}

func TestRegularNounCellsComplete(t *testing.T) {
	for _, p := range NounPatterns() {
		if p.Kind() == Irregular {
			for _, c := range Cases {
				for _, n := range Numbers {
					assert.Empty(t, NounEndings(p, c, n), "%s", p)
				}
			}
			continue
		}
		for _, c := range Cases {
			for _, n := range Numbers {
				got := NounEndings(p, c, n)
				if n == Singular && p.IsPluralOnly() {
					assert.Empty(t, got, "%s %s", p, c)
					continue
				}
				assert.NotEmpty(t, got, "%s %s %s", p, c, n)
				assertDistinctNonEmpty(t, got)
			}
		}
	}
}

func TestRegularVerbCellsComplete(t *testing.T) {
	for _, p := range VerbPatterns() {
		for _, cell := range allVerbCells() {
			got := VerbEndings(p, cell.Tense, cell.Person, cell.Number, cell.Voice)
			switch {
			case p.Kind() == Irregular, cell.Tense == Aorist:
				assert.Empty(t, got, "%s %s", p, cell.ComboKey())
			default:
				assert.NotEmpty(t, got, "%s %s", p, cell.ComboKey())
				assertDistinctNonEmpty(t, got)
			}
		}
	}
}

func TestEndingsReturnCopies(t *testing.T) {
	got := NounEndings(AMasc, Nominative, Singular)
	got[0] = "x"
	assert.Equal(t, []string{"o"}, NounEndings(AMasc, Nominative, Singular))
}

func assertDistinctNonEmpty(t *testing.T, values []string) {
	t.Helper()
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		assert.NotEmpty(t, v)
		assert.False(t, seen[v], "duplicate candidate %q in %v", v, values)
		seen[v] = true
	}
}
