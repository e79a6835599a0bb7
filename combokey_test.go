package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComboKey(t *testing.T) {
	assert.Equal(t, "pr_1st_sg_reflx", VerbCell{Tense: Present, Person: First, Number: Singular, Voice: Reflexive}.ComboKey())
	assert.Equal(t, "nom_masc_sg", NounCell{Case: Nominative, Gender: Masculine, Number: Singular}.ComboKey())
	assert.Equal(t, "instr_fem_pl", NounCell{Case: Instrumental, Gender: Feminine, Number: Plural}.ComboKey())
	assert.Equal(t, "fut_3rd_pl_act", VerbCell{Tense: Future, Person: Third, Number: Plural, Voice: Active}.ComboKey())
}

func TestComboKeyFallsBackToName(t *testing.T) {
	assert.Equal(t, "aor_2nd_sg_passive", VerbCell{Tense: Aorist, Person: Second, Number: Singular, Voice: Passive}.ComboKey())
	assert.Equal(t, "none_none_none", NounCell{}.ComboKey())
}

func TestComboKeysDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, cell := range allVerbCells() {
		k := cell.ComboKey()
		assert.False(t, seen[k], k)
		seen[k] = true
	}
	assert.Len(t, seen, 60)
}
