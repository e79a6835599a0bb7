package inflect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNounPattern(t *testing.T) {
	tests := []struct {
		label string
		want  NounPattern
	}{
		{"a masc", AMasc},
		{"  A   Masc ", AMasc},
		{"ar2 masc", Ar2Masc},
		{"a\u0304 fem", ALongFem},
		{"pokkharaṇī fem", PokkharaniFem},
		{"a nt pl", ANtPl},
	}
	for _, tt := range tests {
		got, err := ParseNounPattern(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestParsePatternBothCatalogs(t *testing.T) {
	p, err := ParsePattern("ati pr")
	require.NoError(t, err)
	assert.Equal(t, AtiPr, p)
	assert.Equal(t, Verb, p.Class())

	p, err = ParsePattern("kamma nt")
	require.NoError(t, err)
	assert.Equal(t, KammaNt, p)
	assert.Equal(t, Irregular, p.Kind())
}

func TestParseUnknownLabel(t *testing.T) {
	_, err := ParseNounPattern("ati pr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPatternLabel))

	_, err = ParsePattern("xyz masc")
	var labelErr *UnknownPatternLabelError
	require.True(t, errors.As(err, &labelErr))
	assert.Equal(t, "xyz masc", labelErr.Label)
	assert.EqualError(t, err, `unknown pattern label "xyz masc"`)
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, p := range NounPatterns() {
		got, err := ParseNounPattern(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	for _, p := range VerbPatterns() {
		got, err := ParseVerbPattern(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	assert.Len(t, NounPatterns(), 42)
	assert.Len(t, VerbPatterns(), 14)
}

func TestPatternKinds(t *testing.T) {
	assert.Equal(t, Base, AMasc.Kind())
	assert.Equal(t, Variant, AMascEast.Kind())
	assert.Equal(t, Irregular, RajaMasc.Kind())
	assert.Equal(t, Base, OtiPr.Kind())
	assert.Equal(t, Irregular, KarotiPr.Kind())
	assert.Equal(t, "irregular", Irregular.String())
}

func TestGenderThroughParent(t *testing.T) {
	tests := []struct {
		p    NounPattern
		want Gender
	}{
		{AMasc, Masculine},
		{ALongFem, Feminine},
		{ANt, Neuter},
		{AntaMasc, Masculine},
		{ANtPl, Neuter},
		{RajaMasc, Masculine},
		{MatarFem, Feminine},
		{KammaNt, Neuter},
		{JantuMasc, Masculine},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.Gender(), tt.p.String())
	}
	for _, p := range NounPatterns() {
		assert.NotEqual(t, GenderNone, p.Gender(), p.String())
		assert.Equal(t, Base, p.Parent().Kind(), p.String())
	}
}

func TestVariantGenderStoredOnEntry(t *testing.T) {
	for _, p := range NounPatterns() {
		e := p.entry()
		switch e.kind {
		case Variant:
			assert.NotEqual(t, GenderNone, e.gender, p.String())
			assert.Equal(t, nounCatalog[e.parent].gender, e.gender, p.String())
		case Irregular:
			assert.Equal(t, GenderNone, e.gender, p.String())
		}
	}
}

func TestParent(t *testing.T) {
	assert.Equal(t, AMasc, AMasc.Parent())
	assert.Equal(t, ArMasc, Ar2Masc.Parent())
	assert.Equal(t, OtiPr, BrutiPr.Parent())
	assert.True(t, RajaMasc.Is(AMasc))
	assert.False(t, RajaMasc.Is(ANt))
	assert.True(t, HotiPr.Is(AtiPr))
}

func TestPluralOnly(t *testing.T) {
	for _, p := range []NounPattern{AMascPl, ILongMascPl, UMascPl, ANtPl} {
		assert.True(t, p.IsPluralOnly(), p.String())
	}
	assert.False(t, AMasc.IsPluralOnly())
}

func TestClassifyingNonePanics(t *testing.T) {
	assert.Panics(t, func() { NounPatternNone.Kind() })
	assert.Panics(t, func() { NounPattern(999).Gender() })
	assert.Panics(t, func() { VerbPatternNone.Parent() })
	assert.Equal(t, "none", NounPatternNone.String())
	assert.Equal(t, "NounPattern(999)", NounPattern(999).String())
}
