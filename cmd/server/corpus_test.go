package main

import (
	"strings"
	"testing"

	"github.com/palipractice/inflect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCorpusSet(t *testing.T) {
	input := strings.Join([]string{
		"! attested forms",
		"107893121",
		"",
		"7012311121",
		"107893120", // combination id, not a candidate
		"abc",
		"42",
	}, "\n")
	set, err := readCorpusSet(strings.NewReader(input), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Attested(inflect.FormID(107893121)))
	assert.True(t, set.Attested(inflect.FormID(7012311121)))
	assert.False(t, set.Attested(inflect.FormID(107893120)))
}

func TestLoadCorpusSetEmptyPath(t *testing.T) {
	set, err := loadCorpusSet("", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())

	_, err = loadCorpusSet("testdata/missing.txt", zerolog.Nop())
	assert.Error(t, err)
}
