package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConf(t, `{
		"listenPort": 9090,
		"lexiconPath": "/data/lexicon.txt",
		"corsAllowedOrigins": ["https://example.org"]
	}`)
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, conf.ListenPort)
	assert.Equal(t, "localhost", conf.ListenAddress)
	assert.Equal(t, "/data/lexicon.txt", conf.LexiconPath)
	assert.Equal(t, []string{"https://example.org"}, conf.CORSAllowedOrigins)
	assert.Equal(t, path, conf.GetSourcePath())

	ApplyDefaults(conf)
	assert.Equal(t, dfltServerReadTimeoutSecs, conf.ServerReadTimeoutSecs)
	assert.Equal(t, dfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, []string{"https://example.org"}, conf.CORSAllowedOrigins)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("INFLECT_LEXICON_PATH", "/env/lexicon.txt")
	path := writeConf(t, `{"lexiconPath": "/data/lexicon.txt"}`)
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/lexicon.txt", conf.LexiconPath)
	assert.Equal(t, 8080, conf.ListenPort)

	ApplyDefaults(conf)
	assert.Equal(t, []string{"*"}, conf.CORSAllowedOrigins)
}

func TestLoadConfigRequiresLexicon(t *testing.T) {
	_, err := LoadConfig(writeConf(t, `{"listenPort": 9090}`))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
