package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog/log"
)

const (
	dfltServerReadTimeoutSecs  = 10
	dfltServerWriteTimeoutSecs = 10
)

// Conf is the server configuration. Values come from a JSON or YAML file
// and can be overridden by environment variables.
type Conf struct {
	ListenAddress          string              `json:"listenAddress" yaml:"listenAddress" env:"INFLECT_LISTEN_ADDRESS" env-default:"localhost"`
	ListenPort             int                 `json:"listenPort" yaml:"listenPort" env:"INFLECT_LISTEN_PORT" env-default:"8080"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs" yaml:"serverReadTimeoutSecs" env:"INFLECT_READ_TIMEOUT_SECS"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs" yaml:"serverWriteTimeoutSecs" env:"INFLECT_WRITE_TIMEOUT_SECS"`
	LexiconPath            string              `json:"lexiconPath" yaml:"lexiconPath" env:"INFLECT_LEXICON_PATH"`
	CorpusPath             string              `json:"corpusPath" yaml:"corpusPath" env:"INFLECT_CORPUS_PATH"`
	CORSAllowedOrigins     []string            `json:"corsAllowedOrigins" yaml:"corsAllowedOrigins" env:"INFLECT_CORS_ALLOWED_ORIGINS" env-separator:","`
	Logging                logging.LoggingConf `json:"logging" yaml:"logging"`
	srcPath                string
}

// GetSourcePath returns an absolute path of the file the config was
// loaded from, or an empty string for env-only configs.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" || filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	cwd, err := os.Getwd()
	if err != nil {
		return conf.srcPath
	}
	return filepath.Join(cwd, conf.srcPath)
}

// LoadConfig reads path, or the environment only if path is empty.
func LoadConfig(path string) (*Conf, error) {
	var conf Conf
	if path != "" {
		if err := cleanenv.ReadConfig(path, &conf); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		conf.srcPath = path
	} else if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if conf.LexiconPath == "" {
		return nil, fmt.Errorf("config: lexiconPath not specified")
	}
	return &conf, nil
}

func ApplyDefaults(conf *Conf) {
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if len(conf.CORSAllowedOrigins) == 0 {
		conf.CORSAllowedOrigins = []string{"*"}
		log.Warn().Msg("corsAllowedOrigins not specified, allowing any origin")
	}
	if conf.CorpusPath == "" {
		log.Warn().Msg("corpusPath not specified, no form will be attested")
	}
}
