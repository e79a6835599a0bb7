// Command server exposes the Pali inflection engine as a JSON REST API.
//
// Endpoints:
//
//	GET /
//	GET /patterns
//	GET /lemmas/:id
//	GET /lemmas/:id/paradigm
//	GET /lemmas/:id/report
//	GET /lemmas/:id/check?formId=<id>&answer=<form>
//	GET /forms/:formId
//	GET /metrics
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/palipractice/inflect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func newRouter(actions *Actions, debugMode bool) *gin.Engine {
	if !debugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(metricsMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	engine.GET(
		"/", actions.RootAction)
	engine.GET(
		"/patterns", actions.Patterns)
	engine.GET(
		"/lemmas/:id", actions.Lemma)
	engine.GET(
		"/lemmas/:id/paradigm", actions.Paradigm)
	engine.GET(
		"/lemmas/:id/report", actions.Report)
	engine.GET(
		"/lemmas/:id/check", actions.Check)
	engine.GET(
		"/forms/:formId", actions.Form)
	engine.GET(
		"/metrics", gin.WrapH(promhttp.Handler()))
	return engine
}

func main() {
	version := VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "inflect - Pali inflection service\n\nUsage:\n\t%s [options] start [config.json]\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("inflect %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	} else if action != "start" {
		log.Fatal().Msgf("Unknown action %s", action)
	}

	conf, err := LoadConfig(flag.Arg(1))
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	logging.SetupLogging(conf.Logging)
	log.Info().Msg("Starting inflect server")
	ApplyDefaults(conf)

	lexicon, err := inflect.LoadLexicon(conf.LexiconPath, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("path", conf.LexiconPath).Msg("failed to load lexicon")
	}
	corpus, err := loadCorpusSet(conf.CorpusPath, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("path", conf.CorpusPath).Msg("failed to load attested forms")
	}

	engine := inflect.NewEngine(corpus)
	lexicon.DropRedundantPlurals(engine, log.Logger)

	actions := &Actions{
		Version: version,
		Conf:    conf,
		Engine:  engine,
		Lexicon: lexicon,
		Corpus:  corpus,
	}
	router := newRouter(actions, conf.Logging.Level.IsDebugMode())
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: conf.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      corsHandler.Handler(router),
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Send()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown request received")

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
}
