package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/palipractice/inflect"
	"github.com/rs/zerolog"
)

// loadCorpusSet reads the attested candidate ids exported by the corpus
// pipeline, one FormID per line. An empty path yields an empty set.
func loadCorpusSet(path string, logger zerolog.Logger) (*inflect.CorpusSet, error) {
	if path == "" {
		return inflect.NewCorpusSet(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus list: %w", err)
	}
	defer f.Close()
	return readCorpusSet(f, logger)
}

func readCorpusSet(r io.Reader, logger zerolog.Logger) (*inflect.CorpusSet, error) {
	set := inflect.NewCorpusSet()
	sc := bufio.NewScanner(r)
	var lineNo, skipped int
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		id := inflect.FormID(v)
		if err != nil || id.Class() == inflect.UnknownClass || id.EndingID() == 0 {
			skipped++
			logger.Warn().Int("line", lineNo).Str("content", line).Msg("skipping invalid attested form id")
			continue
		}
		set.Add(id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus list: %w", err)
	}
	logger.Info().Int("attested", set.Len()).Int("skipped", skipped).Msg("attested forms loaded")
	return set, nil
}
