// Package snapshot runs the source pipelines and serializes the combined
// result to disk.
package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/reccea/ai-rankings/extract"
	"github.com/reccea/ai-rankings/leaderboard"
	"github.com/reccea/ai-rankings/sources"
)

// FetchFunc returns rendered HTML for a URL. Production wires this to the
// headless-browser fetcher; tests substitute canned pages.
type FetchFunc func(ctx context.Context, url string) (string, error)

// Snapshot is the single output record of a run.
type Snapshot struct {
	IntelligenceIndex []leaderboard.Entry `json:"intelligenceIndex"`
	SWEBench          []leaderboard.Entry `json:"swebench"`
	HLE               []leaderboard.Entry `json:"hle"`
	LastUpdate        string              `json:"lastUpdate"`
	Sources           map[string]string   `json:"sources"`
}

// Build runs the three source pipelines strictly in sequence and returns
// the assembled snapshot. A pipeline whose fetch or parse fails substitutes
// that source's static table; other sources are unaffected, and Build never
// fails as a whole. An empty result from a successful scrape stays empty —
// it is a legitimate answer, not a fallback trigger.
func Build(ctx context.Context, fetch FetchFunc, log *zap.Logger) *Snapshot {
	snap := &Snapshot{
		LastUpdate: time.Now().Format(time.RFC3339),
		Sources:    sources.Canonical(),
	}
	for _, src := range sources.All() {
		log.Info("scraping", zap.String("source", src.Name))
		entries := scrape(ctx, fetch, src, log)
		if entries == nil {
			entries = []leaderboard.Entry{}
		}
		leaderboard.SortByScore(entries)
		snap.set(src.Key, entries)
	}
	return snap
}

func scrape(ctx context.Context, fetch FetchFunc, src sources.Source, log *zap.Logger) []leaderboard.Entry {
	html, err := fetch(ctx, src.URL)
	if err != nil {
		log.Warn("fetch failed, using fallback data",
			zap.String("source", src.Key), zap.Error(err))
		return fallbackCopy(src)
	}
	entries, err := extract.Scores(html, src.Profile, src.Exclude)
	if err != nil {
		log.Warn("extraction failed, using fallback data",
			zap.String("source", src.Key), zap.Error(err))
		return fallbackCopy(src)
	}
	log.Info("scrape complete",
		zap.String("source", src.Key), zap.Int("models", len(entries)))
	return entries
}

// fallbackCopy clones the static table so sorting never mutates the
// package-level data.
func fallbackCopy(src sources.Source) []leaderboard.Entry {
	out := make([]leaderboard.Entry, len(src.Fallback))
	copy(out, src.Fallback)
	return out
}

func (s *Snapshot) set(key string, entries []leaderboard.Entry) {
	switch key {
	case sources.KeyIntelligenceIndex:
		s.IntelligenceIndex = entries
	case sources.KeySWEBench:
		s.SWEBench = entries
	case sources.KeyHLE:
		s.HLE = entries
	}
}

// WriteFile serializes the snapshot as indented UTF-8 JSON, overwriting
// any previous file at path. Non-ASCII text is written literally, not
// escaped. Write errors propagate to the caller.
func (s *Snapshot) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "creating %s", path)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		f.Close()
		return eris.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
