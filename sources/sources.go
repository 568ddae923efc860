// Package sources declares the three leaderboard sites this tool scrapes,
// including the static tables substituted when a live scrape fails.
package sources

import (
	"github.com/reccea/ai-rankings/extract"
	"github.com/reccea/ai-rankings/leaderboard"
)

// Snapshot keys, one per source list.
const (
	KeyIntelligenceIndex = "intelligenceIndex"
	KeySWEBench          = "swebench"
	KeyHLE               = "hle"
)

// Source describes one leaderboard site and how to read its tables.
type Source struct {
	Key      string // snapshot list this source populates
	Name     string // human-readable label for progress output
	URL      string // exact page the browser navigates to
	Profile  extract.Profile
	Exclude  []string // lowercase tokens that mark a name as header noise
	Fallback []leaderboard.Entry
}

// All returns the sources in scrape order. Pipelines run strictly in this
// sequence, one browser at a time.
func All() []Source {
	return []Source{intelligenceIndex, sweBench, hle}
}

// Canonical returns the source-key to canonical-URL map recorded in the
// snapshot metadata. These are the public site roots, not necessarily the
// exact pages the scraper navigates to.
func Canonical() map[string]string {
	return map[string]string{
		"artificialAnalysis": "https://artificialanalysis.ai",
		"swebench":           "https://www.swebench.com",
		"hle":                "https://artificialanalysis.ai/evaluations/humanitys-last-exam",
	}
}
