package sources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reccea/ai-rankings/extract"
)

func TestAllOrderAndKeys(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, KeyIntelligenceIndex, all[0].Key)
	assert.Equal(t, KeySWEBench, all[1].Key)
	assert.Equal(t, KeyHLE, all[2].Key)
}

func TestCanonicalURLs(t *testing.T) {
	urls := Canonical()
	assert.Equal(t, "https://artificialanalysis.ai", urls["artificialAnalysis"])
	assert.Equal(t, "https://www.swebench.com", urls["swebench"])
	assert.Equal(t, "https://artificialanalysis.ai/evaluations/humanitys-last-exam", urls["hle"])
}

// Fallback tables must satisfy the same invariants live extraction does:
// scores in the profile's bounds, names clear of the exclusion tokens,
// order descending.
func TestFallbackTablesAreWellFormed(t *testing.T) {
	for _, src := range All() {
		require.NotEmpty(t, src.Fallback, "source %s", src.Key)
		for i, e := range src.Fallback {
			assert.NotEmpty(t, e.Name, "source %s entry %d", src.Key, i)
			assert.NotEmpty(t, e.Provider, "source %s entry %d", src.Key, i)
			switch src.Profile {
			case extract.BareFloat:
				assert.True(t, e.Score > 0 && e.Score < 100, "source %s entry %d score %v", src.Key, i, e.Score)
			case extract.Percent:
				assert.True(t, e.Score > 0 && e.Score <= 100, "source %s entry %d score %v", src.Key, i, e.Score)
			}
			lower := strings.ToLower(e.Name)
			for _, tok := range src.Exclude {
				assert.NotContains(t, lower, tok, "source %s entry %d", src.Key, i)
			}
			if i > 0 {
				assert.GreaterOrEqual(t, src.Fallback[i-1].Score, e.Score, "source %s entry %d", src.Key, i)
			}
		}
	}
}

func TestExcludeTokensAreLowercase(t *testing.T) {
	for _, src := range All() {
		for _, tok := range src.Exclude {
			assert.Equal(t, strings.ToLower(tok), tok, "source %s", src.Key)
		}
	}
}

func TestSourceURLsAreHTTPS(t *testing.T) {
	for _, src := range All() {
		assert.True(t, strings.HasPrefix(src.URL, "https://"), "source %s", src.Key)
	}
}
