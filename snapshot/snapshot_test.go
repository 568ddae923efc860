package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reccea/ai-rankings/leaderboard"
	"github.com/reccea/ai-rankings/sources"
)

const sampleBareFloat = `<table>
	<tr><th>Rank</th><th>Model</th><th>Score</th></tr>
	<tr><td>Claude Opus 4.5</td><td>53.0</td></tr>
	<tr><td>GLM-5</td><td>49.64</td></tr>
</table>`

const samplePercent = `<table>
	<tr><th>Model</th><th>Resolved</th></tr>
	<tr><td>GPT-5.2</td><td>74.40%</td></tr>
	<tr><td>Claude 4.5 Sonnet</td><td>70.60%</td></tr>
</table>`

// pageFor serves the right sample page for each source URL.
func pageFor(ctx context.Context, url string) (string, error) {
	if strings.Contains(url, "intelligence-index") {
		return sampleBareFloat, nil
	}
	return samplePercent, nil
}

func TestBuildLiveSources(t *testing.T) {
	snap := Build(context.Background(), pageFor, zap.NewNop())

	require.Len(t, snap.IntelligenceIndex, 2)
	assert.Equal(t, "Claude Opus 4.5", snap.IntelligenceIndex[0].Name)
	assert.Equal(t, "Anthropic", snap.IntelligenceIndex[0].Provider)
	assert.Equal(t, 53.0, snap.IntelligenceIndex[0].Score)

	require.Len(t, snap.SWEBench, 2)
	assert.Equal(t, "GPT-5.2", snap.SWEBench[0].Name)
	assert.Equal(t, 74.40, snap.SWEBench[0].Score)

	require.Len(t, snap.HLE, 2)

	// Every list is sorted descending.
	for _, list := range [][]leaderboard.Entry{snap.IntelligenceIndex, snap.SWEBench, snap.HLE} {
		for i := 1; i < len(list); i++ {
			assert.GreaterOrEqual(t, list[i-1].Score, list[i].Score)
		}
	}

	assert.Equal(t, sources.Canonical(), snap.Sources)
	_, err := time.Parse(time.RFC3339, snap.LastUpdate)
	assert.NoError(t, err)
}

func TestBuildFetchFailureFallsBackPerSource(t *testing.T) {
	fetch := func(ctx context.Context, url string) (string, error) {
		if strings.Contains(url, "swebench") {
			return "", errors.New("navigation timed out")
		}
		return pageFor(ctx, url)
	}

	snap := Build(context.Background(), fetch, zap.NewNop())

	// The failed source carries its fallback table exactly.
	var want []leaderboard.Entry
	for _, src := range sources.All() {
		if src.Key == sources.KeySWEBench {
			want = src.Fallback
		}
	}
	assert.Equal(t, want, snap.SWEBench)

	// Other sources are unaffected.
	assert.Len(t, snap.IntelligenceIndex, 2)
	assert.Len(t, snap.HLE, 2)
}

func TestBuildAllSourcesDown(t *testing.T) {
	fetch := func(ctx context.Context, url string) (string, error) {
		return "", errors.New("browser launch failed")
	}

	snap := Build(context.Background(), fetch, zap.NewNop())

	for _, src := range sources.All() {
		var got []leaderboard.Entry
		switch src.Key {
		case sources.KeyIntelligenceIndex:
			got = snap.IntelligenceIndex
		case sources.KeySWEBench:
			got = snap.SWEBench
		case sources.KeyHLE:
			got = snap.HLE
		}
		assert.Equal(t, src.Fallback, got, "source %s", src.Key)
	}
}

func TestBuildEmptySuccessIsNotFallback(t *testing.T) {
	// A page with no tables extracts nothing; that is a legitimate empty
	// result, not a fallback trigger.
	fetch := func(ctx context.Context, url string) (string, error) {
		return "<html><body><p>redesigned layout</p></body></html>", nil
	}

	snap := Build(context.Background(), fetch, zap.NewNop())

	assert.Equal(t, []leaderboard.Entry{}, snap.IntelligenceIndex)
	assert.Equal(t, []leaderboard.Entry{}, snap.SWEBench)
	assert.Equal(t, []leaderboard.Entry{}, snap.HLE)
}

func TestBuildDeterministicModuloTimestamp(t *testing.T) {
	a := Build(context.Background(), pageFor, zap.NewNop())
	b := Build(context.Background(), pageFor, zap.NewNop())

	a.LastUpdate = ""
	b.LastUpdate = ""
	assert.Equal(t, a, b)
}

func TestWriteFile(t *testing.T) {
	snap := Build(context.Background(), pageFor, zap.NewNop())
	path := filepath.Join(t.TempDir(), "data.json")

	require.NoError(t, snap.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"intelligenceIndex", "swebench", "hle", "lastUpdate", "sources"} {
		assert.Contains(t, decoded, key)
	}

	// Indented output, overwritten on a second run.
	assert.True(t, strings.Contains(string(raw), "\n  \""))
	require.NoError(t, snap.WriteFile(path))
}

func TestWriteFilePreservesNonASCII(t *testing.T) {
	snap := &Snapshot{
		IntelligenceIndex: []leaderboard.Entry{{Name: "Qwen-通义千问", Provider: "Alibaba", Score: 45.0}},
		SWEBench:          []leaderboard.Entry{},
		HLE:               []leaderboard.Entry{},
		LastUpdate:        time.Now().Format(time.RFC3339),
		Sources:           sources.Canonical(),
	}
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, snap.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "通义千问")
	assert.NotContains(t, string(raw), `\u`)
}

func TestWriteFileBadPath(t *testing.T) {
	snap := Build(context.Background(), pageFor, zap.NewNop())
	err := snap.WriteFile(filepath.Join(t.TempDir(), "missing", "data.json"))
	assert.Error(t, err)
}
