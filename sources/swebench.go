package sources

import (
	"github.com/reccea/ai-rankings/extract"
	"github.com/reccea/ai-rankings/leaderboard"
)

// SWE-Bench Verified reports the fraction of issues resolved, rendered as
// percentages like "74.40%".
var sweBench = Source{
	Key:     KeySWEBench,
	Name:    "SWE-Bench Verified",
	URL:     "https://www.swebench.com/",
	Profile: extract.Percent,
	Exclude: []string{"rank", "model", "%", "resolved"},
	Fallback: []leaderboard.Entry{
		{Name: "Claude 4.5 Opus medium (20251101)", Provider: "Anthropic", Score: 74.40},
		{Name: "Gemini 3 Pro Preview (2025-11-18)", Provider: "Google DeepMind", Score: 74.20},
		{Name: "GPT-5.2 (2025-12-11) (high reasoning)", Provider: "OpenAI", Score: 71.80},
		{Name: "Claude 4.5 Sonnet (20250929)", Provider: "Anthropic", Score: 70.60},
		{Name: "GPT-5.2 (2025-12-11)", Provider: "OpenAI", Score: 69.00},
		{Name: "Claude 4 Opus (20250514)", Provider: "Anthropic", Score: 67.60},
		{Name: "GPT-5.1-codex (medium reasoning)", Provider: "OpenAI", Score: 66.00},
		{Name: "GPT-5.1 (2025-11-13) (medium reasoning)", Provider: "OpenAI", Score: 66.00},
		{Name: "GPT-5 (2025-08-07) (medium reasoning)", Provider: "OpenAI", Score: 65.00},
		{Name: "Claude 4 Sonnet (20250514)", Provider: "Anthropic", Score: 64.93},
	},
}
