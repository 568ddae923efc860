package sources

import (
	"github.com/reccea/ai-rankings/extract"
	"github.com/reccea/ai-rankings/leaderboard"
)

// Artificial Analysis publishes the Intelligence Index as a bare float,
// typically in the low-to-mid double digits.
var intelligenceIndex = Source{
	Key:     KeyIntelligenceIndex,
	Name:    "Artificial Analysis Intelligence Index",
	URL:     "https://artificialanalysis.ai/#artificial-analysis-intelligence-index",
	Profile: extract.BareFloat,
	Exclude: []string{"rank", "model", "elo", "score"},
	Fallback: []leaderboard.Entry{
		{Name: "Claude Opus 4.6 (max)", Provider: "Anthropic", Score: 53.03},
		{Name: "Claude Sonnet 4.6 (max)", Provider: "Anthropic", Score: 51.27},
		{Name: "GPT-5.2 (xhigh)", Provider: "OpenAI", Score: 51.24},
		{Name: "Claude Opus 4.5", Provider: "Anthropic", Score: 49.69},
		{Name: "GLM-5", Provider: "Z AI", Score: 49.64},
		{Name: "GPT-5.2 Codex (xhigh)", Provider: "OpenAI", Score: 48.98},
		{Name: "Gemini 3 Pro Preview (high)", Provider: "Google", Score: 48.44},
		{Name: "GPT-5.1 (high)", Provider: "OpenAI", Score: 47.56},
		{Name: "Kimi K2.5", Provider: "Moonshot AI", Score: 46.73},
		{Name: "GPT-5.2 (medium)", Provider: "OpenAI", Score: 46.58},
		{Name: "Gemini 3 Flash", Provider: "Google", Score: 46.40},
	},
}
