package sources

import (
	"github.com/reccea/ai-rankings/extract"
	"github.com/reccea/ai-rankings/leaderboard"
)

// Humanity's Last Exam accuracy is also published by Artificial Analysis,
// as a percentage.
var hle = Source{
	Key:     KeyHLE,
	Name:    "Humanity's Last Exam",
	URL:     "https://artificialanalysis.ai/evaluations/humanitys-last-exam",
	Profile: extract.Percent,
	Exclude: []string{"rank", "model", "accuracy", "score"},
	Fallback: []leaderboard.Entry{
		{Name: "Gemini 3 Pro Preview", Provider: "Google", Score: 37.52},
		{Name: "Claude Opus 4.6 (Thinking Max)", Provider: "Anthropic", Score: 34.44},
		{Name: "GPT-5 Pro (2025-10-06)", Provider: "OpenAI", Score: 31.64},
		{Name: "GPT-5.2 (2025-12-11)", Provider: "OpenAI", Score: 27.80},
		{Name: "GPT-5 (2025-08-07)", Provider: "OpenAI", Score: 25.32},
		{Name: "Claude Opus 4.5 Thinking", Provider: "Anthropic", Score: 25.20},
		{Name: "Kimi K2.5", Provider: "Moonshot AI", Score: 24.37},
		{Name: "GPT-5.1 Thinking", Provider: "OpenAI", Score: 23.68},
		{Name: "Gemini 2.5 Pro Preview", Provider: "Google", Score: 21.64},
		{Name: "o3 (high) (April 2025)", Provider: "OpenAI", Score: 20.32},
	},
}
