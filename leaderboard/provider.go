package leaderboard

import "strings"

// providerKeywords maps model-name substrings to publisher labels. The list
// is ordered and the first match wins; that ordering is the tie-break rule
// for names containing more than one keyword.
var providerKeywords = []struct {
	keyword  string
	provider string
}{
	{"claude", "Anthropic"},
	{"gpt", "OpenAI"},
	{"openai", "OpenAI"},
	{"gemini", "Google"},
	{"google", "Google"},
	{"kimi", "Moonshot AI"},
	{"moonshot", "Moonshot AI"},
	{"glm", "Z AI"},
	{"qwen", "Alibaba"},
	{"deepseek", "DeepSeek"},
	{"minimax", "Minimax"},
	{"llama", "Meta"},
	{"meta", "Meta"},
	{"mistral", "Mistral"},
}

// Provider guesses the publisher of a model from its display name.
// Names matching no known keyword resolve to "Unknown".
func Provider(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range providerKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.provider
		}
	}
	return "Unknown"
}
