// Package leaderboard defines the normalized ranking entry shared by every
// source pipeline.
package leaderboard

import "sort"

// Entry is one (model, score) row extracted from a leaderboard.
type Entry struct {
	Name     string  `json:"name"`
	Provider string  `json:"provider"`
	Score    float64 `json:"score"`
}

// SortByScore orders entries descending by score. The sort is stable, so
// ties keep the order they were extracted in.
func SortByScore(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
