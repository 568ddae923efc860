// Package extract pulls (model, score) candidates out of rendered
// leaderboard HTML using table-shape heuristics.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/reccea/ai-rankings/leaderboard"
)

// Profile selects the numeric convention a source's score cells follow.
type Profile int

const (
	// BareFloat accepts cells whose entire text parses as a float strictly
	// between 0 and 100. Used by the intelligence-index table.
	BareFloat Profile = iota

	// Percent accepts the first decimal number found in the cell, with an
	// optional % suffix, in (0, 100]. Used by SWE-Bench and HLE.
	Percent
)

var percentPattern = regexp.MustCompile(`(\d+\.?\d*)%?`)

// Parse reports whether text qualifies as a score under the profile, and
// the parsed value when it does. A miss is normal control flow for cells
// holding ranks, dates, or labels.
func (p Profile) Parse(text string) (float64, bool) {
	switch p {
	case BareFloat:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || !(v > 0 && v < 100) {
			return 0, false
		}
		return v, true

	case Percent:
		m := percentPattern.FindStringSubmatch(text)
		if m == nil {
			return 0, false
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || !(v > 0 && v <= 100) {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// Scores walks every table in the page, skips the first row of each as a
// header, and emits an entry for every later cell in a row that parses as
// a score under the profile. Rows need at least two cells; the first cell's
// trimmed text is the model name. A row with several score-shaped cells
// emits one entry per cell; callers accept the duplicates.
//
// Candidates whose name is empty, or contains an exclusion token
// case-insensitively, are dropped so residual header or summary rows do
// not surface as data.
func Scores(html string, profile Profile, exclude []string) ([]leaderboard.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrap(err, "parsing page")
	}

	var entries []leaderboard.Entry
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(row int, tr *goquery.Selection) {
			if row == 0 {
				return // header
			}
			cells := tr.Find("td,th")
			if cells.Length() < 2 {
				return
			}
			name := strings.TrimSpace(cells.First().Text())
			if name == "" || excluded(name, exclude) {
				return
			}
			cells.Slice(1, cells.Length()).Each(func(_ int, cell *goquery.Selection) {
				score, ok := profile.Parse(strings.TrimSpace(cell.Text()))
				if !ok {
					return
				}
				entries = append(entries, leaderboard.Entry{
					Name:     name,
					Provider: leaderboard.Provider(name),
					Score:    score,
				})
			})
		})
	})
	return entries, nil
}

func excluded(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
