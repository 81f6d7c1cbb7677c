package errz

import (
	"sort"
	"strings"
)

// MaxSuggestionDistance is the largest edit distance still offered as a
// suggestion for long names.
const MaxSuggestionDistance = 3

// MaxSuggestions caps the number of suggestions returned.
const MaxSuggestions = 3

// Suggestion is a candidate name and its edit distance from the target.
type Suggestion struct {
	Value    string
	Distance int
}

// SuggestSimilar returns the candidates closest to target, nearest first.
// Comparison is case-insensitive and exact matches are skipped. Short
// targets tolerate fewer edits.
func SuggestSimilar(target string, candidates []string) []Suggestion {
	if target == "" || len(candidates) == 0 {
		return nil
	}
	target = strings.ToLower(target)
	limit := threshold(target)

	var out []Suggestion
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if c == "" || lc == target {
			continue
		}
		if d := editDistance(target, lc); d <= limit {
			out = append(out, Suggestion{Value: c, Distance: d})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Value < out[j].Value
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// FormatSuggestions renders suggestions as a hint sentence, or "" when
// there are none.
func FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "Did you mean '" + suggestions[0].Value + "'?"
	}
	quoted := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		quoted = append(quoted, "'"+s.Value+"'")
	}
	return "Did you mean one of: " + strings.Join(quoted, ", ") + "?"
}

// Hint is shorthand for FormatSuggestions(SuggestSimilar(target, candidates)).
func Hint(target string, candidates []string) string {
	return FormatSuggestions(SuggestSimilar(target, candidates))
}

func threshold(target string) int {
	switch n := len(target); {
	case n <= 3:
		return 1
	case n <= 5:
		return 2
	default:
		return MaxSuggestionDistance
	}
}

// editDistance is the Levenshtein distance between a and b over runes.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag = row[i]
			row[i] = next
		}
	}
	return row[len(ra)]
}
