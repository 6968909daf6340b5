package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultThreshold is the minimum score Suggest accepts.
const DefaultThreshold = 60

type MatchResult struct {
	Text  string
	Score int
	Index int
}

// Match scores how well pattern matches text, from 0 to 100. Matching is
// case insensitive; word boundaries (-, _, ., /) and camelCase humps in the
// original text earn a bonus.
func Match(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	boundaries := wordBoundaries(text)
	lowerPattern := strings.ToLower(pattern)
	lowerText := strings.ToLower(text)

	if lowerPattern == lowerText {
		return 100
	}

	positions := findMatchingPositions(lowerPattern, lowerText)
	if len(positions) == 0 {
		// transposed or mistyped characters never form a subsequence,
		// so fall back to edit distance for near misses
		return editScore(lowerPattern, lowerText)
	}

	score := calculateScore(lowerPattern, lowerText, positions, boundaries)
	if edit := editScore(lowerPattern, lowerText); edit > score {
		score = edit
	}

	// 100 is reserved for exact matches
	return min(clamp(score), 99)
}

func MatchMany(pattern string, texts []string, threshold int) []MatchResult {
	results := make([]MatchResult, 0, len(texts))

	for i, text := range texts {
		score := Match(pattern, text)
		if score >= threshold {
			results = append(results, MatchResult{
				Text:  text,
				Score: score,
				Index: i,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Suggest returns up to limit candidates scoring at least DefaultThreshold,
// best first.
func Suggest(pattern string, candidates []string, limit int) []string {
	results := MatchMany(pattern, candidates, DefaultThreshold)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Text
	}
	return names
}

func findMatchingPositions(pattern, text string) []int {
	patternRunes := []rune(pattern)
	textRunes := []rune(text)
	positions := make([]int, 0, len(patternRunes))

	p := 0
	for i := 0; p < len(patternRunes) && i < len(textRunes); i++ {
		if patternRunes[p] == textRunes[i] {
			positions = append(positions, i)
			p++
		}
	}

	if p < len(patternRunes) {
		return nil
	}
	return positions
}

func calculateScore(pattern, text string, positions []int, boundaries map[int]bool) int {
	patternLen := len([]rune(pattern))
	textLen := len([]rune(text))

	score := 50.0

	lengthRatio := float64(patternLen) / float64(textLen)
	score += lengthRatio * 25.0

	if positions[0] == 0 {
		score += 12.0
	}

	consecutive := countConsecutiveMatches(positions)
	consecutiveBonus := float64(consecutive) / float64(patternLen) * 20.0
	if patternLen < 3 {
		consecutiveBonus *= 0.6
	}
	score += consecutiveBonus

	if scatter := patternLen - consecutive; scatter > 0 {
		score -= float64(scatter) * 4.0
	}

	onBoundary := 0
	for _, pos := range positions {
		if boundaries[pos] {
			onBoundary++
		}
	}
	if float64(onBoundary)/float64(len(positions)) >= 0.3 {
		score += 8.0
	}

	if extra := textLen - patternLen; extra > 0 {
		rate := 0.5
		if patternLen < 3 {
			rate = 1.0
		}
		score -= float64(extra) * rate
	}

	return int(score)
}

// editScore maps edit distance to a score so that one or two typos in a
// short name still rank above the threshold.
func editScore(pattern, text string) int {
	distance := editDistance([]rune(pattern), []rune(text))
	longest := len([]rune(pattern))
	if n := len([]rune(text)); n > longest {
		longest = n
	}
	if longest == 0 || distance > 2 {
		return 0
	}
	return clamp(int(100.0 - float64(distance)/float64(longest)*100.0 - 10.0*float64(distance)))
}

// editDistance is the optimal string alignment distance: insertions,
// deletions, substitutions and adjacent transpositions each cost one.
func editDistance(a, b []rune) int {
	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}

	return d[len(a)][len(b)]
}

func countConsecutiveMatches(positions []int) int {
	if len(positions) == 0 {
		return 0
	}

	consecutive := 1
	longest := 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			consecutive++
			if consecutive > longest {
				longest = consecutive
			}
		} else {
			consecutive = 1
		}
	}

	return longest
}

// wordBoundaries marks rune offsets that start a word: the first rune, any
// rune after a separator, and upper-case runes following a lower-case one.
func wordBoundaries(text string) map[int]bool {
	runes := []rune(text)
	boundaries := make(map[int]bool, len(runes))

	for i, r := range runes {
		if i == 0 {
			boundaries[i] = true
			continue
		}
		prev := runes[i-1]
		switch {
		case prev == '-' || prev == '_' || prev == '.' || prev == '/' || prev == ' ':
			boundaries[i] = true
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			boundaries[i] = true
		case unicode.IsDigit(r) && !unicode.IsDigit(prev):
			boundaries[i] = true
		}
	}

	return boundaries
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
