package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var workshopAliases = []string{
	"rh-red", "rh-black", "bg-rh-red", "bg-rh-black", "bg-pf-gray",
	"text-pf-blue", "text-pf-green", "text-pf-orange", "font-display", "font-mono",
}

var workshopRefs = []string{
	"rhRed", "rhBlack", "pfBlue", "pfGreen", "pfOrange", "pfDanger",
	"pfGray.100", "pfGray.200", "pfGray.300", "pfGray.400", "pfGray.500", "pfGray.600", "pfGray.700",
}

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{name: "same case", pattern: "rh-red", text: "rh-red"},
		{name: "upper pattern", pattern: "RH-RED", text: "rh-red"},
		{name: "camel text", pattern: "pfblue", text: "pfBlue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 100, Match(tt.pattern, tt.text))
		})
	}
}

func TestNonExactNeverScoresHundred(t *testing.T) {
	assert.Equal(t, 99, Match("pfBlu", "pfBlue"))
	assert.Less(t, Match("txt-pf-blue", "text-pf-blue"), 100)
}

func TestNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{name: "empty pattern", pattern: "", text: "rh-red"},
		{name: "empty text", pattern: "rh", text: ""},
		{name: "unrelated", pattern: "xyz", text: "rh-red"},
		{name: "single char miss", pattern: "a", text: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, Match(tt.pattern, tt.text))
		})
	}
}

func TestPrefixScoresAboveScattered(t *testing.T) {
	prefix := Match("back", "backend")
	scattered := Match("bknd", "backend")

	assert.Greater(t, prefix, scattered)
	assert.GreaterOrEqual(t, scattered, DefaultThreshold)
}

func TestTranspositionIsNearMiss(t *testing.T) {
	score := Match("rh-rde", "rh-red")

	assert.GreaterOrEqual(t, score, DefaultThreshold)
	assert.Less(t, score, 100)
}

func TestMatchManyOrdering(t *testing.T) {
	results := MatchMany("rh", workshopAliases, DefaultThreshold)

	if assert.Len(t, results, 4) {
		assert.Equal(t, "rh-red", results[0].Text)
		assert.Equal(t, "rh-black", results[1].Text)
		assert.Equal(t, 0, results[0].Index)
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		candidates []string
		limit      int
		want       []string
	}{
		{
			name:       "typo in alias",
			pattern:    "rh-rde",
			candidates: workshopAliases,
			limit:      3,
			want:       []string{"rh-red"},
		},
		{
			name:       "missing letter in token",
			pattern:    "pfBlu",
			candidates: workshopRefs,
			limit:      3,
			want:       []string{"pfBlue"},
		},
		{
			name:       "wrong scale spelling",
			pattern:    "pfGrey.500",
			candidates: workshopRefs,
			limit:      1,
			want:       []string{"pfGray.500"},
		},
		{
			name:       "nothing close",
			pattern:    "text-pf-purple",
			candidates: workshopAliases,
			limit:      3,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.pattern, tt.candidates, tt.limit))
		})
	}
}

func TestWordBoundaries(t *testing.T) {
	b := wordBoundaries("pfGray.500")

	assert.True(t, b[0])
	assert.True(t, b[2], "camel hump")
	assert.True(t, b[7], "after dot")
	assert.False(t, b[1])
	assert.False(t, b[8])
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance([]rune("abc"), []rune("abc")))
	assert.Equal(t, 1, editDistance([]rune("rh-rde"), []rune("rh-red")))
	assert.Equal(t, 1, editDistance([]rune("pfblu"), []rune("pfblue")))
	assert.Equal(t, 3, editDistance([]rune(""), []rune("abc")))
}
