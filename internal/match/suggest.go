package match

import (
	"sort"
	"strings"
)

// MinSuggestionScore is the lowest normalized similarity for which a
// candidate is still offered as a suggestion.
const MinSuggestionScore = 0.5

// NormalizeIdent case-folds s and strips the separators _, - and space, so
// that "file_name", "FileName" and "file-name" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Score returns the similarity of two identifiers after normalization.
func Score(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}

// Suggest returns at most limit candidates resembling name, best first.
// Ties are broken by name so the result is deterministic.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Score(name, c); s >= MinSuggestionScore {
			ranked = append(ranked, scored{c, s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]string, len(ranked))
	for i, r := range ranked {
		res[i] = r.name
	}

	return res
}
