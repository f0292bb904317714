package textutil

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// TokenSortRatio computes an order-insensitive similarity between two
// strings on a 0-100 scale. Each input is split into tokens, the tokens are
// sorted and rejoined, and the rejoined forms are compared with a
// Levenshtein-based ratio. "Kubrick Stanley" and "Stanley Kubrick" score 100.
// Returns 0 when either input has no tokens.
func TokenSortRatio(a, b string) int {
	as := sortTokens(a)
	bs := sortTokens(b)
	if as == "" || bs == "" {
		return 0
	}
	return int(math.Round(levenshtein.Similarity(as, bs, levenshtein.NewParams()) * 100))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
