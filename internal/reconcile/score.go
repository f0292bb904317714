package reconcile

import (
	"strconv"
	"strings"

	"reelmatch/internal/textutil"
	"reelmatch/internal/tmdb"
)

const directorMatchThreshold = 60

// ScoreYear returns a bonus or penalty for release-year proximity. The
// catalog year arrives as a string (the leading segment of a TMDB release
// date). Exact match +20, within two years +10, further off -10. Returns 0
// when either year is absent or the catalog year is unparseable.
func ScoreYear(catalogYear string, queryYear int) int {
	if queryYear == 0 {
		return 0
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(catalogYear))
	if err != nil {
		return 0
	}
	diff := parsed - queryYear
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return 20
	case diff <= 2:
		return 10
	default:
		return -10
	}
}

// ScoreDirector returns a bonus or penalty for director-name similarity.
// The best token-sort ratio across all credited directors decides: at or
// above the threshold +20, below -10. A record with no directors scores the
// penalty. Returns 0 when no director hint was supplied.
func ScoreDirector(crew []tmdb.CrewMember, director string) int {
	if strings.TrimSpace(director) == "" {
		return 0
	}
	query := textutil.Normalize(director)
	best := 0
	for _, member := range crew {
		if member.Job != "Director" || member.Name == "" {
			continue
		}
		if ratio := textutil.TokenSortRatio(query, textutil.Normalize(member.Name)); ratio > best {
			best = ratio
		}
	}
	if best >= directorMatchThreshold {
		return 20
	}
	return -10
}

// ScoreCountry returns a bonus or penalty for production-country overlap.
// The hint may be comma-separated; each term matches a catalog country when
// either is a contiguous case-insensitive substring of the other, so
// "United States" pairs with "United States of America" but "USA" does not.
// Any match +10, none -5. Returns 0 when no country hint was supplied.
func ScoreCountry(countries []tmdb.ProductionCountry, country string) int {
	if strings.TrimSpace(country) == "" {
		return 0
	}
	terms := strings.Split(country, ",")
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		for _, c := range countries {
			name := strings.ToLower(c.Name)
			if name == "" {
				continue
			}
			if strings.Contains(name, term) || strings.Contains(term, name) {
				return 10
			}
		}
	}
	return -5
}
