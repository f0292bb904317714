package reconcile

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"log/slog"

	"reelmatch/internal/logging"
	"reelmatch/internal/textutil"
	"reelmatch/internal/tmdb"
)

// Searcher is the subset of the TMDB client used by the resolver.
type Searcher interface {
	SearchMovie(ctx context.Context, query string, opts tmdb.SearchOptions) (*tmdb.SearchResponse, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*tmdb.MovieDetails, error)
}

const (
	defaultMaxCandidates = 10
	defaultFetchWorkers  = 4

	autoMatchScore     = 80
	highConfidenceBand = 60
)

// Options tunes resolver behavior.
type Options struct {
	// MaxCandidates bounds the number of pool entries that get scored, and
	// with that the number of detail fetches a single query can trigger.
	MaxCandidates int
	// FetchWorkers caps concurrent detail fetches.
	FetchWorkers int
}

// Resolver turns a Query into a ranked candidate list.
type Resolver struct {
	client        Searcher
	logger        *slog.Logger
	maxCandidates int
	fetchWorkers  int
}

// NewResolver creates a resolver backed by the supplied catalog client.
func NewResolver(client Searcher, logger *slog.Logger, opts Options) *Resolver {
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = defaultMaxCandidates
	}
	if opts.FetchWorkers <= 0 {
		opts.FetchWorkers = defaultFetchWorkers
	}
	return &Resolver{
		client:        client,
		logger:        logging.NewComponentLogger(logger, "resolver"),
		maxCandidates: opts.MaxCandidates,
		fetchWorkers:  opts.FetchWorkers,
	}
}

// ResolveAll reconciles a batch of independent queries. A failure in one
// query never affects the others.
func (r *Resolver) ResolveAll(ctx context.Context, queries map[string]Query) map[string][]Candidate {
	results := make(map[string][]Candidate, len(queries))
	for key, query := range queries {
		results[key] = r.Resolve(ctx, query)
	}
	return results
}

// Resolve produces a ranked, auto-match-flagged candidate list for one
// query. Catalog failures degrade to fewer (or zero) candidates.
func (r *Resolver) Resolve(ctx context.Context, query Query) []Candidate {
	pool := make([]tmdb.SearchResult, 0, r.maxCandidates)
	seen := make(map[int64]struct{})
	merge := func(results []tmdb.SearchResult) {
		for _, hit := range results {
			if _, ok := seen[hit.ID]; ok {
				continue
			}
			seen[hit.ID] = struct{}{}
			pool = append(pool, hit)
		}
	}

	if query.Year > 0 {
		for _, year := range []int{query.Year - 1, query.Year, query.Year + 1} {
			merge(r.search(ctx, query.Text, year))
		}

		// An unambiguous title+year agreement is treated as certain: no
		// further searches, scoring, or detail fetches.
		if exact := exactMatches(pool, query); len(exact) == 1 {
			hit := exact[0]
			r.logger.Debug("exact title+year match",
				logging.String("query", query.Text),
				logging.Int64("tmdb_id", hit.ID))
			return []Candidate{{
				ID:    strconv.FormatInt(hit.ID, 10),
				Name:  hit.Title,
				Score: 100,
				Match: true,
			}}
		}
	}

	merge(r.search(ctx, query.Text, 0))
	if len(pool) > r.maxCandidates {
		pool = pool[:r.maxCandidates]
	}

	// One detail record serves both director and country scoring; skip the
	// fetches entirely when neither hint is present.
	var details map[int64]*tmdb.MovieDetails
	if query.Director != "" || query.Country != "" {
		details = r.fetchDetails(ctx, pool)
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, hit := range pool {
		base := 30
		if textutil.TitlesMatch(hit.Title, query.Text) {
			base = 60
		}
		score := base + ScoreYear(releaseYear(hit.ReleaseDate), query.Year)
		if detail, ok := details[hit.ID]; ok {
			score += ScoreDirector(detail.Credits.Crew, query.Director)
			score += ScoreCountry(detail.ProductionCountries, query.Country)
		}
		candidates = append(candidates, Candidate{
			ID:    strconv.FormatInt(hit.ID, 10),
			Name:  hit.Title,
			Score: clampScore(score),
		})
	}

	flagAutoMatches(candidates)
	sortByScoreStable(candidates)
	return candidates
}

// flagAutoMatches applies the two-tier auto-match rule: a sole candidate in
// the high-confidence band is accepted regardless of absolute score;
// otherwise each candidate must clear the auto-match threshold on its own.
func flagAutoMatches(candidates []Candidate) {
	highConfidence := 0
	for _, c := range candidates {
		if c.Score >= highConfidenceBand {
			highConfidence++
		}
	}
	for i := range candidates {
		if highConfidence == 1 && candidates[i].Score >= highConfidenceBand {
			candidates[i].Match = true
		} else {
			candidates[i].Match = candidates[i].Score >= autoMatchScore
		}
	}
}

func (r *Resolver) search(ctx context.Context, text string, year int) []tmdb.SearchResult {
	resp, err := r.client.SearchMovie(ctx, text, tmdb.SearchOptions{Year: year})
	if err != nil {
		r.logger.Warn("catalog search failed",
			logging.String("query", text),
			logging.Int("year", year),
			logging.Error(err))
		return nil
	}
	if resp == nil {
		return nil
	}
	return resp.Results
}

// fetchDetails retrieves detail records for the pool with bounded
// parallelism. Results are keyed by TMDB id so candidate ordering stays
// deterministic regardless of completion order. A failed fetch yields an
// empty record, which still passes through the scorers.
func (r *Resolver) fetchDetails(ctx context.Context, pool []tmdb.SearchResult) map[int64]*tmdb.MovieDetails {
	details := make(map[int64]*tmdb.MovieDetails, len(pool))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, r.fetchWorkers)

	for _, hit := range pool {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				mu.Lock()
				details[id] = &tmdb.MovieDetails{}
				mu.Unlock()
				return
			}
			defer func() { <-sem }()

			detail, err := r.client.GetMovieDetails(ctx, id)
			if err != nil || detail == nil {
				if err != nil {
					r.logger.Warn("detail fetch failed",
						logging.Int64("tmdb_id", id),
						logging.Error(err))
				}
				detail = &tmdb.MovieDetails{}
			}
			mu.Lock()
			details[id] = detail
			mu.Unlock()
		}(hit.ID)
	}
	wg.Wait()
	return details
}

func exactMatches(pool []tmdb.SearchResult, query Query) []tmdb.SearchResult {
	var exact []tmdb.SearchResult
	for _, hit := range pool {
		year, err := strconv.Atoi(releaseYear(hit.ReleaseDate))
		if err != nil {
			continue
		}
		diff := year - query.Year
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 && textutil.TitlesMatch(hit.Title, query.Text) {
			exact = append(exact, hit)
		}
	}
	return exact
}

// releaseYear extracts the year segment of a TMDB release date (YYYY-MM-DD).
func releaseYear(releaseDate string) string {
	if len(releaseDate) < 4 {
		return ""
	}
	return releaseDate[:4]
}

// sortByScoreStable orders candidates by descending score; equal scores
// keep their arrival order from the catalog searches.
func sortByScoreStable(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
