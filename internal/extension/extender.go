package extension

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"log/slog"

	"reelmatch/internal/logging"
	"reelmatch/internal/tmdb"
)

// Detailer is the subset of the TMDB client used by the extender.
type Detailer interface {
	GetMovieDetails(ctx context.Context, movieID int64) (*tmdb.MovieDetails, error)
}

const defaultExtendWorkers = 4

// ColumnType tags entity-kinded columns on the wire. Other kinds carry no
// type tag.
type ColumnType struct {
	ID string `json:"id"`
}

// ColumnMeta is one column header in an extension response.
type ColumnMeta struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type *ColumnType `json:"type,omitempty"`
}

// Result is a complete extension response: column headers plus, per entity
// id, the cells for each requested property.
type Result struct {
	Meta []ColumnMeta                 `json:"meta"`
	Rows map[string]map[string][]Cell `json:"rows"`
}

// Extender fetches detail records and assembles extension results.
type Extender struct {
	client       Detailer
	logger       *slog.Logger
	fetchWorkers int
}

// NewExtender creates an extender backed by the supplied catalog client.
func NewExtender(client Detailer, logger *slog.Logger, fetchWorkers int) *Extender {
	if fetchWorkers <= 0 {
		fetchWorkers = defaultExtendWorkers
	}
	return &Extender{
		client:       client,
		logger:       logging.NewComponentLogger(logger, "extender"),
		fetchWorkers: fetchWorkers,
	}
}

// Extend fetches one detail record per entity id and extracts the requested
// properties. Fetches run with bounded parallelism and fail independently:
// an id whose fetch fails still appears in the rows, with empty cell lists.
func (e *Extender) Extend(ctx context.Context, ids []string, propertyIDs []string) *Result {
	meta := make([]ColumnMeta, 0, len(propertyIDs))
	for _, pid := range propertyIDs {
		p := Describe(pid)
		entry := ColumnMeta{ID: p.ID, Name: p.Name}
		if p.Kind == KindEntity {
			entry.Type = &ColumnType{ID: string(KindEntity)}
		}
		meta = append(meta, entry)
	}

	details := e.fetchAll(ctx, ids)
	rows := make(map[string]map[string][]Cell, len(ids))
	for _, id := range ids {
		row := make(map[string][]Cell, len(propertyIDs))
		for _, pid := range propertyIDs {
			cells := Extract(pid, details[id])
			if cells == nil {
				cells = []Cell{}
			}
			row[pid] = cells
		}
		rows[id] = row
	}

	return &Result{Meta: meta, Rows: rows}
}

// fetchAll retrieves detail records for all ids with bounded parallelism,
// keyed by the raw id string. Unparseable ids and failed fetches map to an
// empty record so extraction degrades to empty cells.
func (e *Extender) fetchAll(ctx context.Context, ids []string) map[string]*tmdb.MovieDetails {
	details := make(map[string]*tmdb.MovieDetails, len(ids))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.fetchWorkers)

	for _, id := range ids {
		mu.Lock()
		_, dup := details[id]
		details[id] = &tmdb.MovieDetails{}
		mu.Unlock()
		if dup {
			continue
		}

		movieID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil || movieID <= 0 {
			e.logger.Warn("skipping malformed entity id", logging.String("entity_id", id))
			continue
		}

		wg.Add(1)
		go func(key string, movieID int64) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			detail, err := e.client.GetMovieDetails(ctx, movieID)
			if err != nil || detail == nil {
				if err != nil {
					e.logger.Warn("detail fetch failed",
						logging.String("entity_id", key),
						logging.Error(err))
				}
				return
			}
			mu.Lock()
			details[key] = detail
			mu.Unlock()
		}(id, movieID)
	}
	wg.Wait()
	return details
}
