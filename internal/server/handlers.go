package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"reelmatch/internal/extension"
	"reelmatch/internal/logging"
	"reelmatch/internal/reconcile"
)

// Reconciler resolves a batch of reconciliation queries.
type Reconciler interface {
	ResolveAll(ctx context.Context, queries map[string]reconcile.Query) map[string][]reconcile.Candidate
}

// Extender produces extension results for a set of entity ids.
type Extender interface {
	Extend(ctx context.Context, ids []string, propertyIDs []string) *extension.Result
}

// candidateJSON is the wire form of one reconciliation candidate.
type candidateJSON struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Match bool      `json:"match"`
	Type  []typeRef `json:"type"`
}

type queryResultJSON struct {
	Result []candidateJSON `json:"result"`
}

// reconcileQueryJSON is one entry of the queries= batch payload.
type reconcileQueryJSON struct {
	Query      string `json:"query"`
	Properties []struct {
		PID string `json:"pid"`
		V   any    `json:"v"`
	} `json:"properties"`
}

type extendRequestJSON struct {
	IDs        []string `json:"ids"`
	Properties []struct {
		ID string `json:"id"`
	} `json:"properties"`
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("parse form: %w", err))
			return
		}
	}
	queriesRaw := firstNonEmpty(r.PostFormValue("queries"), r.URL.Query().Get("queries"))
	extendRaw := firstNonEmpty(r.PostFormValue("extend"), r.URL.Query().Get("extend"))

	switch {
	case queriesRaw != "":
		s.serveQueries(w, r, queriesRaw)
	case extendRaw != "":
		s.serveExtend(w, r, extendRaw)
	default:
		s.writeJSON(w, r, buildManifest(s.baseURL))
	}
}

func (s *Server) serveQueries(w http.ResponseWriter, r *http.Request, raw string) {
	var batch map[string]reconcileQueryJSON
	if err := json.Unmarshal([]byte(raw), &batch); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("parse queries: %w", err))
		return
	}

	queries := make(map[string]reconcile.Query, len(batch))
	for key, entry := range batch {
		if strings.TrimSpace(entry.Query) == "" {
			s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("query %q is missing its text", key))
			return
		}
		query := reconcile.Query{Text: entry.Query}
		for _, prop := range entry.Properties {
			switch prop.PID {
			case "year":
				query.Year = coerceInt(prop.V)
			case "director":
				query.Director = coerceString(prop.V)
			case "country":
				query.Country = coerceString(prop.V)
			}
		}
		queries[key] = query
	}

	resolved := s.reconciler.ResolveAll(r.Context(), queries)
	response := make(map[string]queryResultJSON, len(resolved))
	for key, candidates := range resolved {
		entries := make([]candidateJSON, 0, len(candidates))
		for _, c := range candidates {
			entries = append(entries, candidateJSON{
				ID:    c.ID,
				Name:  c.Name,
				Score: c.Score,
				Match: c.Match,
				Type:  []typeRef{movieType},
			})
		}
		response[key] = queryResultJSON{Result: entries}
	}
	s.writeJSON(w, r, response)
}

func (s *Server) serveExtend(w http.ResponseWriter, r *http.Request, raw string) {
	var req extendRequestJSON
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("parse extend: %w", err))
		return
	}
	if len(req.IDs) == 0 {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("extend request has no ids"))
		return
	}

	propertyIDs := make([]string, 0, len(req.Properties))
	for _, p := range req.Properties {
		propertyIDs = append(propertyIDs, p.ID)
	}
	s.writeJSON(w, r, s.extender.Extend(r.Context(), req.IDs, propertyIDs))
}

// handleProposeProperties populates the extension column picker: the full
// registry, filtered by name substring, in a {type, properties} envelope.
func (s *Server) handleProposeProperties(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	filtered := extension.Filter(prefix)
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		if limit, err := strconv.Atoi(limitRaw); err == nil && limit > 0 && limit < len(filtered) {
			filtered = filtered[:limit]
		}
	}

	refs := make([]propertyRef, 0, len(filtered))
	for _, p := range filtered {
		refs = append(refs, propertyRef{ID: p.ID, Name: p.Name})
	}
	s.writeJSON(w, r, struct {
		Type       typeRef       `json:"type"`
		Properties []propertyRef `json:"properties"`
	}{movieType, refs})
}

// handleSuggestProperties autocompletes reconciliation input properties
// (year/director/country). It is distinct from propose_properties, which
// serves the extension registry; mixing the two breaks the client dialogs.
func (s *Server) handleSuggestProperties(w http.ResponseWriter, r *http.Request) {
	needle := strings.ToLower(r.URL.Query().Get("prefix"))
	filtered := make([]propertyRef, 0, len(reconcileInputProperties))
	for _, p := range reconcileInputProperties {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	s.writeJSON(w, r, struct {
		Result []propertyRef `json:"result"`
	}{filtered})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, struct {
		Status string `json:"status"`
	}{"ok"})
}

// writeJSON serializes payload, wrapping it in a JSONP callback when the
// request asks for one.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal response", logging.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if callback := r.URL.Query().Get("callback"); callback != "" {
		w.Header().Set("Content-Type", "application/javascript")
		fmt.Fprintf(w, "%s(%s)", callback, body)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Warn("rejecting request",
		logging.String("path", r.URL.Path),
		logging.Int("status", status),
		logging.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{err.Error()})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// coerceInt accepts the loosely typed values clients put in property
// slots: JSON numbers arrive as float64, years are often sent as strings.
func coerceInt(v any) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func coerceString(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}
