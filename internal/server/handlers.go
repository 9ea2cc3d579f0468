package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DrSkyle/timeslash/pkg/reltime"
)

type resolution struct {
	Expression string    `json:"expression"`
	Resolved   time.Time `json:"resolved"`
	Unix       int64     `json:"unix"`
}

type resolveResponse struct {
	Anchor  time.Time    `json:"anchor"`
	Results []resolution `json:"results"`
}

type rangeResponse struct {
	Anchor time.Time `json:"anchor"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
}

type parseTerm struct {
	Kind  string `json:"kind"`
	Value uint32 `json:"value,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

type parseResponse struct {
	Expression string      `json:"expression"`
	Terms      []parseTerm `json:"terms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// anchor derives the instant "now" refers to for one request: the at
// parameter when given, otherwise a single clock sample.
func (s *Server) anchor(at, tz string) (time.Time, error) {
	loc := time.Local
	switch strings.ToLower(tz) {
	case "":
	case "local":
	case "utc":
		loc = time.UTC
	default:
		var err error
		if loc, err = time.LoadLocation(tz); err != nil {
			return time.Time{}, fmt.Errorf("unknown timezone %q", tz)
		}
	}

	if at == "" {
		return s.now().In(loc), nil
	}
	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor %q: must be RFC 3339", at)
	}
	return t.In(loc), nil
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expr := q.Get("expr")
	if expr == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing expr parameter"))
		return
	}

	anchor, err := s.anchor(q.Get("at"), q.Get("tz"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	expanded := s.settings.Preset(expr)
	resolved, err := reltime.Resolve(expanded, anchor)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Anchor: anchor,
		Results: []resolution{{
			Expression: expanded,
			Resolved:   resolved,
			Unix:       resolved.Unix(),
		}},
	})
}

type resolveBatchRequest struct {
	Expressions []string `json:"expressions"`
	At          string   `json:"at"`
	Timezone    string   `json:"tz"`
}

func (s *Server) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	var req resolveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if len(req.Expressions) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("expressions must not be empty"))
		return
	}

	// One clock sample for the whole batch, so the expressions agree on
	// what "now" means.
	anchor, err := s.anchor(req.At, req.Timezone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results := make([]resolution, 0, len(req.Expressions))
	for _, expr := range req.Expressions {
		expanded := s.settings.Preset(expr)
		resolved, err := reltime.Resolve(expanded, anchor)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%s: %w", expr, err))
			return
		}
		results = append(results, resolution{
			Expression: expanded,
			Resolved:   resolved,
			Unix:       resolved.Unix(),
		})
	}

	writeJSON(w, http.StatusOK, resolveResponse{Anchor: anchor, Results: results})
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("both from and to are required"))
		return
	}

	anchor, err := s.anchor(q.Get("at"), q.Get("tz"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start, end, err := reltime.ResolveRange(s.settings.Preset(from), s.settings.Preset(to), anchor)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, rangeResponse{Anchor: anchor, From: start, To: end})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	expr := r.URL.Query().Get("expr")
	if expr == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing expr parameter"))
		return
	}

	expanded := s.settings.Preset(expr)
	exprs, err := reltime.ParseAll(expanded)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	terms := make([]parseTerm, len(exprs))
	for i, e := range exprs {
		term := parseTerm{Kind: e.Kind.String()}
		if e.Kind != reltime.ExprNow {
			term.Unit = e.Unit.String()
		}
		if e.Kind == reltime.ExprAdd || e.Kind == reltime.ExprSub {
			term.Value = e.Value
		}
		terms[i] = term
	}

	writeJSON(w, http.StatusOK, parseResponse{Expression: expanded, Terms: terms})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
