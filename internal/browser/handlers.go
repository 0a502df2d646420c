package browser

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cognitivecopilot/graphkit/internal/history"
)

//go:embed static/index.html
var indexPage []byte

type executeRequest struct {
	Query string `json:"query"`
}

type executeResponse struct {
	Data    []map[string]any `json:"data"`
	Headers []string         `json:"headers"`
	Count   int              `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// handleIndex serves the browser page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

// handleExecute runs one Cypher query against a fresh driver connection.
func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no query provided"})
		return
	}

	start := time.Now()
	driver := s.newDriver()

	if err := driver.Connect(r.Context()); err != nil {
		s.log.Error().Err(err).Msg("driver connect failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	defer driver.Close()

	result, err := driver.Query(r.Context(), query, nil)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("query failed")
		s.record(history.Entry{
			Query:      query,
			Status:     "error",
			Error:      err.Error(),
			DurationMs: time.Since(start).Milliseconds(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.record(history.Entry{
		Query:      query,
		Status:     "ok",
		RowCount:   result.Count(),
		DurationMs: time.Since(start).Milliseconds(),
	})

	data := result.Rows
	if data == nil {
		data = []map[string]any{}
	}
	headers := result.Headers
	if headers == nil {
		headers = []string{}
	}
	writeJSON(w, http.StatusOK, executeResponse{
		Data:    data,
		Headers: headers,
		Count:   result.Count(),
	})
}

// record appends a history entry; history failures only get logged.
func (s *Server) record(e history.Entry) {
	if s.history == nil {
		return
	}
	if err := s.history.Append(e); err != nil {
		s.log.Warn().Err(err).Msg("failed to record query history")
	}
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}
	if !s.startedAt.IsZero() {
		resp["uptime"] = time.Since(s.startedAt).Truncate(time.Second).String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleHistory returns the most recent executed queries, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, map[string]any{"queries": []any{}})
		return
	}

	limit := s.cfg.History.Limit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		if n < limit || limit == 0 {
			limit = n
		}
	}

	entries, err := s.history.Recent(limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read query history")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"queries": entries})
}

// handleNotFound returns a 404 for unknown routes.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "not found",
		"path":  r.URL.Path,
	})
}
