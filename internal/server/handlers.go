package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lzcampos/investment-calculator/internal/engine"
	"github.com/lzcampos/investment-calculator/types"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error                   string `json:"error"`
	Message                 string `json:"message"`
	EarliestInvestmentStart *int64 `json:"earliest_investment_start,omitempty"`
}

// GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GET /api/stock_infos/search?q=&limit=
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := s.directory.SearchSecurities(r.Context(), q, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []types.Security{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// POST /api/calculate_investment
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var params types.SimulationParams
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&params); err != nil {
		s.writeError(w, r, &engine.InvalidParameterError{Field: "body", Reason: fmt.Sprintf("malformed JSON: %v", err)})
		return
	}

	result, err := s.simulator.Run(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := engine.ErrorKind(err)
	resp := errorResponse{Error: kind, Message: err.Error()}

	var status int
	switch kind {
	case engine.KindSecurityNotFound:
		status = http.StatusNotFound
	case engine.KindInternal:
		status = http.StatusInternalServerError
		resp.Message = "internal error"
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	default:
		status = http.StatusBadRequest
	}

	var rangeErr *engine.StartBeforeRangeError
	if errors.As(err, &rangeErr) {
		earliest := rangeErr.Earliest
		resp.EarliestInvestmentStart = &earliest
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
