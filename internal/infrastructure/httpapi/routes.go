package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
)

type healthResponse struct {
	Status   string   `json:"status"`
	Services Services `json:"services"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Services: s.services,
	})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var req handlers.MonthRequest
	var err error

	if req.Year, err = intParam(q.Get("year"), "year"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Month, err = intParam(q.Get("month"), "month"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Limit, err = intParam(q.Get("limit"), "limit"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Translate, err = boolParam(q.Get("translate"), "translate", true); err != nil {
		s.fail(w, r, err)
		return
	}
	req.Platform = q.Get("platform")

	view, err := s.releases.HandleMonth(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := handlers.SearchRequest{
		Query:    strings.TrimSpace(q.Get("q")),
		Platform: q.Get("platform"),
	}
	var err error

	if req.Limit, err = intParam(q.Get("limit"), "limit"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Translate, err = boolParam(q.Get("translate"), "translate", true); err != nil {
		s.fail(w, r, err)
		return
	}

	view, err := s.releases.HandleSearch(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	view, err := s.details.Handle(r.Context(), handlers.DetailRequest{
		Name:     r.PathValue("name"),
		Fallback: r.URL.Query().Get("fallback_name"),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	view, err := s.history.Handle(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

// intParam parses an optional integer query parameter. Empty means zero.
func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", handlers.ErrInvalidRequest, name)
	}
	return v, nil
}

func boolParam(raw, name string, fallback bool) (bool, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", handlers.ErrInvalidRequest, name)
	}
	return v, nil
}
