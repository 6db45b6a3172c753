package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/rpggio/taskboard/internal/motivation"
	"github.com/rpggio/taskboard/internal/projection"
	"github.com/rpggio/taskboard/internal/views"
)

func viewParams(r *http.Request) (projection.Params, error) {
	q := r.URL.Query()
	return views.ParseParams(q.Get("status"), q.Get("category"))
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return n, nil
}

func (s *Server) handleListView(w http.ResponseWriter, r *http.Request) {
	p, err := viewParams(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	view, err := s.svc.Views.List(r.Context(), s.userID(r), p)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMatrixView(w http.ResponseWriter, r *http.Request) {
	p, err := viewParams(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	view, err := s.svc.Views.Matrix(r.Context(), s.userID(r), p)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleTimetableView(w http.ResponseWriter, r *http.Request) {
	p, err := viewParams(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	view, err := s.svc.Views.Timetable(r.Context(), s.userID(r), r.URL.Query().Get("date"), p)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleWeekView(w http.ResponseWriter, r *http.Request) {
	p, err := viewParams(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	step, err := intParam(r, "step", 0)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	view, err := s.svc.Views.Week(r.Context(), s.userID(r), r.URL.Query().Get("anchor"), step, p)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMonthView(w http.ResponseWriter, r *http.Request) {
	p, err := viewParams(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	step, err := intParam(r, "step", 0)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	view, err := s.svc.Views.Month(r.Context(), s.userID(r), r.URL.Query().Get("anchor"), step, p)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Views.Dashboard(r.Context(), s.userID(r), r.URL.Query().Get("today"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.svc.Views.Categories(r.Context(), s.userID(r))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	entries, err := s.svc.Activity.GetRecentActivity(r.Context(), s.userID(r), activity.ListActivityOptions{Limit: limit})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activity": entries})
}

type motivationResponse struct {
	Quote       motivation.Quote `json:"quote"`
	Affirmation string           `json:"affirmation"`
	Tip         motivation.Tip   `json:"tip"`
	TipIndex    int              `json:"tip_index"`
	TipCount    int              `json:"tip_count"`
}

func (s *Server) handleMotivation(w http.ResponseWriter, r *http.Request) {
	tip, err := intParam(r, "tip", 0)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	n := motivation.TipCount()
	s.randMu.Lock()
	resp := motivationResponse{
		Quote:       motivation.RandomQuote(s.rand),
		Affirmation: motivation.RandomAffirmation(s.rand),
	}
	s.randMu.Unlock()
	resp.Tip = motivation.TipAt(tip)
	resp.TipIndex = ((tip % n) + n) % n
	resp.TipCount = n

	writeJSON(w, http.StatusOK, resp)
}
