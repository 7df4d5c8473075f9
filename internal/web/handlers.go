package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coursetrail/coursetrail/internal/course"
	"github.com/coursetrail/coursetrail/internal/disclosure"
)

// uiResponse is the JSON reply for state-changing actions: the now-active
// view, the re-rendered timeline (when a course is showing), and any
// active toasts.
type uiResponse struct {
	View   View    `json:"view"`
	HTML   string  `json:"html,omitempty"`
	Toasts []Toast `json:"toasts"`
	Error  string  `json:"error,omitempty"`
}

// statusResponse is the JSON reply for the landing page's backend probe.
type statusResponse struct {
	Connected bool          `json:"connected"`
	OllamaURL string        `json:"ollama_url,omitempty"`
	Models    []modelOption `json:"models"`
	Error     string        `json:"error,omitempty"`
}

type modelOption struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := statusResponse{Models: []modelOption{}}

	health, err := s.backend.CheckHealth(ctx)
	if err != nil {
		// Connectivity failures show as a persistent inline status on
		// the landing view, not as a toast.
		log.Printf("web: health check: %v", err)
		resp.Error = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Connected = health.Connected
	resp.OllamaURL = health.OllamaURL
	if !health.Connected && health.Detail != "" {
		resp.Error = health.Detail
	}

	models, err := s.backend.ListModels(ctx)
	if err != nil {
		log.Printf("web: listing models: %v", err)
		resp.Error = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}
	for _, m := range models {
		resp.Models = append(resp.Models, modelOption{Name: m.Name, Size: m.Size})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.respondState(w, http.StatusOK)
}

func (s *Server) handleStartCourse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal  string `json:"goal"`
		Model string `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, uiResponse{View: s.CurrentView(), Error: "invalid request body", Toasts: s.toasts.Active()})
		return
	}

	// Reject bad input before the view flips to loading, so a rejected
	// request is invisible to other connected pages.
	if err := disclosure.ValidateRequest(req.Goal, req.Model); err != nil {
		writeJSON(w, http.StatusBadRequest, uiResponse{View: s.CurrentView(), Error: err.Error(), Toasts: s.toasts.Active()})
		return
	}

	s.setView(ViewLoading)
	s.hub.Broadcast(Event{Type: "refresh", View: ViewLoading})

	if err := s.ctrl.StartCourse(r.Context(), req.Goal, req.Model); err != nil {
		s.setView(ViewLanding)
		log.Printf("web: outline generation: %v", err)
		t := s.toasts.Error(err.Error())
		s.hub.Broadcast(Event{Type: "toast", Toast: &t})
		s.hub.Broadcast(Event{Type: "refresh", View: ViewLanding})
		writeJSON(w, http.StatusBadGateway, uiResponse{View: ViewLanding, Error: err.Error(), Toasts: s.toasts.Active()})
		return
	}

	s.setView(ViewCourse)
	t := s.toasts.Success("Course outline ready")
	s.hub.Broadcast(Event{Type: "toast", Toast: &t})
	s.hub.Broadcast(Event{Type: "refresh", View: ViewCourse})
	s.respondState(w, http.StatusOK)
}

func (s *Server) handleResetCourse(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Reset()
	s.setView(ViewLanding)
	s.hub.Broadcast(Event{Type: "refresh", View: ViewLanding})
	s.respondState(w, http.StatusOK)
}

func (s *Server) handleToggleWeek(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, uiResponse{View: s.CurrentView(), Error: "invalid week number", Toasts: s.toasts.Active()})
		return
	}

	if err := s.ctrl.ToggleWeek(r.Context(), week); err != nil {
		s.respondActionError(w, "week generation", err)
		return
	}
	s.hub.Broadcast(Event{Type: "refresh", View: ViewCourse})
	s.respondState(w, http.StatusOK)
}

func (s *Server) handleLoadDay(w http.ResponseWriter, r *http.Request) {
	week, werr := strconv.Atoi(chi.URLParam(r, "week"))
	day, derr := strconv.Atoi(chi.URLParam(r, "day"))
	if werr != nil || derr != nil {
		writeJSON(w, http.StatusBadRequest, uiResponse{View: s.CurrentView(), Error: "invalid week or day number", Toasts: s.toasts.Active()})
		return
	}

	if err := s.ctrl.LoadDay(r.Context(), week, day); err != nil {
		s.respondActionError(w, "day generation", err)
		return
	}
	s.hub.Broadcast(Event{Type: "refresh", View: ViewCourse})
	s.respondState(w, http.StatusOK)
}

// respondActionError maps a failed week/day action onto the wire. Requests
// against state that cannot accept them are client errors; backend and
// transport failures surface as a toast while the course view stays up
// with the week or day back in its pre-fetch state, so repeating the
// click retries.
func (s *Server) respondActionError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, course.ErrNoCourse),
		errors.Is(err, course.ErrUnknownWeek),
		errors.Is(err, course.ErrUnknownDay),
		errors.Is(err, course.ErrWeekNotExpanded):
		writeJSON(w, http.StatusBadRequest, uiResponse{View: s.CurrentView(), Error: err.Error(), Toasts: s.toasts.Active()})
		return
	}

	log.Printf("web: %s: %v", action, err)
	t := s.toasts.Error(err.Error())
	s.hub.Broadcast(Event{Type: "toast", Toast: &t})
	s.respondState(w, http.StatusOK)
}

// respondState renders the current view into a uiResponse.
func (s *Server) respondState(w http.ResponseWriter, status int) {
	resp := uiResponse{View: s.CurrentView(), Toasts: s.toasts.Active()}
	if resp.Toasts == nil {
		resp.Toasts = []Toast{}
	}

	if resp.View == ViewCourse {
		snapshot := s.store.Snapshot()
		if snapshot == nil {
			// Store was cleared underneath us; fall back to landing.
			s.setView(ViewLanding)
			resp.View = ViewLanding
		} else {
			html, err := s.renderer.Timeline(snapshot)
			if err != nil {
				log.Printf("web: rendering timeline: %v", err)
				writeJSON(w, http.StatusInternalServerError, uiResponse{View: resp.View, Error: "rendering failed", Toasts: resp.Toasts})
				return
			}
			resp.HTML = string(html)
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
