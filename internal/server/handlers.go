package server

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/giantswarm/wirecheck/internal/formatting"
)

type statusResponse struct {
	Status string `json:"status"`
	RunID  string `json:"runId,omitempty"`
	Cycles int    `json:"cycles,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, statusResponse{Status: "ok"})
}

// handleReady reports 503 while the registrations contain cycles. A skipped
// validation counts as ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.result.Passed() {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, statusResponse{Status: "circular dependencies", RunID: s.result.RunID, Cycles: len(s.result.Cycles)})
		return
	}
	render.JSON(w, r, statusResponse{Status: "ready", RunID: s.result.RunID})
}

func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, formatting.NewGraphView(s.result.Graph))
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, formatting.NewResultView(s.result))
}
