package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/server/middleware"
	"github.com/rafael/jobmatch/internal/types"
)

// handleApply creates an application by the calling candidate.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if identity.Role != string(types.RoleCandidate) {
		s.errorResponse(w, http.StatusForbidden, "only candidates can apply")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	app, err := s.engine.Apply(r.Context(), identity.UserID, jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

// handleGetApplication returns one application with its presentation
// metadata. Only the candidate who filed it or an employer of the posting's
// company may read it.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid application ID")
		return
	}

	app, err := s.engine.GetApplication(r.Context(), identity.UserID, appID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application":  app,
		"presentation": app.Status.Presentation(),
		"band":         types.BandForScore(app.MatchScore),
	})
}

// handleTransition moves an application to a new status.
func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid application ID")
		return
	}

	var req types.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := s.engine.Transition(r.Context(), identity.UserID, appID, req.Status)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application":  app,
		"presentation": app.Status.Presentation(),
	})
}
