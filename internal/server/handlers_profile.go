package server

import (
	"encoding/json"
	"net/http"

	"github.com/rafael/jobmatch/internal/server/middleware"
	"github.com/rafael/jobmatch/internal/stats"
	"github.com/rafael/jobmatch/internal/types"
)

// handleGetProfile returns the caller's candidate profile with its
// completion percentage.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if identity.Role != string(types.RoleCandidate) {
		s.errorResponse(w, http.StatusForbidden, "candidate account required")
		return
	}

	profile, err := s.engine.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile":    profile,
		"completion": stats.ProfileCompletion(profile),
	})
}

// handleUpdateProfile saves the caller's candidate profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if identity.Role != string(types.RoleCandidate) {
		s.errorResponse(w, http.StatusForbidden, "candidate account required")
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.engine.UpdateProfile(r.Context(), identity.UserID, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile":    profile,
		"completion": stats.ProfileCompletion(profile),
	})
}
