package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/server/middleware"
	"github.com/rafael/jobmatch/internal/types"
)

// handleEmployerDashboard returns the caller's company dashboard.
func (s *Server) handleEmployerDashboard(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if identity.Role != string(types.RoleEmployer) {
		s.errorResponse(w, http.StatusForbidden, "employer account required")
		return
	}

	companyID, err := s.companyFor(r, identity.UserID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	dash, err := s.engine.GetEmployerDashboard(r.Context(), companyID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, dash)
}

// handleCandidateDashboard returns the caller's seeker dashboard.
func (s *Server) handleCandidateDashboard(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if identity.Role != string(types.RoleCandidate) {
		s.errorResponse(w, http.StatusForbidden, "candidate account required")
		return
	}

	dash, err := s.engine.GetCandidateDashboard(r.Context(), identity.UserID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, dash)
}

// companyFor resolves the company an employer account acts for.
func (s *Server) companyFor(r *http.Request, userID uuid.UUID) (uuid.UUID, error) {
	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil || user.CompanyID == nil {
		return uuid.Nil, &ErrInvalidCredentials{}
	}
	return *user.CompanyID, nil
}
