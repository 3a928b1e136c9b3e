package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/catalog"
	"github.com/rafael/jobmatch/internal/server/middleware"
	"github.com/rafael/jobmatch/internal/types"
)

// handleSearchJobs filters the active catalog. Query parameters:
// q, tags (comma separated), type, remote, salary_min, salary_max
// (thousands), sort. A valid bearer token is optional; when present the
// results carry match scores for that candidate.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	order := catalog.SortOrder(r.URL.Query().Get("sort"))
	if order == "" {
		order = catalog.SortRecent
	}
	if !order.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "unknown sort order: "+string(order))
		return
	}

	var candidateID *uuid.UUID
	if claims := s.optionalClaims(r); claims != nil && claims.Role == types.RoleCandidate {
		candidateID = &claims.UserID
	}

	matches, err := s.engine.SearchJobs(r.Context(), criteria, order, candidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": matches})
}

// handleGetJob returns one posting and counts the view.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	job, err := s.engine.ViewJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateJob publishes a posting for the caller's company.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.engine.CreateJob(r.Context(), identity.UserID, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleSetJobStatus toggles a posting between Active and Inactive.
func (s *Server) handleSetJobStatus(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	var req struct {
		Status types.JobStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != types.JobStatusActive && req.Status != types.JobStatusInactive {
		s.errorResponse(w, http.StatusBadRequest, "status must be Active or Inactive")
		return
	}

	job, err := s.engine.SetJobStatus(r.Context(), identity.UserID, jobID, req.Status)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleArchiveJob retires a posting.
func (s *Server) handleArchiveJob(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	if err := s.engine.ArchiveJob(r.Context(), identity.UserID, jobID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// optionalClaims returns the caller's claims when a valid bearer token is
// present, nil otherwise. Used on endpoints that serve anonymous traffic too.
func (s *Server) optionalClaims(r *http.Request) *Claims {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	claims, err := s.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil
	}
	return claims
}

// salaryUpperBound stands in for a missing salary_max, in thousands.
// The filter multiplies by 1000, so this stays comfortably inside int
// range while exceeding any real posting band.
const salaryUpperBound = 1_000_000

// parseCriteria reads filter criteria from query parameters.
func parseCriteria(r *http.Request) (catalog.Criteria, error) {
	q := r.URL.Query()
	criteria := catalog.Criteria{
		Keyword: q.Get("q"),
		JobType: types.JobType(q.Get("type")),
	}

	if tags := q.Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				criteria.Tags = append(criteria.Tags, tag)
			}
		}
	}

	if remote := q.Get("remote"); remote != "" {
		val, err := strconv.ParseBool(remote)
		if err != nil {
			return catalog.Criteria{}, err
		}
		criteria.RemoteOnly = val
	}

	minStr, maxStr := q.Get("salary_min"), q.Get("salary_max")
	if minStr != "" || maxStr != "" {
		// One-sided parameters act as half-open constraints: the
		// missing bound defaults so it matches everything.
		sr := catalog.SalaryRange{Max: salaryUpperBound}
		var err error
		if minStr != "" {
			if sr.Min, err = strconv.Atoi(minStr); err != nil {
				return catalog.Criteria{}, err
			}
		}
		if maxStr != "" {
			if sr.Max, err = strconv.Atoi(maxStr); err != nil {
				return catalog.Criteria{}, err
			}
		}
		criteria.SalaryRange = &sr
	}

	return criteria, nil
}
