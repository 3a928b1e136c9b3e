package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafael/jobmatch/internal/config"
	"github.com/rafael/jobmatch/internal/store"
	"github.com/rafael/jobmatch/internal/types"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("BCRYPT_COST", "10")

	s, err := NewWithStore(config.Config{Port: 0, WindowDays: 7}, store.NewMemory(), nil)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	t.Cleanup(s.rateLimiter.Stop)
	return s, ts
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func register(t *testing.T, ts *httptest.Server, name, email string, role types.UserRole) types.LoginResponse {
	t.Helper()
	resp := doJSON(t, "POST", ts.URL+"/auth/register", "", types.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "hunter2-long",
		Role:     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[types.LoginResponse](t, resp)
}

func createJob(t *testing.T, ts *httptest.Server, token string, req types.CreateJobRequest) types.JobPosting {
	t.Helper()
	resp := doJSON(t, "POST", ts.URL+"/jobs", token, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[types.JobPosting](t, resp)
}

func sampleJobRequest() types.CreateJobRequest {
	return types.CreateJobRequest{
		Title:          "Backend Engineer",
		Location:       "Berlin",
		Remote:         true,
		JobType:        types.JobTypeFullTime,
		SalaryMin:      90000,
		SalaryMax:      120000,
		Tags:           []string{"go", "backend"},
		Description:    "Build the matching engine",
		SkillsRequired: []string{"Go", "SQL"},
	}
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestRegisterAndLogin(t *testing.T) {
	_, ts := newTestServer(t)

	reg := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	assert.NotEmpty(t, reg.Token)
	require.NotNil(t, reg.User.CompanyID, "employer accounts get a company")

	resp := doJSON(t, "POST", ts.URL+"/auth/login", "", types.LoginRequest{
		Email: "hiring@acme.test", Password: "hunter2-long",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[types.LoginResponse](t, resp)
	assert.Equal(t, reg.User.ID, login.User.ID)

	resp = doJSON(t, "POST", ts.URL+"/auth/login", "", types.LoginRequest{
		Email: "hiring@acme.test", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	_, ts := newTestServer(t)

	register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)

	resp := doJSON(t, "POST", ts.URL+"/auth/register", "", types.RegisterRequest{
		Name: "Acme Again", Email: "hiring@acme.test", Password: "hunter2-long", Role: types.RoleEmployer,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateJob_CandidateForbidden(t *testing.T) {
	_, ts := newTestServer(t)
	candidate := register(t, ts, "Sam Seeker", "sam@example.test", types.RoleCandidate)

	resp := doJSON(t, "POST", ts.URL+"/jobs", candidate.Token, sampleJobRequest())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateJob_RequiresToken(t *testing.T) {
	_, ts := newTestServer(t)

	resp := doJSON(t, "POST", ts.URL+"/jobs", "", sampleJobRequest())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestSearchJobs_AnonymousAndScored(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	candidate := register(t, ts, "Sam Seeker", "sam@example.test", types.RoleCandidate)
	createJob(t, ts, employer.Token, sampleJobRequest())

	resp := doJSON(t, "PUT", ts.URL+"/profile", candidate.Token, types.UpdateProfileRequest{
		FirstName: "Sam", LastName: "Seeker", Skills: []string{"Go", "SQL"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	type searchResponse struct {
		Jobs []struct {
			Posting types.JobPosting `json:"posting"`
			Score   *int             `json:"score"`
			Band    string           `json:"band"`
		} `json:"jobs"`
	}

	resp = doJSON(t, "GET", ts.URL+"/jobs?q=backend", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	anon := decode[searchResponse](t, resp)
	require.Len(t, anon.Jobs, 1)
	assert.Nil(t, anon.Jobs[0].Score)

	resp = doJSON(t, "GET", ts.URL+"/jobs?q=backend&sort=relevant", candidate.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	scored := decode[searchResponse](t, resp)
	require.Len(t, scored.Jobs, 1)
	require.NotNil(t, scored.Jobs[0].Score)
	assert.Equal(t, 90, *scored.Jobs[0].Score)
	assert.Equal(t, "strong", scored.Jobs[0].Band)
}

func TestSearchJobs_OneSidedSalaryRange(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	createJob(t, ts, employer.Token, sampleJobRequest()) // 90k-120k
	low := sampleJobRequest()
	low.Title = "Junior Backend Engineer"
	low.SalaryMin, low.SalaryMax = 50000, 70000
	createJob(t, ts, employer.Token, low)

	search := func(query string) []any {
		resp := doJSON(t, "GET", ts.URL+"/jobs?"+query, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decode[map[string][]any](t, resp)["jobs"]
	}

	// salary_min alone is a floor, not an empty band.
	assert.Len(t, search("salary_min=50"), 2)
	assert.Len(t, search("salary_min=80"), 1)
	assert.Empty(t, search("salary_min=150"))

	// salary_max alone is a ceiling.
	assert.Len(t, search("salary_max=80"), 1)
	assert.Len(t, search("salary_max=200"), 2)
}

func TestSearchJobs_FilterMiss(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	createJob(t, ts, employer.Token, sampleJobRequest())

	resp := doJSON(t, "GET", ts.URL+"/jobs?q=astronaut", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string][]any](t, resp)
	assert.Empty(t, body["jobs"])
}

func TestApplyAndTransitionFlow(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	candidate := register(t, ts, "Sam Seeker", "sam@example.test", types.RoleCandidate)
	job := createJob(t, ts, employer.Token, sampleJobRequest())

	applyURL := fmt.Sprintf("%s/jobs/%s/applications", ts.URL, job.ID)

	resp := doJSON(t, "POST", applyURL, candidate.Token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	app := decode[types.Application](t, resp)
	assert.Equal(t, types.StatusNew, app.Status)

	// Duplicate application
	resp = doJSON(t, "POST", applyURL, candidate.Token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Employers cannot apply
	resp = doJSON(t, "POST", applyURL, employer.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	transitionURL := fmt.Sprintf("%s/applications/%s/status", ts.URL, app.ID)

	// Invalid edge straight to Hired
	resp = doJSON(t, "POST", transitionURL, employer.Token, types.TransitionRequest{Status: types.StatusHired})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Valid edge
	resp = doJSON(t, "POST", transitionURL, employer.Token, types.TransitionRequest{Status: types.StatusReviewed})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moved := decode[struct {
		Application  types.Application        `json:"application"`
		Presentation types.StatusPresentation `json:"presentation"`
	}](t, resp)
	assert.Equal(t, types.StatusReviewed, moved.Application.Status)
	assert.Len(t, moved.Application.StatusHistory, 2)
	assert.Equal(t, "yellow", moved.Presentation.Color)

	// Candidate cannot move their own application
	resp = doJSON(t, "POST", transitionURL, candidate.Token, types.TransitionRequest{Status: types.StatusInterview})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestGetApplication_AccessControl(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	candidate := register(t, ts, "Sam Seeker", "sam@example.test", types.RoleCandidate)
	outsider := register(t, ts, "Eve Else", "eve@example.test", types.RoleCandidate)
	job := createJob(t, ts, employer.Token, sampleJobRequest())

	resp := doJSON(t, "POST", fmt.Sprintf("%s/jobs/%s/applications", ts.URL, job.ID), candidate.Token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	app := decode[types.Application](t, resp)

	appURL := fmt.Sprintf("%s/applications/%s", ts.URL, app.ID)

	for _, token := range []string{candidate.Token, employer.Token} {
		resp = doJSON(t, "GET", appURL, token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doJSON(t, "GET", appURL, outsider.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestJobStatusToggleAndClosedApply(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	rival := register(t, ts, "Rival Inc", "talent@rival.test", types.RoleEmployer)
	candidate := register(t, ts, "Sam Seeker", "sam@example.test", types.RoleCandidate)
	job := createJob(t, ts, employer.Token, sampleJobRequest())

	statusURL := fmt.Sprintf("%s/jobs/%s/status", ts.URL, job.ID)

	// A rival employer cannot toggle the posting
	resp := doJSON(t, "POST", statusURL, rival.Token, map[string]string{"status": "Inactive"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "POST", statusURL, employer.Token, map[string]string{"status": "Inactive"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	toggled := decode[types.JobPosting](t, resp)
	assert.Equal(t, types.JobStatusInactive, toggled.Status)

	// Applying to a closed posting conflicts
	resp = doJSON(t, "POST", fmt.Sprintf("%s/jobs/%s/applications", ts.URL, job.ID), candidate.Token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestArchiveJob(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	job := createJob(t, ts, employer.Token, sampleJobRequest())

	resp := doJSON(t, "DELETE", fmt.Sprintf("%s/jobs/%s", ts.URL, job.ID), employer.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Archived postings are out of the catalog
	resp = doJSON(t, "GET", ts.URL+"/jobs", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string][]any](t, resp)
	assert.Empty(t, body["jobs"])
}

func TestViewJob_CountsViews(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	job := createJob(t, ts, employer.Token, sampleJobRequest())

	jobURL := fmt.Sprintf("%s/jobs/%s", ts.URL, job.ID)
	resp := doJSON(t, "GET", jobURL, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "GET", jobURL, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	seen := decode[types.JobPosting](t, resp)
	assert.Equal(t, 2, seen.ViewCount)
}

func TestDashboards(t *testing.T) {
	_, ts := newTestServer(t)
	employer := register(t, ts, "Acme Corp", "hiring@acme.test", types.RoleEmployer)
	candidate := register(t, ts, "Sam Seeker", "sam@example.test", types.RoleCandidate)
	job := createJob(t, ts, employer.Token, sampleJobRequest())
	createJob(t, ts, employer.Token, func() types.CreateJobRequest {
		req := sampleJobRequest()
		req.Title = "Platform Engineer"
		return req
	}())

	resp := doJSON(t, "POST", fmt.Sprintf("%s/jobs/%s/applications", ts.URL, job.ID), candidate.Token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	type employerDash struct {
		Stats struct {
			ActiveJobs      int `json:"active_jobs"`
			TotalApplicants int `json:"total_applicants"`
			NewApplications int `json:"new_applications"`
		} `json:"stats"`
	}
	resp = doJSON(t, "GET", ts.URL+"/dashboard/employer", employer.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ed := decode[employerDash](t, resp)
	assert.Equal(t, 2, ed.Stats.ActiveJobs)
	assert.Equal(t, 1, ed.Stats.TotalApplicants)
	assert.Equal(t, 1, ed.Stats.NewApplications)

	type candidateDash struct {
		Stats struct {
			Total   int `json:"total"`
			Pending int `json:"pending"`
		} `json:"stats"`
		Recommended []any `json:"recommended"`
	}
	resp = doJSON(t, "GET", ts.URL+"/dashboard/candidate", candidate.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cd := decode[candidateDash](t, resp)
	assert.Equal(t, 1, cd.Stats.Total)
	assert.Equal(t, 1, cd.Stats.Pending)
	assert.Len(t, cd.Recommended, 1, "the unapplied posting is recommended")

	// Role mismatch on either dashboard
	resp = doJSON(t, "GET", ts.URL+"/dashboard/employer", candidate.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, "GET", ts.URL+"/dashboard/candidate", employer.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestProfileRoundTrip(t *testing.T) {
	_, ts := newTestServer(t)
	candidate := register(t, ts, "Sam Seeker", "sam@example.test", types.RoleCandidate)

	type profileResponse struct {
		Profile    types.CandidateProfile `json:"profile"`
		Completion int                    `json:"completion"`
	}

	resp := doJSON(t, "GET", ts.URL+"/profile", candidate.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	before := decode[profileResponse](t, resp)
	assert.Equal(t, 0, before.Completion)

	resp = doJSON(t, "PUT", ts.URL+"/profile", candidate.Token, types.UpdateProfileRequest{
		FirstName: "Sam",
		LastName:  "Seeker",
		Bio:       "Backend developer",
		Skills:    []string{"Go"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	after := decode[profileResponse](t, resp)
	assert.Equal(t, "Sam", after.Profile.FirstName)
	assert.Equal(t, 67, after.Completion) // 4 of 6 tracked fields
}
