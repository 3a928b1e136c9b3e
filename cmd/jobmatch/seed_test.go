package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafael/jobmatch/internal/store"
	"github.com/rafael/jobmatch/internal/types"
)

func TestLoadCatalog_SharesCompanyIDs(t *testing.T) {
	mem := store.NewMemory()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	catalog := seedCatalog{Jobs: []seedJob{
		{Title: "Backend Engineer", CompanyName: "Acme", Location: "Berlin", JobType: "full-time", Description: "x"},
		{Title: "Frontend Engineer", CompanyName: "Acme", Location: "Berlin", JobType: "full-time", Description: "x"},
		{Title: "Data Engineer", CompanyName: "Globex", Location: "Remote", Remote: true, JobType: "contract", Description: "x"},
	}}

	inserted, err := loadCatalog(context.Background(), mem, catalog, now)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	postings, err := mem.ListJobPostings(context.Background(), store.JobFilter{})
	require.NoError(t, err)
	require.Len(t, postings, 3)

	byCompany := make(map[string][]types.JobPosting)
	for _, p := range postings {
		byCompany[p.CompanyName] = append(byCompany[p.CompanyName], p)
		assert.Equal(t, types.JobStatusActive, p.Status)
		assert.Equal(t, now.AddDate(0, 0, 30), p.ExpiresAt)
	}

	require.Len(t, byCompany["Acme"], 2)
	assert.Equal(t, byCompany["Acme"][0].CompanyID, byCompany["Acme"][1].CompanyID)
	assert.NotEqual(t, byCompany["Acme"][0].CompanyID, byCompany["Globex"][0].CompanyID)
}

func TestLoadCatalog_CustomExpiry(t *testing.T) {
	mem := store.NewMemory()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	catalog := seedCatalog{Jobs: []seedJob{
		{Title: "Backend Engineer", CompanyName: "Acme", Location: "Berlin", JobType: "full-time", Description: "x", ExpiresInDays: 7},
	}}

	_, err := loadCatalog(context.Background(), mem, catalog, now)
	require.NoError(t, err)

	postings, err := mem.ListJobPostings(context.Background(), store.JobFilter{})
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, now.AddDate(0, 0, 7), postings[0].ExpiresAt)
}
