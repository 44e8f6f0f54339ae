package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCandidateProfile(t *testing.T) {
	f := newFixture(t)
	candidate := f.candidate(t, "alex.johnson@email.com")

	updated, err := f.candidates.UpdateProfile(context.Background(), candidate.ID, dto.UpdateCandidateRequest{
		Name:            "Alex Johnson",
		Email:           "alex.johnson@email.com",
		Headline:        "Staff Engineer",
		YearsExperience: intPtr(4),
		Skills:          "Go, PostgreSQL",
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Headline)
	require.NotNil(t, updated.YearsExperience)
	assert.Equal(t, 4, *updated.YearsExperience)

	fetched, err := f.candidates.Get(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", fetched.Headline)
}

func TestUpdateCandidateEmailConflict(t *testing.T) {
	f := newFixture(t)
	candidate := f.candidate(t, "alex.johnson@email.com")
	f.candidate(t, "jordan.lee@email.com")

	_, err := f.candidates.UpdateProfile(context.Background(), candidate.ID, dto.UpdateCandidateRequest{
		Name:  "Alex Johnson",
		Email: "jordan.lee@email.com",
	})
	assert.ErrorIs(t, err, e.ErrConflict)

	// Keeping one's own email is never a conflict.
	_, err = f.candidates.UpdateProfile(context.Background(), candidate.ID, dto.UpdateCandidateRequest{
		Name:  "Alex J.",
		Email: "alex.johnson@email.com",
	})
	assert.NoError(t, err)
}

func TestCompanyCreateLinksManager(t *testing.T) {
	f := newFixture(t)
	hm := f.hiringManager(t, "sarah@acmeai.example.com")

	company, err := f.companies.Create(context.Background(), dto.CreateCompanyRequest{
		Name:            "CloudSync",
		Industry:        "Cloud Infrastructure",
		HiringManagerID: hm.ID.String(),
	})
	require.NoError(t, err)

	list, err := f.personas.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.HiringManagers, 1)
	require.Len(t, list.HiringManagers[0].Companies, 1)
	assert.Equal(t, company.ID, list.HiringManagers[0].Companies[0].ID)
}

func TestCompanyCreateUnknownManager(t *testing.T) {
	f := newFixture(t)

	_, err := f.companies.Create(context.Background(), dto.CreateCompanyRequest{
		Name:            "CloudSync",
		HiringManagerID: "0b0e7a36-1111-4222-8333-444455556666",
	})
	assert.ErrorIs(t, err, e.ErrNotFound)
}
