package repository

import (
	"context"
	"testing"

	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationUniquePerRoleAndCandidate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	company := seedCompany(t, db, "Acme AI")
	hm := seedHiringManager(t, db, "sarah@acmeai.example.com")
	role := seedRole(t, db, company, hm)
	candidate := seedCandidate(t, db, "alex.johnson@email.com")

	first := &model.Application{ID: uuid.New(), RoleID: role.ID, CandidateID: candidate.ID, Status: model.ApplicationStatusNew}
	require.NoError(t, repo.Create(context.Background(), first))

	dup := &model.Application{ID: uuid.New(), RoleID: role.ID, CandidateID: candidate.ID, Status: model.ApplicationStatusNew}
	err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, e.ErrConflict)

	// Same candidate on a different role is fine.
	other := seedRole(t, db, company, hm)
	again := &model.Application{ID: uuid.New(), RoleID: other.ID, CandidateID: candidate.ID, Status: model.ApplicationStatusNew}
	assert.NoError(t, repo.Create(context.Background(), again))
}

func TestFindByRoleAndCandidate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	company := seedCompany(t, db, "Acme AI")
	hm := seedHiringManager(t, db, "sarah@acmeai.example.com")
	role := seedRole(t, db, company, hm)
	candidate := seedCandidate(t, db, "alex.johnson@email.com")

	_, err := repo.FindByRoleAndCandidate(context.Background(), role.ID, candidate.ID)
	assert.ErrorIs(t, err, e.ErrNotFound)

	created := seedApplication(t, db, role, candidate, model.ApplicationStatusNew)
	found, err := repo.FindByRoleAndCandidate(context.Background(), role.ID, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestListThreadsForHiringManager(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	company := seedCompany(t, db, "Acme AI")
	hm := seedHiringManager(t, db, "sarah@acmeai.example.com")
	otherHM := seedHiringManager(t, db, "marcus@cloudsync.example.com")

	role := seedRole(t, db, company, hm)
	otherRole := seedRole(t, db, company, otherHM)

	interview := seedApplication(t, db, role, seedCandidate(t, db, "a@email.com"), model.ApplicationStatusInterview)
	// Not yet eligible and silent: no thread.
	seedApplication(t, db, role, seedCandidate(t, db, "b@email.com"), model.ApplicationStatusNew)
	// Rejected but holds history: thread stays visible.
	withHistory := seedApplication(t, db, role, seedCandidate(t, db, "c@email.com"), model.ApplicationStatusRejected)
	require.NoError(t, db.Create(&model.Message{
		ID:            uuid.New(),
		ApplicationID: withHistory.ID,
		Content:       "Thanks for your time.",
		CandidateID:   &withHistory.CandidateID,
	}).Error)
	// Another manager's role never shows up.
	seedApplication(t, db, otherRole, seedCandidate(t, db, "d@email.com"), model.ApplicationStatusAccepted)

	threads, err := repo.ListThreadsForHiringManager(context.Background(), hm.ID)
	require.NoError(t, err)
	require.Len(t, threads, 2)

	ids := []uuid.UUID{threads[0].ID, threads[1].ID}
	assert.Contains(t, ids, interview.ID)
	assert.Contains(t, ids, withHistory.ID)
	require.NotNil(t, threads[0].Candidate, "review view embeds the candidate")
}

func TestListThreadsForCandidate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	company := seedCompany(t, db, "Acme AI")
	hm := seedHiringManager(t, db, "sarah@acmeai.example.com")
	candidate := seedCandidate(t, db, "alex.johnson@email.com")

	eligible := seedApplication(t, db, seedRole(t, db, company, hm), candidate, model.ApplicationStatusInterview)
	seedApplication(t, db, seedRole(t, db, company, hm), candidate, model.ApplicationStatusReviewing)

	threads, err := repo.ListThreadsForCandidate(context.Background(), candidate.ID)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, eligible.ID, threads[0].ID)
	require.NotNil(t, threads[0].Role)
	require.NotNil(t, threads[0].Role.Company)
}

func TestListByCandidatePaginates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	company := seedCompany(t, db, "Acme AI")
	hm := seedHiringManager(t, db, "sarah@acmeai.example.com")
	candidate := seedCandidate(t, db, "alex.johnson@email.com")

	for i := 0; i < 12; i++ {
		seedApplication(t, db, seedRole(t, db, company, hm), candidate, model.ApplicationStatusNew)
	}

	page2, total, err := repo.ListByCandidate(context.Background(), candidate.ID, 2, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Len(t, page2, 2)
}
