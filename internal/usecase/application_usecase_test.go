package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSubmitApplication(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")
	role := f.role(t, company, hm)
	candidate := f.candidate(t, "alex.johnson@email.com")

	application, err := f.applications.Submit(context.Background(), dto.CreateApplicationRequest{
		RoleID:      role.ID.String(),
		CandidateID: candidate.ID.String(),
		CoverNote:   "I have spent three years building developer tooling.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusNew, application.Status)
	require.NotNil(t, application.Role)
	assert.Equal(t, role.ID, application.Role.ID)
}

func TestSubmitPreconditionOrder(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")
	candidate := f.candidate(t, "alex.johnson@email.com")

	t.Run("missing role wins over everything", func(t *testing.T) {
		_, err := f.applications.Submit(context.Background(), dto.CreateApplicationRequest{
			RoleID:      uuid.NewString(),
			CandidateID: uuid.NewString(),
		})
		assert.ErrorIs(t, err, e.ErrNotFound)
	})

	t.Run("closed role wins over missing candidate", func(t *testing.T) {
		closed := f.role(t, company, hm, func(r *model.Role) {
			r.Status = model.RoleStatusClosed
			now := time.Now()
			r.DeletedAt = &now
		})
		_, err := f.applications.Submit(context.Background(), dto.CreateApplicationRequest{
			RoleID:      closed.ID.String(),
			CandidateID: uuid.NewString(),
		})
		assert.ErrorIs(t, err, e.ErrNotOpen)
	})

	t.Run("draft role is not open", func(t *testing.T) {
		draft := f.role(t, company, hm, func(r *model.Role) { r.Status = model.RoleStatusDraft })
		_, err := f.applications.Submit(context.Background(), dto.CreateApplicationRequest{
			RoleID:      draft.ID.String(),
			CandidateID: candidate.ID.String(),
		})
		assert.ErrorIs(t, err, e.ErrNotOpen)
	})

	t.Run("missing candidate on an open role", func(t *testing.T) {
		open := f.role(t, company, hm)
		_, err := f.applications.Submit(context.Background(), dto.CreateApplicationRequest{
			RoleID:      open.ID.String(),
			CandidateID: uuid.NewString(),
		})
		assert.ErrorIs(t, err, e.ErrNotFound)
	})
}

func TestSubmitTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")
	role := f.role(t, company, hm)
	candidate := f.candidate(t, "alex.johnson@email.com")

	req := dto.CreateApplicationRequest{RoleID: role.ID.String(), CandidateID: candidate.ID.String()}
	_, err := f.applications.Submit(context.Background(), req)
	require.NoError(t, err)

	_, err = f.applications.Submit(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrConflict)
}

func TestSubmitLosesRaceToConcurrentDuplicate(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")
	role := f.role(t, company, hm)
	candidate := f.candidate(t, "alex.johnson@email.com")

	// Slip a rival application in after the duplicate pre-check has
	// passed, right before the insert, the way a concurrent submission
	// would; the unique constraint must decide the loser.
	raced := false
	require.NoError(t, f.db.Callback().Create().Before("gorm:create").Register("rival_submission", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Model.(*model.Application); !ok {
			return
		}
		raced = true
		rival := &model.Application{
			ID:          uuid.New(),
			RoleID:      role.ID,
			CandidateID: candidate.ID,
			Status:      model.ApplicationStatusNew,
		}
		require.NoError(t, f.db.Create(rival).Error)
	}))

	_, err := f.applications.Submit(context.Background(), dto.CreateApplicationRequest{
		RoleID:      role.ID.String(),
		CandidateID: candidate.ID.String(),
	})
	assert.ErrorIs(t, err, e.ErrConflict)

	var count int64
	require.NoError(t, f.db.Model(&model.Application{}).
		Where("role_id = ? AND candidate_id = ?", role.ID, candidate.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one submission survives the race")
}

func TestApplicationStatusTransitions(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")

	t.Run("forward jump is allowed", func(t *testing.T) {
		application := f.application(t, f.role(t, company, hm), f.candidate(t, "a@email.com"), model.ApplicationStatusNew)
		updated, err := f.applications.UpdateStatus(context.Background(), application.ID, model.ApplicationStatusInterview)
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusInterview, updated.Status)
	})

	t.Run("backward move is rejected", func(t *testing.T) {
		application := f.application(t, f.role(t, company, hm), f.candidate(t, "b@email.com"), model.ApplicationStatusInterview)
		_, err := f.applications.UpdateStatus(context.Background(), application.ID, model.ApplicationStatusReviewing)
		assert.ErrorIs(t, err, e.ErrInvalidTransition)
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		application := f.application(t, f.role(t, company, hm), f.candidate(t, "c@email.com"), model.ApplicationStatusAccepted)
		_, err := f.applications.UpdateStatus(context.Background(), application.ID, model.ApplicationStatusRejected)
		assert.ErrorIs(t, err, e.ErrInvalidTransition)
	})

	t.Run("missing application", func(t *testing.T) {
		_, err := f.applications.UpdateStatus(context.Background(), uuid.New(), model.ApplicationStatusReviewing)
		assert.ErrorIs(t, err, e.ErrNotFound)
	})
}

func TestListByCandidateDerivesMessagingGate(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")
	candidate := f.candidate(t, "alex.johnson@email.com")

	f.application(t, f.role(t, company, hm), candidate, model.ApplicationStatusNew)
	f.application(t, f.role(t, company, hm), candidate, model.ApplicationStatusInterview)
	f.application(t, f.role(t, company, hm), candidate, model.ApplicationStatusAccepted)

	items, total, page, limit, err := f.applications.ListByCandidate(context.Background(), candidate.ID, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageLimit, limit)
	require.Len(t, items, 3)

	available := 0
	for _, item := range items {
		if item.MessagingAvailable {
			available++
			assert.Contains(t,
				[]model.ApplicationStatus{model.ApplicationStatusInterview, model.ApplicationStatusAccepted},
				item.Status)
		}
	}
	assert.Equal(t, 2, available)
}
