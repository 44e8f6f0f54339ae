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
)

func createRoleRequest(company *model.Company, hm *model.HiringManager) dto.CreateRoleRequest {
	return dto.CreateRoleRequest{
		Title:           "Senior Backend Engineer",
		Description:     "Own the services behind our developer tools.",
		Location:        "San Francisco, CA",
		LocationType:    "hybrid",
		EmploymentType:  "full-time",
		ExperienceLevel: "senior",
		CompanyID:       company.ID.String(),
		HiringManagerID: hm.ID.String(),
	}
}

func TestCreateRoleDefaultsToDraft(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")

	role, err := f.roles.Create(context.Background(), createRoleRequest(company, hm))
	require.NoError(t, err)
	assert.Equal(t, model.RoleStatusDraft, role.Status)
	assert.Equal(t, "USD", role.SalaryCurrency)
	assert.False(t, role.Open())
}

func TestCreateRoleRejectsInvertedSalary(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")

	req := createRoleRequest(company, hm)
	req.SalaryMin = intPtr(200000)
	req.SalaryMax = intPtr(100000)

	_, err := f.roles.Create(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestCreateRoleUnknownCompany(t *testing.T) {
	f := newFixture(t)
	hm := f.hiringManager(t, "sarah@acmeai.example.com")

	req := createRoleRequest(&model.Company{ID: uuid.New()}, hm)
	_, err := f.roles.Create(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestGetRoleHidesNonOpenRoles(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")

	draft := f.role(t, company, hm, func(r *model.Role) { r.Status = model.RoleStatusDraft })
	_, err := f.roles.Get(context.Background(), draft.ID)
	assert.ErrorIs(t, err, e.ErrNotFound, "draft reads as absent")

	published := f.role(t, company, hm)
	f.application(t, published, f.candidate(t, "a@email.com"), model.ApplicationStatusNew)

	detail, err := f.roles.Get(context.Background(), published.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, detail.ApplicationCount)
	require.NotNil(t, detail.Company)
}

func TestRoleStatusLifecycle(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")
	role := f.role(t, company, hm, func(r *model.Role) { r.Status = model.RoleStatusDraft })

	published, err := f.roles.UpdateStatus(context.Background(), role.ID, model.RoleStatusPublished)
	require.NoError(t, err)
	assert.True(t, published.Open())

	closed, err := f.roles.UpdateStatus(context.Background(), role.ID, model.RoleStatusClosed)
	require.NoError(t, err)
	require.NotNil(t, closed.DeletedAt, "closing stamps the soft-delete timestamp")
	assert.False(t, closed.Open())

	reopened, err := f.roles.UpdateStatus(context.Background(), role.ID, model.RoleStatusPublished)
	require.NoError(t, err)
	assert.Nil(t, reopened.DeletedAt, "reopening clears the soft-delete timestamp")
	assert.True(t, reopened.Open())
}

func TestRoleStatusRejectsInvalidTransitions(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")

	draft := f.role(t, company, hm, func(r *model.Role) { r.Status = model.RoleStatusDraft })
	_, err := f.roles.UpdateStatus(context.Background(), draft.ID, model.RoleStatusClosed)
	assert.ErrorIs(t, err, e.ErrInvalidTransition, "a draft cannot close")

	published := f.role(t, company, hm)
	_, err = f.roles.UpdateStatus(context.Background(), published.ID, model.RoleStatusDraft)
	assert.ErrorIs(t, err, e.ErrInvalidTransition, "a published role cannot return to draft")
}

func TestClosedRoleStaysReachableForManager(t *testing.T) {
	f := newFixture(t)
	company := f.company(t, "Acme AI")
	hm := f.hiringManager(t, "sarah@acmeai.example.com")
	role := f.role(t, company, hm, func(r *model.Role) {
		r.Status = model.RoleStatusClosed
		now := time.Now()
		r.DeletedAt = &now
	})

	roles, total, err := f.roles.List(context.Background(), dto.RoleFilter{HiringManagerID: hm.ID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, roles, 1)
	assert.Equal(t, role.ID, roles[0].ID)
}
