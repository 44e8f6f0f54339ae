package repository

import (
	"fmt"
	"testing"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection, or the in-memory database vanishes between queries.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, name string) *model.Company {
	t.Helper()
	company := &model.Company{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedHiringManager(t *testing.T, db *gorm.DB, email string) *model.HiringManager {
	t.Helper()
	hm := &model.HiringManager{ID: uuid.New(), Name: "Manager " + email, Email: email, IsPersona: true}
	require.NoError(t, db.Create(hm).Error)
	return hm
}

func seedCandidate(t *testing.T, db *gorm.DB, email string) *model.Candidate {
	t.Helper()
	candidate := &model.Candidate{ID: uuid.New(), Name: "Candidate " + email, Email: email, IsPersona: true}
	require.NoError(t, db.Create(candidate).Error)
	return candidate
}

func seedRole(t *testing.T, db *gorm.DB, company *model.Company, hm *model.HiringManager, mutate ...func(*model.Role)) *model.Role {
	t.Helper()
	role := &model.Role{
		ID:              uuid.New(),
		Title:           fmt.Sprintf("Role %s", uuid.NewString()[:8]),
		Description:     "A role description long enough to be plausible.",
		Location:        "San Francisco, CA",
		LocationType:    model.LocationHybrid,
		SalaryCurrency:  "USD",
		EmploymentType:  model.EmploymentFullTime,
		ExperienceLevel: model.ExperienceMid,
		Status:          model.RoleStatusPublished,
		CompanyID:       company.ID,
		HiringManagerID: hm.ID,
	}
	for _, m := range mutate {
		m(role)
	}
	require.NoError(t, db.Create(role).Error)
	return role
}

func seedApplication(t *testing.T, db *gorm.DB, role *model.Role, candidate *model.Candidate, status model.ApplicationStatus) *model.Application {
	t.Helper()
	application := &model.Application{
		ID:          uuid.New(),
		RoleID:      role.ID,
		CandidateID: candidate.ID,
		Status:      status,
	}
	require.NoError(t, db.Create(application).Error)
	return application
}

func intPtr(v int) *int { return &v }
