package repository

import (
	"context"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	return translate(r.db.WithContext(ctx).Create(application).Error)
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	err := r.db.WithContext(ctx).Preload("Role").First(&application, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &application, nil
}

func (r *ApplicationRepository) FindByRoleAndCandidate(ctx context.Context, roleID, candidateID uuid.UUID) (*model.Application, error) {
	var application model.Application
	err := r.db.WithContext(ctx).
		First(&application, "role_id = ? AND candidate_id = ?", roleID, candidateID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &application, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

// ListByRole returns every application on a role, newest first, with the
// candidate embedded for the review view.
func (r *ApplicationRepository) ListByRole(ctx context.Context, roleID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Preload("Candidate").
		Preload("Role").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, translate(err)
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, page, limit int) ([]model.Application, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("candidate_id = ?", candidateID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var applications []model.Application
	err := q.Preload("Role.Company").
		Preload("Role.HiringManager").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&applications).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return applications, total, nil
}

// ListThreadsForHiringManager returns applications on the manager's roles
// that either reached a messaging-eligible stage or already hold messages.
func (r *ApplicationRepository) ListThreadsForHiringManager(ctx context.Context, hiringManagerID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).
		Joins("JOIN roles ON roles.id = applications.role_id").
		Where("roles.hiring_manager_id = ?", hiringManagerID).
		Where("applications.status IN ? OR EXISTS (SELECT 1 FROM messages WHERE messages.application_id = applications.id)",
			[]model.ApplicationStatus{model.ApplicationStatusInterview, model.ApplicationStatusAccepted}).
		Preload("Role.Company").
		Preload("Candidate").
		Find(&applications).Error
	return applications, translate(err)
}

func (r *ApplicationRepository) ListThreadsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Where("status IN ?",
			[]model.ApplicationStatus{model.ApplicationStatusInterview, model.ApplicationStatusAccepted}).
		Preload("Role.Company").
		Preload("Role.HiringManager").
		Find(&applications).Error
	return applications, translate(err)
}
