package repository

import (
	"context"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *model.Candidate) error {
	return translate(r.db.WithContext(ctx).Create(candidate).Error)
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.WithContext(ctx).First(&candidate, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.WithContext(ctx).First(&candidate, "email = ?", email).Error
	if err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (r *CandidateRepository) Save(ctx context.Context, candidate *model.Candidate) error {
	return translate(r.db.WithContext(ctx).Save(candidate).Error)
}

func (r *CandidateRepository) ListPersonas(ctx context.Context) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.WithContext(ctx).
		Where("is_persona = ?", true).
		Order("name ASC").
		Find(&candidates).Error
	return candidates, translate(err)
}
