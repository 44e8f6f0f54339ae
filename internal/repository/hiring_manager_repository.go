package repository

import (
	"context"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HiringManagerRepository struct {
	db *gorm.DB
}

func NewHiringManagerRepository(db *gorm.DB) *HiringManagerRepository {
	return &HiringManagerRepository{db}
}

func (r *HiringManagerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.HiringManager, error) {
	var hm model.HiringManager
	err := r.db.WithContext(ctx).First(&hm, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &hm, nil
}

func (r *HiringManagerRepository) FindByEmail(ctx context.Context, email string) (*model.HiringManager, error) {
	var hm model.HiringManager
	err := r.db.WithContext(ctx).First(&hm, "email = ?", email).Error
	if err != nil {
		return nil, translate(err)
	}
	return &hm, nil
}

func (r *HiringManagerRepository) ListPersonas(ctx context.Context) ([]model.HiringManager, error) {
	var hms []model.HiringManager
	err := r.db.WithContext(ctx).
		Where("is_persona = ?", true).
		Preload("Companies").
		Order("name ASC").
		Find(&hms).Error
	return hms, translate(err)
}

// CreateWithCompany creates the company, the manager, and the join row
// atomically; used by persona signup.
func (r *HiringManagerRepository) CreateWithCompany(ctx context.Context, hm *model.HiringManager, company *model.Company) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		if err := tx.Create(hm).Error; err != nil {
			return err
		}
		link := model.HiringManagerCompany{
			HiringManagerID: hm.ID,
			CompanyID:       company.ID,
		}
		return tx.Create(&link).Error
	}))
}
