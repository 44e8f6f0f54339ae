package repository

import (
	"context"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	return translate(r.db.WithContext(ctx).Create(company).Error)
}

// CreateLinked creates the company and its join row to the hiring manager
// in one transaction, so a failed link leaves no orphan company.
func (r *CompanyRepository) CreateLinked(ctx context.Context, company *model.Company, hiringManagerID uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		link := model.HiringManagerCompany{
			HiringManagerID: hiringManagerID,
			CompanyID:       company.ID,
		}
		return tx.Create(&link).Error
	}))
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.WithContext(ctx).Order("name ASC").Find(&companies).Error
	return companies, translate(err)
}
