package usecase

import (
	"context"
	"fmt"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CompanyUsecase struct {
	companyRepo *repository.CompanyRepository
	hmRepo      *repository.HiringManagerRepository
	logger      *zap.Logger
}

func NewCompanyUsecase(companyRepo *repository.CompanyRepository, hmRepo *repository.HiringManagerRepository, logger *zap.Logger) *CompanyUsecase {
	return &CompanyUsecase{
		companyRepo: companyRepo,
		hmRepo:      hmRepo,
		logger:      logger.Named("company_usecase"),
	}
}

func (uc *CompanyUsecase) List(ctx context.Context) ([]model.Company, error) {
	return uc.companyRepo.List(ctx)
}

// Create adds a company and links it to the requesting hiring manager in
// one transaction.
func (uc *CompanyUsecase) Create(ctx context.Context, req dto.CreateCompanyRequest) (*model.Company, error) {
	hiringManagerID, err := uuid.Parse(req.HiringManagerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hiring manager id", e.ErrInvalidInput)
	}
	if _, err := uc.hmRepo.FindByID(ctx, hiringManagerID); err != nil {
		return nil, fmt.Errorf("hiring manager: %w", err)
	}

	company := &model.Company{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Location:    req.Location,
		Website:     req.Website,
	}
	if err := uc.companyRepo.CreateLinked(ctx, company, hiringManagerID); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	uc.logger.Info("company created", zap.String("company_id", company.ID.String()))
	return company, nil
}
