package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/fsm"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoleUsecase struct {
	roleRepo    *repository.RoleRepository
	companyRepo *repository.CompanyRepository
	hmRepo      *repository.HiringManagerRepository
	logger      *zap.Logger
}

func NewRoleUsecase(roleRepo *repository.RoleRepository, companyRepo *repository.CompanyRepository, hmRepo *repository.HiringManagerRepository, logger *zap.Logger) *RoleUsecase {
	return &RoleUsecase{
		roleRepo:    roleRepo,
		companyRepo: companyRepo,
		hmRepo:      hmRepo,
		logger:      logger.Named("role_usecase"),
	}
}

func (uc *RoleUsecase) Create(ctx context.Context, req dto.CreateRoleRequest) (*model.Role, error) {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return nil, fmt.Errorf("%w: maximum salary must be greater than minimum salary", e.ErrInvalidInput)
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid company id", e.ErrInvalidInput)
	}
	hiringManagerID, err := uuid.Parse(req.HiringManagerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hiring manager id", e.ErrInvalidInput)
	}

	if _, err := uc.companyRepo.FindByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("company: %w", err)
	}
	if _, err := uc.hmRepo.FindByID(ctx, hiringManagerID); err != nil {
		return nil, fmt.Errorf("hiring manager: %w", err)
	}

	status := model.RoleStatus(req.Status)
	if status == "" {
		status = model.RoleStatusDraft
	}
	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	role := &model.Role{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		LocationType:    model.LocationType(req.LocationType),
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  currency,
		EmploymentType:  model.EmploymentType(req.EmploymentType),
		ExperienceLevel: model.ExperienceLevel(req.ExperienceLevel),
		Status:          status,
		CompanyID:       companyID,
		HiringManagerID: hiringManagerID,
	}
	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	uc.logger.Info("role created",
		zap.String("role_id", role.ID.String()),
		zap.String("status", string(role.Status)),
	)
	return role, nil
}

// Get is candidate-facing: roles that are not open read as absent.
func (uc *RoleUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.RoleDetail, error) {
	role, err := uc.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !role.Open() {
		return nil, e.ErrNotFound
	}
	count, err := uc.roleRepo.CountApplications(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.RoleDetail{Role: *role, ApplicationCount: count}, nil
}

func (uc *RoleUsecase) List(ctx context.Context, filter dto.RoleFilter) ([]model.Role, int64, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return uc.roleRepo.List(ctx, filter)
}

// UpdateStatus drives the role through the publication machine. Closing
// stamps DeletedAt; republishing clears it.
func (uc *RoleUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RoleStatus) (*model.Role, error) {
	role, err := uc.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !fsm.CanTransitionRole(role.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", e.ErrInvalidTransition, role.Status, status)
	}

	role.Status = status
	switch status {
	case model.RoleStatusClosed:
		now := time.Now()
		role.DeletedAt = &now
	case model.RoleStatusPublished:
		role.DeletedAt = nil
	}
	if err := uc.roleRepo.UpdateStatus(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to update role status: %w", err)
	}
	return role, nil
}
