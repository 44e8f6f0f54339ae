package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/fsm"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationUsecase struct {
	appRepo       *repository.ApplicationRepository
	roleRepo      *repository.RoleRepository
	candidateRepo *repository.CandidateRepository
	logger        *zap.Logger
}

func NewApplicationUsecase(appRepo *repository.ApplicationRepository, roleRepo *repository.RoleRepository, candidateRepo *repository.CandidateRepository, logger *zap.Logger) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:       appRepo,
		roleRepo:      roleRepo,
		candidateRepo: candidateRepo,
		logger:        logger.Named("application_usecase"),
	}
}

// Submit checks preconditions in a fixed order so each malformed input
// fails with a deterministic reason: role exists, role open, candidate
// exists, no prior application. The unique constraint on (role, candidate)
// backstops the last check under concurrent submissions.
func (uc *ApplicationUsecase) Submit(ctx context.Context, req dto.CreateApplicationRequest) (*model.Application, error) {
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid role id", e.ErrInvalidInput)
	}
	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid candidate id", e.ErrInvalidInput)
	}

	role, err := uc.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("role: %w", err)
	}
	if !role.Open() {
		return nil, e.ErrNotOpen
	}
	if _, err := uc.candidateRepo.FindByID(ctx, candidateID); err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}

	if _, err := uc.appRepo.FindByRoleAndCandidate(ctx, roleID, candidateID); err == nil {
		return nil, fmt.Errorf("%w: you have already applied to this role", e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, err
	}

	application := &model.Application{
		ID:          uuid.New(),
		RoleID:      roleID,
		CandidateID: candidateID,
		Status:      model.ApplicationStatusNew,
		CoverNote:   req.CoverNote,
	}
	if err := uc.appRepo.Create(ctx, application); err != nil {
		if errors.Is(err, e.ErrConflict) {
			// Lost the race against a concurrent submission.
			return nil, fmt.Errorf("%w: you have already applied to this role", e.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	application.Role = role
	uc.logger.Info("application submitted",
		zap.String("application_id", application.ID.String()),
		zap.String("role_id", roleID.String()),
	)
	return application, nil
}

func (uc *ApplicationUsecase) ListByRole(ctx context.Context, roleID uuid.UUID) ([]model.Application, error) {
	return uc.appRepo.ListByRole(ctx, roleID)
}

func (uc *ApplicationUsecase) ListByCandidate(ctx context.Context, candidateID uuid.UUID, page, limit int) ([]dto.ApplicationItem, int64, int, int, error) {
	page, limit = normalizePage(page, limit)
	applications, total, err := uc.appRepo.ListByCandidate(ctx, candidateID, page, limit)
	if err != nil {
		return nil, 0, page, limit, err
	}
	items := make([]dto.ApplicationItem, 0, len(applications))
	for _, a := range applications {
		items = append(items, dto.ApplicationItem{
			Application:        a,
			MessagingAvailable: fsm.MessagingEligible(a.Status),
		})
	}
	return items, total, page, limit, nil
}

func (uc *ApplicationUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error) {
	application, err := uc.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !fsm.CanTransitionApplication(application.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", e.ErrInvalidTransition, application.Status, status)
	}
	if err := uc.appRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	application.Status = status
	return application, nil
}
