package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PersonaUsecase manages the demo identities the landing page offers.
// Personas are client-chosen, not authenticated.
type PersonaUsecase struct {
	hmRepo        *repository.HiringManagerRepository
	candidateRepo *repository.CandidateRepository
	logger        *zap.Logger
}

func NewPersonaUsecase(hmRepo *repository.HiringManagerRepository, candidateRepo *repository.CandidateRepository, logger *zap.Logger) *PersonaUsecase {
	return &PersonaUsecase{
		hmRepo:        hmRepo,
		candidateRepo: candidateRepo,
		logger:        logger.Named("persona_usecase"),
	}
}

func (uc *PersonaUsecase) List(ctx context.Context) (*dto.PersonaList, error) {
	hiringManagers, err := uc.hmRepo.ListPersonas(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := uc.candidateRepo.ListPersonas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PersonaList{HiringManagers: hiringManagers, Candidates: candidates}, nil
}

// CreateHiringManager creates the manager together with their first
// company and the join row, atomically.
func (uc *PersonaUsecase) CreateHiringManager(ctx context.Context, req dto.CreatePersonaRequest) (*model.HiringManager, error) {
	if req.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", e.ErrInvalidInput)
	}
	if _, err := uc.hmRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: a hiring manager with this email already exists", e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, err
	}

	company := &model.Company{
		ID:          uuid.New(),
		Name:        req.CompanyName,
		Description: req.CompanyDescription,
		Industry:    req.CompanyIndustry,
		Location:    req.CompanyLocation,
	}
	hm := &model.HiringManager{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Title:     req.Title,
		IsPersona: true,
	}
	if err := uc.hmRepo.CreateWithCompany(ctx, hm, company); err != nil {
		return nil, fmt.Errorf("failed to create hiring manager: %w", err)
	}
	hm.Companies = []model.Company{*company}
	uc.logger.Info("persona created",
		zap.String("type", dto.PersonaTypeHiringManager),
		zap.String("id", hm.ID.String()),
	)
	return hm, nil
}

func (uc *PersonaUsecase) CreateCandidate(ctx context.Context, req dto.CreatePersonaRequest) (*model.Candidate, error) {
	if _, err := uc.candidateRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: a candidate with this email already exists", e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, err
	}

	candidate := &model.Candidate{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Headline:  req.Headline,
		IsPersona: true,
	}
	if err := uc.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	uc.logger.Info("persona created",
		zap.String("type", dto.PersonaTypeCandidate),
		zap.String("id", candidate.ID.String()),
	)
	return candidate, nil
}
