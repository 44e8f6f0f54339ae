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

type CandidateUsecase struct {
	candidateRepo *repository.CandidateRepository
	logger        *zap.Logger
}

func NewCandidateUsecase(candidateRepo *repository.CandidateRepository, logger *zap.Logger) *CandidateUsecase {
	return &CandidateUsecase{
		candidateRepo: candidateRepo,
		logger:        logger.Named("candidate_usecase"),
	}
}

func (uc *CandidateUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	return uc.candidateRepo.FindByID(ctx, id)
}

func (uc *CandidateUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, req dto.UpdateCandidateRequest) (*model.Candidate, error) {
	candidate, err := uc.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != candidate.Email {
		if _, err := uc.candidateRepo.FindByEmail(ctx, req.Email); err == nil {
			return nil, fmt.Errorf("%w: a candidate with this email already exists", e.ErrConflict)
		} else if !errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
	}

	candidate.Name = req.Name
	candidate.Email = req.Email
	candidate.LinkedinURL = req.LinkedinURL
	candidate.Headline = req.Headline
	candidate.YearsExperience = req.YearsExperience
	candidate.Skills = req.Skills
	candidate.Bio = req.Bio
	if err := uc.candidateRepo.Save(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return candidate, nil
}
