package handler

import (
	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	uc *usecase.CandidateUsecase
}

func NewCandidateHandler(uc *usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/candidates/:candidateId", h.Get)
	app.Patch("/api/candidates/:candidateId", h.UpdateProfile)
}

func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("candidateId"))
	if err != nil {
		return respondError(c, e.ErrNotFound)
	}
	candidate, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get candidate",
		Data:    candidate,
	})
}

func (h *CandidateHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("candidateId"))
	if err != nil {
		return respondError(c, e.ErrNotFound)
	}
	var req dto.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}
	candidate, err := h.uc.UpdateProfile(c.Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update candidate",
		Data:    candidate,
	})
}
