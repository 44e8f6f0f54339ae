package handler

import (
	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

type PersonaHandler struct {
	uc *usecase.PersonaUsecase
}

func NewPersonaHandler(uc *usecase.PersonaUsecase) *PersonaHandler {
	return &PersonaHandler{uc: uc}
}

func (h *PersonaHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/personas", h.List)
	app.Post("/api/personas", h.Create)
}

func (h *PersonaHandler) List(c *fiber.Ctx) error {
	personas, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success list personas",
		Data:    personas,
	})
}

func (h *PersonaHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePersonaRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}

	var (
		data any
		err  error
	)
	switch req.Type {
	case dto.PersonaTypeHiringManager:
		data, err = h.uc.CreateHiringManager(c.Context(), req)
	default:
		data, err = h.uc.CreateCandidate(c.Context(), req)
	}
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create persona",
		Data:    data,
	})
}
