package handler

import (
	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	uc *usecase.CompanyUsecase
}

func NewCompanyHandler(uc *usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/companies", h.List)
	app.Post("/api/companies", h.Create)
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success list companies",
		Data:    companies,
	})
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}
	company, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create company",
		Data:    company,
	})
}
