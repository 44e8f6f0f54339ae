package handler

import (
	"strconv"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/response"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RoleHandler struct {
	uc *usecase.RoleUsecase
}

func NewRoleHandler(uc *usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/roles", h.List)
	app.Post("/api/roles", h.Create)
	app.Get("/api/roles/:roleId", h.Get)
	app.Patch("/api/roles/:roleId", h.UpdateStatus)
}

func (h *RoleHandler) List(c *fiber.Ctx) error {
	filter := dto.RoleFilter{
		CompanyID:       c.Query("company"),
		Location:        c.Query("location"),
		Search:          c.Query("search"),
		CandidateID:     c.Query("candidateId"),
		HiringManagerID: c.Query("hiringManagerId"),
		Page:            c.QueryInt("page", 1),
		Limit:           c.QueryInt("limit", 10),
	}
	// Malformed salary bounds are ignored, matching the lenient query
	// parsing of the browse page.
	if raw := c.Query("salaryMin"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.SalaryMin = &v
		}
	}
	if raw := c.Query("salaryMax"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.SalaryMax = &v
		}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 50 {
		filter.Limit = 50
	}

	roles, total, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success list roles",
		Data:       roles,
		Pagination: response.NewPagination(filter.Page, filter.Limit, total),
	})
}

func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}
	role, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create role",
		Data:    role,
	})
}

func (h *RoleHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roleId"))
	if err != nil {
		return respondError(c, e.ErrNotFound)
	}
	role, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get role",
		Data:    role,
	})
}

func (h *RoleHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roleId"))
	if err != nil {
		return respondError(c, e.ErrNotFound)
	}
	var req dto.UpdateRoleStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}
	role, err := h.uc.UpdateStatus(c.Context(), id, model.RoleStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update role status",
		Data:    role,
	})
}
