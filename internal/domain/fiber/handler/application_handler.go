package handler

import (
	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/response"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/applications", h.List)
	app.Post("/api/applications", h.Create)
	app.Patch("/api/applications/:applicationId", h.UpdateStatus)
}

// List serves two views: the hiring review list (roleId, unpaginated) and
// the candidate's own applications (candidateId, paginated).
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("roleId"); raw != "" {
		roleID, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, e.ErrNotFound)
		}
		applications, err := h.uc.ListByRole(c.Context(), roleID)
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:       fiber.StatusOK,
			Message:    "Success list applications",
			Data:       applications,
			Pagination: response.NewPagination(1, max(len(applications), 1), int64(len(applications))),
		})
	}

	raw := c.Query("candidateId")
	if raw == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "candidateId or roleId is required",
		})
	}
	candidateID, err := uuid.Parse(raw)
	if err != nil {
		return respondError(c, e.ErrNotFound)
	}

	items, total, page, limit, err := h.uc.ListByCandidate(c.Context(), candidateID, c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success list applications",
		Data:       items,
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}
	application, err := h.uc.Submit(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success submit application",
		Data:    application,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return respondError(c, e.ErrNotFound)
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}
	application, err := h.uc.UpdateStatus(c.Context(), id, model.ApplicationStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update application status",
		Data:    application,
	})
}
