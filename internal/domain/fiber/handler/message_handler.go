package handler

import (
	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MessageHandler struct {
	uc *usecase.MessageUsecase
}

func NewMessageHandler(uc *usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/messages", h.List)
	app.Post("/api/messages", h.Send)
}

// List serves the thread of one application, or the inbox summaries of a
// hiring manager or candidate, depending on which query parameter is set.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("applicationId"); raw != "" {
		applicationID, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, e.ErrNotFound)
		}
		messages, err := h.uc.Thread(c.Context(), applicationID)
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:    fiber.StatusOK,
			Message: "Success list messages",
			Data:    messages,
		})
	}

	if raw := c.Query("hiringManagerId"); raw != "" {
		hiringManagerID, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, e.ErrNotFound)
		}
		threads, err := h.uc.ThreadsForHiringManager(c.Context(), hiringManagerID)
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:    fiber.StatusOK,
			Message: "Success list threads",
			Data:    threads,
		})
	}

	if raw := c.Query("candidateId"); raw != "" {
		candidateID, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, e.ErrNotFound)
		}
		threads, err := h.uc.ThreadsForCandidate(c.Context(), candidateID)
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:    fiber.StatusOK,
			Message: "Success list threads",
			Data:    threads,
		})
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "applicationId, hiringManagerId, or candidateId is required",
	})
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return validationError(c, fields)
	}
	message, created, err := h.uc.Send(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	code := fiber.StatusCreated
	if !created {
		// Idempotent replay of an already-stored send.
		code = fiber.StatusOK
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    code,
		Message: "Success send message",
		Data:    message,
	})
}
