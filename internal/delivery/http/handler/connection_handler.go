package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ConnectionHandler struct {
	uc usecase.ConnectionUsecase
}

type createRequestRequest struct {
	RecipientID   uuid.UUID   `json:"recipient_id"`
	SkillsOffered []uuid.UUID `json:"skills_offered"`
	SkillsWanted  []uuid.UUID `json:"skills_wanted"`
}

type createRequestResponse struct {
	ID uuid.UUID `json:"id"`
}

func NewConnectionHandler(uc usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{uc: uc}
}

func (h *ConnectionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	reqs := r.Group("/requests")
	reqs.Post("/", h.Create)
	reqs.Get("/incoming", h.ListIncoming)
	reqs.Get("/outgoing", h.ListOutgoing)
	reqs.Post("/:id/approve", h.Approve)
	reqs.Post("/:id/reject", h.Reject)
	reqs.Delete("/:id", h.Withdraw)

	r.Get("/connections", h.ListConnections)
}

func (h *ConnectionHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateRequest(c.Context(), userID, usecase.CreateRequestInput{
		RecipientID:   req.RecipientID,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
	})
	if err != nil {
		return mapConnectionError(err)
	}

	return response.Success(c, fiber.StatusOK, "Connection request sent", createRequestResponse{ID: created.ID})
}

func (h *ConnectionHandler) Approve(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if _, err := h.uc.Approve(c.Context(), id, userID); err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, "Request approved", nil)
}

func (h *ConnectionHandler) Reject(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Reject(c.Context(), id, userID); err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, "Request rejected", nil)
}

func (h *ConnectionHandler) Withdraw(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Withdraw(c.Context(), id, userID); err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, "Request withdrawn", nil)
}

func (h *ConnectionHandler) ListIncoming(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListIncoming(c.Context(), userID)
	if err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequestItems(items))
}

func (h *ConnectionHandler) ListOutgoing(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListOutgoing(c.Context(), userID)
	if err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequestItems(items))
}

func (h *ConnectionHandler) ListConnections(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListConnections(c.Context(), userID)
	if err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConnectionItems(items))
}

func mapConnectionError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Not allowed", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Request not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidSelection):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill selection", nil, err)
	case errors.Is(err, usecase.ErrInvalidState):
		return middleware.NewAppError(fiber.StatusConflict, "Request is not pending", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
