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

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type saveProfileRequest struct {
	Name           string            `json:"name"`
	Bio            string            `json:"bio"`
	SkillsIHave    []uuid.UUID       `json:"skills_i_have"`
	SkillsIWant    []uuid.UUID       `json:"skills_i_want"`
	ContactMethods map[string]string `json:"contact_methods"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/profile")
	grp.Get("/", h.Get)
	grp.Put("/", h.Save)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not set up yet", nil, err)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(p))
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.SaveProfile(c.Context(), userID, usecase.ProfileInput{
		Name:           req.Name,
		Bio:            req.Bio,
		SkillsIHave:    req.SkillsIHave,
		SkillsIWant:    req.SkillsIWant,
		ContactMethods: req.ContactMethods,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile", nil, err)
		case errors.Is(err, usecase.ErrSkillNotFound):
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill", nil, err)
		case errors.Is(err, usecase.ErrInvalidContactMethod):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid contact method", nil, err)
		case errors.Is(err, usecase.ErrNoContactMethod):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "At least one contact method is required", nil, err)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}

	return response.Success(c, fiber.StatusOK, "Profile saved", dto.FromProfile(saved))
}
