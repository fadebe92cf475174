package achievements

import (
	"errors"

	"github.com/bloomapp/bloom-backend/internal/dto"
	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the user's earned achievements and what remains available.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	earned, err := h.service.Earned(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch achievements",
		})
	}

	available, err := h.service.Available(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch achievements",
		})
	}

	return c.JSON(AchievementListResponse{Earned: earned, Available: available})
}

// Award grants one specific achievement. 201 on a fresh award, 200 when the
// user already had it.
func (h *Handler) Award(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	achievement, created, err := h.service.AwardSpecific(userID, req.AchievementType)
	if err != nil {
		if errors.Is(err, ErrUnknownAchievement) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to award achievement",
		})
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(achievement)
}

// Evaluate re-checks every definition and awards whatever newly qualifies.
func (h *Handler) Evaluate(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	earned, err := h.service.EvaluateAll(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to evaluate achievements",
		})
	}

	if earned == nil {
		earned = []UserAchievement{}
	}
	return c.JSON(EvaluateResponse{NewlyEarned: earned, Evaluated: len(definitions)})
}
