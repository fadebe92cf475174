package analytics

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

// Get serves GET /analytics. No type or type=overview returns the full
// overview; a narrow type returns just that stats block.
func (h *Handler) Get(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	r, err := ParseRange(c.Query("range"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if metricType := c.Query("type"); metricType != "" && metricType != "overview" {
		metric, err := h.service.Metric(userID, metricType, r)
		if err != nil {
			if errors.Is(err, ErrInvalidMetric) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error: true, Message: err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to compute analytics",
			})
		}
		return c.JSON(metric)
	}

	overview, err := h.service.Overview(userID, r)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute analytics",
		})
	}
	return c.JSON(overview)
}
