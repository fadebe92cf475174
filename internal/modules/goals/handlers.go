package goals

import (
	"errors"
	"strconv"
	"time"

	"github.com/bloomapp/bloom-backend/internal/dto"
	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	goal, err := h.service.Create(userID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to create goal")
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	year, _ := strconv.Atoi(c.Query("year", "0"))
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	goals, err := h.service.List(userID, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch goals",
		})
	}

	return c.JSON(GoalListResponse{Goals: goals, Year: year})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid goal ID",
		})
	}

	goal, err := h.service.Get(userID, goalID)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch goal")
	}

	return c.JSON(goal)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid goal ID",
		})
	}

	var req UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	goal, err := h.service.Update(userID, goalID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to update goal")
	}

	return c.JSON(goal)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid goal ID",
		})
	}

	if err := h.service.Delete(userID, goalID); err != nil {
		return h.mapError(c, err, "Failed to delete goal")
	}

	return c.JSON(fiber.Map{"message": "Goal deleted successfully"})
}

func (h *Handler) AddSubGoal(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid goal ID",
		})
	}

	var req CreateSubGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sub, err := h.service.AddSubGoal(userID, goalID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to create sub-goal")
	}

	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *Handler) UpdateSubGoal(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	subGoalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sub-goal ID",
		})
	}

	var req UpdateSubGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sub, err := h.service.UpdateSubGoal(userID, subGoalID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to update sub-goal")
	}

	return c.JSON(sub)
}

func (h *Handler) DeleteSubGoal(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	subGoalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sub-goal ID",
		})
	}

	if err := h.service.DeleteSubGoal(userID, subGoalID); err != nil {
		return h.mapError(c, err, "Failed to delete sub-goal")
	}

	return c.JSON(fiber.Map{"message": "Sub-goal deleted successfully"})
}

func (h *Handler) mapError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, ErrGoalNotFound) || errors.Is(err, ErrSubGoalNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if errors.Is(err, ErrTitleRequired) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
