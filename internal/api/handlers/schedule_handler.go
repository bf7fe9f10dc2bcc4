package handlers

import (
	"errors"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	s service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{s: service}
}

func (h *ScheduleHandler) ListSchedules(c *fiber.Ctx) error {
	plans, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list schedules",
		})
	}

	return c.Status(fiber.StatusOK).JSON(plans)
}

// Launch marks a schedule as POSTING and returns the composed post text so an
// operator can paste it into LinkedIn by hand.
func (h *ScheduleHandler) Launch(c *fiber.Ctx) error {
	planID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid schedule id",
		})
	}

	content, err := h.s.Launch(c.Context(), int64(planID))
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Schedule not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post content prepared and marked as posting",
		"content": content,
	})
}
