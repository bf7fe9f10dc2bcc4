package handlers

import (
	"log/slog"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/queue"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/service"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type GenerateHandler struct {
	gs          service.GenerationService
	ur          repository.UserRepository
	AsynqClient *asynq.Client
}

func NewGenerateHandler(gs service.GenerationService, ur repository.UserRepository, asynqClient *asynq.Client) *GenerateHandler {
	return &GenerateHandler{gs: gs, ur: ur, AsynqClient: asynqClient}
}

// Generate triggers draft generation in the background and returns at once.
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	user, found, err := h.ur.GetFirst(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No user found",
		})
	}

	var req transfer.GenerationRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	err = queue.EnqueueGeneration(h.AsynqClient, queue.GenerateDraftsPayload{
		UserID:   user.ID,
		Provider: req.Provider,
		APIKey:   req.APIKey,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling generation",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Generation sequence triggered in background",
	})
}

func (h *GenerateHandler) ListDrafts(c *fiber.Ctx) error {
	drafts, err := h.gs.ListDrafts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list drafts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(drafts)
}
