package handlers

import (
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/ai"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	g *ai.ImageGenerator
}

func NewImageHandler(g *ai.ImageGenerator) *ImageHandler {
	return &ImageHandler{g: g}
}

func (h *ImageHandler) GenerateImage(c *fiber.Ctx) error {
	var req transfer.ImageRequest
	if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Prompt required",
		})
	}

	result := h.g.GenerateImage(req.Prompt)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url":     result.URL,
		"message": "Image generation placeholder active",
	})
}
