package server

import (
	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TagRequest is the request body for creating a tag.
type TagRequest struct {
	Label string `json:"label"`
}

// CreateTag handles POST /api/tags.
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req TagRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.Create(c.Context(), req.Label)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

// GetTags handles GET /api/tags.
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}

// DeleteTag handles DELETE /api/tags/:id.
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagService.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
