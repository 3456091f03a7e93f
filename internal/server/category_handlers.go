package server

import (
	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CategoryRequest is the request body for creating a category.
type CategoryRequest struct {
	Label string `json:"label"`
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.Create(c.Context(), req.Label)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// GetCategories handles GET /api/categories.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

// GetCategory handles GET /api/categories/:id.
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	category, err := s.categoryService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// DeleteCategory handles DELETE /api/categories/:id.
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.categoryService.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
