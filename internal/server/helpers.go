package server

import (
	"errors"
	"strconv"

	"rare/internal/middleware"
	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// errResponseWritten signals that a helper already wrote the error response
// and the handler should return nil.
var errResponseWritten = errors.New("error response already written")

// parseID reads a positive integer route parameter. On failure it writes a
// 404 and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		label := "ID"
		if param == "tagId" {
			label = "tag ID"
		}
		c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Message: "Invalid " + label,
		})
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentProfile resolves the authenticated caller's profile. The auth
// middleware guarantees the userID local; a token for a deleted account still
// fails here with a 401.
func (s *Server) currentProfile(c *fiber.Ctx) (*models.Profile, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Message: "Unauthorized",
		})
		return nil, errResponseWritten
	}

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Message: "Unauthorized",
			})
			return nil, errResponseWritten
		}
		middleware.Logger.ErrorContext(c.Context(), "Failed to resolve caller profile", "error", err.Error())
		c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Message: "Internal server error",
		})
		return nil, errResponseWritten
	}
	return profile, nil
}

// respondServiceError maps service-layer errors onto HTTP responses.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch appErr.Code {
		case models.CodeValidation:
			status = fiber.StatusBadRequest
		case models.CodeNotFound:
			status = fiber.StatusNotFound
		case models.CodeUnauthorized:
			status = fiber.StatusForbidden
		}
		if status == fiber.StatusInternalServerError {
			middleware.Logger.ErrorContext(c.Context(), "Unhandled service error", "error", appErr.Error())
		}
		return models.RespondWithError(c, status, appErr)
	}
	middleware.Logger.ErrorContext(c.Context(), "Unhandled service error", "error", err.Error())
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}
