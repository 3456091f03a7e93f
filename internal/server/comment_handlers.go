package server

import (
	"rare/internal/models"
	"rare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CommentRequest is the request body for creating a comment.
type CommentRequest struct {
	Content string `json:"content"`
}

// CreateComment handles POST /api/posts/:id/comments. The authenticated
// caller becomes the comment author.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.currentProfile(c)
	if err != nil {
		return nil
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Create(c.Context(), service.CreateCommentInput{
		PostID:   postID,
		AuthorID: profile.ID,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(models.NewCommentDetail(comment))
}

// GetComments handles GET /api/posts/:id/comments, oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListByPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	details := make([]models.CommentDetail, 0, len(comments))
	for _, comment := range comments {
		details = append(details, models.NewCommentDetail(comment))
	}
	return c.Status(fiber.StatusOK).JSON(details)
}
