package server

import (
	"rare/internal/models"
	"rare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostRequest is the request body for creating or updating a post. On create,
// publication_date and approved are ignored; the server assigns both.
type PostRequest struct {
	CategoryID      uint   `json:"category_id"`
	Title           string `json:"title"`
	PublicationDate string `json:"publication_date"`
	ImageURL        string `json:"image_url"`
	Content         string `json:"content"`
}

// PostTagRequest is the request body for attaching a tag to a post.
type PostTagRequest struct {
	TagID uint `json:"tag_id"`
}

// CreatePost handles POST /api/posts. The authenticated caller becomes the
// author.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	profile, err := s.currentProfile(c)
	if err != nil {
		return nil
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), service.CreatePostInput{
		AuthorID:   profile.ID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		Content:    req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(models.NewPostSummary(post))
}

// GetPosts handles GET /api/posts. The presence of the get_posts_by_user
// query parameter, with any value, narrows the listing to the caller's posts.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	profile, err := s.currentProfile(c)
	if err != nil {
		return nil
	}

	mineOnly := c.Context().QueryArgs().Has("get_posts_by_user")

	posts, err := s.postService.List(c.Context(), service.ListPostsInput{
		CallerProfileID: profile.ID,
		MineOnly:        mineOnly,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(models.NewPostSummaries(posts))
}

// GetPost handles GET /api/posts/:id, returning the full detail view with
// tags and comments.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(models.NewPostDetail(post))
}

// UpdatePost handles PUT /api/posts/:id as a full overwrite.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.currentProfile(c)
	if err != nil {
		return nil
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.postService.Update(c.Context(), service.UpdatePostInput{
		PostID:          id,
		CallerProfileID: profile.ID,
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
		ImageURL:        req.ImageURL,
		Content:         req.Content,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePost handles DELETE /api/posts/:id.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPostTag handles POST /api/posts/:id/tags.
func (s *Server) AddPostTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req PostTagRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.postService.AddTag(c.Context(), id, req.TagID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemovePostTag handles DELETE /api/posts/:id/tags/:tagId.
func (s *Server) RemovePostTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	tagID, err := parseID(c, "tagId")
	if err != nil {
		return nil
	}

	if err := s.postService.RemoveTag(c.Context(), id, tagID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
