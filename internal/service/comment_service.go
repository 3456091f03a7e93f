package service

import (
	"context"

	"rare/internal/models"
	"rare/internal/observability"
	"rare/internal/repository"
)

const maxCommentLen = 500

// CommentService implements comment operations over the repositories.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput carries the fields for creating a comment. AuthorID is
// the resolved caller's profile.
type CreateCommentInput struct {
	PostID   uint
	AuthorID uint
	Content  string
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// Create validates and persists a comment under a post. The creation date is
// always the current date. Returns the comment with its author loaded.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Content too long (max 500 characters)")
	}

	if _, err := s.postRepo.GetSummaryByID(ctx, in.PostID); err != nil {
		return nil, notFoundOr(err, "Post", in.PostID)
	}

	comment := &models.Comment{
		PostID:    in.PostID,
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		CreatedOn: today(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListByPost returns a post's comments oldest first. The post must exist.
// Never returns a nil slice.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetSummaryByID(ctx, postID); err != nil {
		return nil, notFoundOr(err, "Post", postID)
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}
