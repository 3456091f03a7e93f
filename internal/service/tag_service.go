package service

import (
	"context"
	"strings"

	"rare/internal/models"
	"rare/internal/repository"
)

// TagService implements tag operations over the repository.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// Create validates and persists a new tag.
func (s *TagService) Create(ctx context.Context, label string) (*models.Tag, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, models.NewValidationError("Label is required")
	}
	if len(label) > maxLabelLen {
		return nil, models.NewValidationError("Label too long (max 50 characters)")
	}

	tag := &models.Tag{Label: label}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// List returns all tags. Never returns a nil slice.
func (s *TagService) List(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	return tags, nil
}

// Delete removes a tag by ID.
func (s *TagService) Delete(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Tag", id)
	}
	return nil
}
