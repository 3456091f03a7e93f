package service

import (
	"context"
	"strings"

	"rare/internal/models"
	"rare/internal/repository"
)

const maxLabelLen = 50

// CategoryService implements category operations over the repository.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create validates and persists a new category.
func (s *CategoryService) Create(ctx context.Context, label string) (*models.Category, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, models.NewValidationError("Label is required")
	}
	if len(label) > maxLabelLen {
		return nil, models.NewValidationError("Label too long (max 50 characters)")
	}

	category := &models.Category{Label: label}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get fetches a single category by ID.
func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Category", id)
	}
	return category, nil
}

// List returns all categories sorted by label. Never returns a nil slice.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return categories, nil
}

// Delete removes a category by ID.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Category", id)
	}
	return nil
}
