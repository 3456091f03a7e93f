package service

import (
	"context"
	"time"

	"rare/internal/models"
	"rare/internal/observability"
	"rare/internal/repository"
)

const (
	maxTitleLen    = 50
	maxContentLen  = 100
	maxImageURLLen = 100
)

// PostService implements post operations over the repositories.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

// CreatePostInput carries the fields for creating a post. AuthorID is the
// resolved caller's profile, never client input.
type CreatePostInput struct {
	AuthorID   uint
	CategoryID uint
	Title      string
	ImageURL   string
	Content    string
}

// UpdatePostInput carries the fields for overwriting a post.
type UpdatePostInput struct {
	PostID          uint
	CallerProfileID uint
	CategoryID      uint
	Title           string
	PublicationDate string
	ImageURL        string
	Content         string
}

// ListPostsInput selects between the full listing and the caller's own posts.
type ListPostsInput struct {
	CallerProfileID uint
	MineOnly        bool
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func validatePostFields(title, content, imageURL string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 50 characters)")
	}
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 100 characters)")
	}
	if len(imageURL) > maxImageURLLen {
		return models.NewValidationError("Image URL too long (max 100 characters)")
	}
	return nil
}

// Create publishes a new post. The publication date is always the current
// date and the post is approved unconditionally; client input for either is
// ignored. Returns the post with the summary associations loaded.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Title, in.Content, in.ImageURL); err != nil {
		return nil, err
	}
	if in.CategoryID == 0 {
		return nil, models.NewValidationError("category_id is required")
	}

	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, notFoundOr(err, "Category", in.CategoryID)
	}

	post := &models.Post{
		AuthorID:        in.AuthorID,
		CategoryID:      category.ID,
		Title:           in.Title,
		PublicationDate: today(),
		ImageURL:        in.ImageURL,
		Content:         in.Content,
		Approved:        true,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	return s.postRepo.GetSummaryByID(ctx, post.ID)
}

// Get fetches a single post with its full detail graph.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post", id)
	}
	return post, nil
}

// Update overwrites all mutable fields of a post and re-approves it.
//
// TODO: Update reassigns the post author to the caller instead of preserving
// the original author. Product has been asked to confirm whether this is
// intended before it is changed.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) error {
	if err := validatePostFields(in.Title, in.Content, in.ImageURL); err != nil {
		return err
	}
	if in.CategoryID == 0 {
		return models.NewValidationError("category_id is required")
	}
	pubDate, err := time.ParseInLocation(models.DateLayout, in.PublicationDate, time.UTC)
	if err != nil {
		return models.NewValidationError("publication_date must be formatted as YYYY-MM-DD")
	}

	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return notFoundOr(err, "Category", in.CategoryID)
	}

	post, err := s.postRepo.GetSummaryByID(ctx, in.PostID)
	if err != nil {
		return notFoundOr(err, "Post", in.PostID)
	}

	post.AuthorID = in.CallerProfileID
	post.CategoryID = category.ID
	post.Title = in.Title
	post.PublicationDate = pubDate
	post.ImageURL = in.ImageURL
	post.Content = in.Content
	post.Approved = true
	// Clear loaded associations so Save writes only the row itself.
	post.Author = models.Profile{}
	post.Category = models.Category{}

	return s.postRepo.Update(ctx, post)
}

// Delete removes a post; comments and tag associations cascade away with it.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Post", id)
	}
	return nil
}

// List returns all posts, or only the caller's when MineOnly is set.
func (s *PostService) List(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	if in.MineOnly {
		return s.postRepo.ListByAuthor(ctx, in.CallerProfileID)
	}
	return s.postRepo.List(ctx)
}

// AddTag associates a tag with a post. Both sides must exist; re-adding an
// existing association is a no-op.
func (s *PostService) AddTag(ctx context.Context, postID, tagID uint) error {
	if tagID == 0 {
		return models.NewValidationError("tag_id is required")
	}
	if _, err := s.postRepo.GetSummaryByID(ctx, postID); err != nil {
		return notFoundOr(err, "Post", postID)
	}
	if _, err := s.tagRepo.GetByID(ctx, tagID); err != nil {
		return notFoundOr(err, "Tag", tagID)
	}
	return s.postRepo.AddTag(ctx, postID, tagID)
}

// RemoveTag removes a tag association from a post.
func (s *PostService) RemoveTag(ctx context.Context, postID, tagID uint) error {
	if err := s.postRepo.RemoveTag(ctx, postID, tagID); err != nil {
		return notFoundOr(err, "Post tag", tagID)
	}
	return nil
}
