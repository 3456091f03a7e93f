// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"rare/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores plaintext passwords, useful to speed up large seeds
	// in development.
	SkipBcrypt bool
}

var categoryLabels = []string{
	"News", "Technology", "Travel", "Food", "Music", "Movies",
	"Books", "Sports", "Science", "History", "Art", "Gaming",
}

var tagLabels = []string{
	"golang", "opinion", "tutorial", "review", "longread", "question",
	"announcement", "beginner", "advanced", "offtopic",
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Seeder{db: db, opts: opts, rng: rng}
}

// Run populates the database with test data.
func (s *Seeder) Run() error {
	log.Printf("Seeding %d users and %d posts...", s.opts.NumUsers, s.opts.NumPosts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Printf("Warning: could not clear existing data: %v", err)
		}
	}

	profiles, err := s.createProfiles(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users with profiles", len(profiles))

	categories, err := s.createCategories()
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	tags, err := s.createTags()
	if err != nil {
		return fmt.Errorf("failed to create tags: %w", err)
	}
	log.Printf("Created %d categories and %d tags", len(categories), len(tags))

	posts, err := s.createPosts(profiles, categories, tags, s.opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	comments, err := s.createComments(profiles, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("Created %d comments", comments)

	log.Println("Database seeding completed")
	return nil
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, post_tags, posts, tags, categories, profiles, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// CreateProfile constructs and persists a user with an attached profile.
// Optional override functions may modify the generated profile before saving.
func (s *Seeder) CreateProfile(overrides ...func(*models.Profile)) (*models.Profile, error) {
	password := "password123"
	if !s.opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		password = string(hashed)
	}

	user := &models.User{
		Username:  strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		Password:  password,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:          user.ID,
		Bio:             truncate(gofakeit.Sentence(6), 50),
		ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%d", user.ID),
		CreatedOn:       dateOnly(time.Now().AddDate(0, 0, -s.rng.Intn(365))),
		Active:          true,
	}
	for _, override := range overrides {
		override(profile)
	}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}
	profile.User = *user
	return profile, nil
}

// CreatePost constructs and persists a post by the given author.
func (s *Seeder) CreatePost(author *models.Profile, category *models.Category, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		AuthorID:        author.ID,
		CategoryID:      category.ID,
		Title:           truncate(gofakeit.Sentence(4), 50),
		PublicationDate: dateOnly(time.Now().AddDate(0, 0, -s.rng.Intn(90))),
		ImageURL:        fmt.Sprintf("https://picsum.photos/seed/%d/800/600", gofakeit.Number(1, 100000)),
		Content:         truncate(gofakeit.Sentence(12), 100),
		Approved:        true,
	}
	for _, override := range overrides {
		override(post)
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment on the provided post
// authored by the provided profile.
func (s *Seeder) CreateComment(author *models.Profile, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		AuthorID:  author.ID,
		Content:   truncate(gofakeit.Sentence(10), 500),
		CreatedOn: dateOnly(time.Now().AddDate(0, 0, -s.rng.Intn(30))),
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Seeder) createProfiles(n int) ([]*models.Profile, error) {
	profiles := make([]*models.Profile, 0, n)
	for i := 0; i < n; i++ {
		profile, err := s.CreateProfile()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (s *Seeder) createCategories() ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(categoryLabels))
	for _, label := range categoryLabels {
		category := &models.Category{Label: label}
		if err := s.db.Create(category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *Seeder) createTags() ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(tagLabels))
	for _, label := range tagLabels {
		tag := &models.Tag{Label: label}
		if err := s.db.Create(tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *Seeder) createPosts(profiles []*models.Profile, categories []*models.Category, tags []*models.Tag, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := profiles[s.rng.Intn(len(profiles))]
		category := categories[s.rng.Intn(len(categories))]
		post, err := s.CreatePost(author, category)
		if err != nil {
			return nil, err
		}

		// Up to three distinct tags per post.
		for _, idx := range s.rng.Perm(len(tags))[:s.rng.Intn(4)] {
			pt := &models.PostTag{PostID: post.ID, TagID: tags[idx].ID}
			if err := s.db.Create(pt).Error; err != nil {
				return nil, err
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) createComments(profiles []*models.Profile, posts []*models.Post) (int, error) {
	total := 0
	for _, post := range posts {
		for i := 0; i < s.rng.Intn(5); i++ {
			author := profiles[s.rng.Intn(len(profiles))]
			if _, err := s.CreateComment(author, post); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
