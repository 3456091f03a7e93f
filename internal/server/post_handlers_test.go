package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func testProfile() *models.Profile {
	return &models.Profile{
		ID:     5,
		UserID: 1,
		User:   models.User{ID: 1, Username: "janedoe", FirstName: "Jane", LastName: "Doe"},
	}
}

func testPost() *models.Post {
	return &models.Post{
		ID:              10,
		AuthorID:        5,
		CategoryID:      3,
		Title:           "A post",
		PublicationDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Content:         "Hello",
		Approved:        true,
		Author:          *testProfile(),
		Category:        models.Category{ID: 3, Label: "News"},
	}
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func(m *testMocks)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]interface{}{
				"title":       "A post",
				"content":     "Hello",
				"category_id": 3,
			},
			mockSetup: func(m *testMocks) {
				m.profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(), nil)
				m.categoryRepo.On("GetByID", mock.Anything, uint(3)).Return(&models.Category{ID: 3, Label: "News"}, nil)
				m.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
					return p.AuthorID == 5 && p.Approved && !p.PublicationDate.IsZero()
				})).Return(nil)
				m.postRepo.On("GetSummaryByID", mock.Anything, mock.Anything).Return(testPost(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Missing title",
			body: map[string]interface{}{
				"content":     "Hello",
				"category_id": 3,
			},
			mockSetup: func(m *testMocks) {
				m.profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(), nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown category",
			body: map[string]interface{}{
				"title":       "A post",
				"content":     "Hello",
				"category_id": 99,
			},
			mockSetup: func(m *testMocks) {
				m.profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(), nil)
				m.categoryRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestServer()
			tt.mockSetup(m)

			app := fiber.New()
			asUser(app, 1)
			app.Post("/posts", s.CreatePost)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var summary models.PostSummary
				assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
				assert.Equal(t, "A post", summary.Title)
				assert.True(t, summary.Approved)
				assert.Equal(t, "2025-06-01", summary.PublicationDate)
				assert.Equal(t, "janedoe", summary.Author.User.Username)
			}
		})
	}
}

func TestGetPosts(t *testing.T) {
	t.Run("Full listing", func(t *testing.T) {
		s, m := newTestServer()
		m.profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(), nil)
		m.postRepo.On("List", mock.Anything).Return([]*models.Post{testPost()}, nil)

		app := fiber.New()
		asUser(app, 1)
		app.Get("/posts", s.GetPosts)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var summaries []models.PostSummary
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
		assert.Len(t, summaries, 1)
		m.postRepo.AssertNotCalled(t, "ListByAuthor", mock.Anything, mock.Anything)
	})

	t.Run("Filter param narrows to caller", func(t *testing.T) {
		s, m := newTestServer()
		m.profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(), nil)
		m.postRepo.On("ListByAuthor", mock.Anything, uint(5)).Return([]*models.Post{}, nil)

		app := fiber.New()
		asUser(app, 1)
		app.Get("/posts", s.GetPosts)

		// The parameter's presence alone triggers the filter; the value is
		// ignored, even another profile's ID.
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts?get_posts_by_user=999", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var summaries []models.PostSummary
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
		assert.NotNil(t, summaries)
		assert.Len(t, summaries, 0)
		m.postRepo.AssertExpectations(t)
	})
}

func TestGetPost(t *testing.T) {
	t.Run("Detail includes tags and comments", func(t *testing.T) {
		s, m := newTestServer()
		post := testPost()
		post.Tags = []models.Tag{{ID: 1, Label: "golang"}}
		post.Comments = []models.Comment{
			{
				ID:        1,
				PostID:    10,
				AuthorID:  5,
				Author:    *testProfile(),
				Content:   "First!",
				CreatedOn: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			},
		}
		m.postRepo.On("GetByID", mock.Anything, uint(10)).Return(post, nil)

		app := fiber.New()
		app.Get("/posts/:id", s.GetPost)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/10", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var detail models.PostDetail
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
		assert.Equal(t, "A post", detail.Title)
		assert.Len(t, detail.Tags, 1)
		assert.Len(t, detail.Comments, 1)
		assert.Equal(t, "First!", detail.Comments[0].Content)
		assert.Equal(t, "2025-06-02", detail.Comments[0].CreatedOn)
	})

	t.Run("Missing post returns 404", func(t *testing.T) {
		s, m := newTestServer()
		m.postRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		app := fiber.New()
		app.Get("/posts/:id", s.GetPost)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/99", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdatePost(t *testing.T) {
	t.Run("Success returns no content", func(t *testing.T) {
		s, m := newTestServer()
		m.profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(), nil)
		m.categoryRepo.On("GetByID", mock.Anything, uint(3)).Return(&models.Category{ID: 3}, nil)
		m.postRepo.On("GetSummaryByID", mock.Anything, uint(10)).Return(testPost(), nil)
		m.postRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			// The caller becomes the author and the post is re-approved.
			return p.AuthorID == 5 && p.Approved && p.Title == "Edited"
		})).Return(nil)

		app := fiber.New()
		asUser(app, 1)
		app.Put("/posts/:id", s.UpdatePost)

		body, _ := json.Marshal(map[string]interface{}{
			"title":            "Edited",
			"content":          "Updated",
			"category_id":      3,
			"publication_date": "2025-06-15",
		})
		req := httptest.NewRequest(http.MethodPut, "/posts/10", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		m.postRepo.AssertExpectations(t)
	})

	t.Run("Bad publication date", func(t *testing.T) {
		s, m := newTestServer()
		m.profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(), nil)

		app := fiber.New()
		asUser(app, 1)
		app.Put("/posts/:id", s.UpdatePost)

		body, _ := json.Marshal(map[string]interface{}{
			"title":            "Edited",
			"content":          "Updated",
			"category_id":      3,
			"publication_date": "June 15th",
		})
		req := httptest.NewRequest(http.MethodPut, "/posts/10", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, m := newTestServer()
		m.postRepo.On("Delete", mock.Anything, uint(10)).Return(nil)

		app := fiber.New()
		app.Delete("/posts/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/10", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Not found", func(t *testing.T) {
		s, m := newTestServer()
		m.postRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

		app := fiber.New()
		app.Delete("/posts/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/99", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAddPostTag(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, m := newTestServer()
		m.postRepo.On("GetSummaryByID", mock.Anything, uint(10)).Return(testPost(), nil)
		m.tagRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.Tag{ID: 2, Label: "golang"}, nil)
		m.postRepo.On("AddTag", mock.Anything, uint(10), uint(2)).Return(nil)

		app := fiber.New()
		app.Post("/posts/:id/tags", s.AddPostTag)

		body, _ := json.Marshal(map[string]interface{}{"tag_id": 2})
		req := httptest.NewRequest(http.MethodPost, "/posts/10/tags", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		m.postRepo.AssertExpectations(t)
	})

	t.Run("Unknown tag", func(t *testing.T) {
		s, m := newTestServer()
		m.postRepo.On("GetSummaryByID", mock.Anything, uint(10)).Return(testPost(), nil)
		m.tagRepo.On("GetByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		app := fiber.New()
		app.Post("/posts/:id/tags", s.AddPostTag)

		body, _ := json.Marshal(map[string]interface{}{"tag_id": 9})
		req := httptest.NewRequest(http.MethodPost, "/posts/10/tags", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRemovePostTag(t *testing.T) {
	s, m := newTestServer()
	m.postRepo.On("RemoveTag", mock.Anything, uint(10), uint(2)).Return(nil)

	app := fiber.New()
	app.Delete("/posts/:id/tags/:tagId", s.RemovePostTag)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/10/tags/2", nil))
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	m.postRepo.AssertExpectations(t)
}
