package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *testMocks)
		expectedStatus int
		expectedReason string
	}{
		{
			name: "Success",
			body: map[string]string{"label": "Travel"},
			mockSetup: func(m *testMocks) {
				m.categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
					return c.Label == "Travel"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing label",
			body:           map[string]string{"label": "   "},
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "Label is required",
		},
		{
			name:           "Label too long",
			body:           map[string]string{"label": string(bytes.Repeat([]byte("x"), 51))},
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "Label too long (max 50 characters)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestServer()
			tt.mockSetup(m)

			app := fiber.New()
			app.Post("/categories", s.CreateCategory)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedReason != "" {
				var errResp models.ErrorResponse
				assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedReason, errResp.Reason)
			}
			m.categoryRepo.AssertExpectations(t)
		})
	}
}

func TestGetCategories(t *testing.T) {
	s, m := newTestServer()
	m.categoryRepo.On("List", mock.Anything).Return([]*models.Category{
		{ID: 2, Label: "News"},
		{ID: 1, Label: "Travel"},
	}, nil)

	app := fiber.New()
	app.Get("/categories", s.GetCategories)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []models.Category
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Len(t, categories, 2)
	assert.Equal(t, "News", categories[0].Label)
}

func TestGetCategory_NotFound(t *testing.T) {
	s, m := newTestServer()
	m.categoryRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	app := fiber.New()
	app.Get("/categories/:id", s.GetCategory)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/categories/42", nil))
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp models.ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Category with ID 42 not found", errResp.Message)
}

func TestDeleteCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, m := newTestServer()
		m.categoryRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		app := fiber.New()
		app.Delete("/categories/:id", s.DeleteCategory)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/categories/1", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Not found", func(t *testing.T) {
		s, m := newTestServer()
		m.categoryRepo.On("Delete", mock.Anything, uint(42)).Return(gorm.ErrRecordNotFound)

		app := fiber.New()
		app.Delete("/categories/:id", s.DeleteCategory)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/categories/42", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		s, _ := newTestServer()

		app := fiber.New()
		app.Delete("/categories/:id", s.DeleteCategory)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/categories/abc", nil))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
