package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"goldhouse_backend/internal/feature/contacts/domain/entity"
	"goldhouse_backend/internal/feature/contacts/usecase"
)

// mockContactUsecase is a mock implementation of the ContactUsecase interface.
type mockContactUsecase struct {
	CreateFunc func(ctx context.Context, fullName, phoneNumber, subject, message string) (uint, error)
	ListFunc   func(ctx context.Context) ([]entity.Contact, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Contact, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockContactUsecase) Create(ctx context.Context, fullName, phoneNumber, subject, message string) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fullName, phoneNumber, subject, message)
	}
	return 0, errors.New("unexpected call")
}

func (m *mockContactUsecase) List(ctx context.Context) ([]entity.Contact, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactUsecase) Get(ctx context.Context, id uint) (*entity.Contact, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrContactNotFound
}

func (m *mockContactUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return usecase.ErrContactNotFound
}

func newRouter(uc ContactUsecase) *gin.Engine {
	handler := NewContactHandler(uc)
	r := gin.New()
	r.POST("/api/contact", handler.Create)
	r.GET("/api/contact", handler.List)
	r.GET("/api/contact/:id", handler.Get)
	r.DELETE("/api/contact/:id", handler.Delete)
	return r
}

func TestContactHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       gin.H
		wantStatus int
		wantBody   string
	}{
		{
			name: "success: inquiry submitted",
			body: gin.H{
				"full_name":    "Karimova Nodira",
				"phone_number": "+998901234567",
				"subject":      "Custom order",
				"message":      "Is a 750 proba version of the wedding ring available?",
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":9}`,
		},
		{
			name:       "failure: missing message",
			body:       gin.H{"full_name": "X", "phone_number": "+998900000000", "subject": "Hi"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request"}`,
		},
		{
			name:       "failure: empty body",
			body:       gin.H{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			mockUC := &mockContactUsecase{
				CreateFunc: func(ctx context.Context, fullName, phoneNumber, subject, message string) (uint, error) {
					created = true
					return 9, nil
				},
			}

			w := doJSON(t, newRouter(mockUC), http.MethodPost, "/api/contact", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			if tt.wantStatus != http.StatusCreated {
				assert.False(t, created, "usecase must not be called for an invalid request")
			}
		})
	}
}

func TestContactHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockContactUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Contact, error) {
			return []entity.Contact{
				{ID: 2, FullName: "Newer", Subject: "b"},
				{ID: 1, FullName: "Older", Subject: "a"},
			}, nil
		},
	}

	w := doJSON(t, newRouter(mockUC), http.MethodGet, "/api/contact", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Newer", resp[0]["full_name"])
}

func TestContactHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: inquiry found", func(t *testing.T) {
		mockUC := &mockContactUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Contact, error) {
				assert.Equal(t, uint(4), id)
				return &entity.Contact{ID: 4, FullName: "Karimova Nodira", Subject: "Custom order"}, nil
			},
		}

		w := doJSON(t, newRouter(mockUC), http.MethodGet, "/api/contact/4", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure: inquiry not found", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockContactUsecase{}), http.MethodGet, "/api/contact/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"contact not found"}`, w.Body.String())
	})
}

func TestContactHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: inquiry deleted", func(t *testing.T) {
		mockUC := &mockContactUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return nil },
		}

		w := doJSON(t, newRouter(mockUC), http.MethodDelete, "/api/contact/4", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"contact deleted"}`, w.Body.String())
	})

	t.Run("failure: inquiry not found", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockContactUsecase{}), http.MethodDelete, "/api/contact/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// doJSON executes a JSON request against the router and returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
