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

	"goldhouse_backend/internal/feature/products/domain/entity"
	"goldhouse_backend/internal/feature/products/usecase"
)

// mockProductUsecase is a mock implementation of the ProductUsecase interface.
type mockProductUsecase struct {
	CreateFunc func(ctx context.Context, title, description, imagePath string, proba int, gramm float64, typ string) (uint, error)
	ListFunc   func(ctx context.Context) ([]entity.Product, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Product, error)
	UpdateFunc func(ctx context.Context, id uint, params usecase.UpdateParams) error
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockProductUsecase) Create(ctx context.Context, title, description, imagePath string, proba int, gramm float64, typ string) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, title, description, imagePath, proba, gramm, typ)
	}
	return 0, errors.New("unexpected call")
}

func (m *mockProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrProductNotFound
}

func (m *mockProductUsecase) Update(ctx context.Context, id uint, params usecase.UpdateParams) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return usecase.ErrProductNotFound
}

func (m *mockProductUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return usecase.ErrProductNotFound
}

func newRouter(uc ProductUsecase) *gin.Engine {
	handler := NewProductHandler(uc)
	r := gin.New()
	r.GET("/api/product", handler.List)
	r.GET("/api/product/:id", handler.Get)
	r.POST("/api/product", handler.Create)
	r.PATCH("/api/product/:id", handler.Update)
	r.DELETE("/api/product/:id", handler.Delete)
	return r
}

func TestProductHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := gin.H{
		"title":       "Wedding ring",
		"description": "Classic yellow gold band",
		"image_path":  "/images/ring-1.png",
		"proba":       585,
		"gramm":       4.2,
		"type":        "ring",
	}

	t.Run("success: product creation", func(t *testing.T) {
		mockUC := &mockProductUsecase{
			CreateFunc: func(ctx context.Context, title, description, imagePath string, proba int, gramm float64, typ string) (uint, error) {
				assert.Equal(t, "Wedding ring", title)
				assert.Equal(t, 585, proba)
				assert.InDelta(t, 4.2, gramm, 1e-9)
				return 3, nil
			},
		}

		w := doJSON(t, newRouter(mockUC), http.MethodPost, "/api/product", validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":3}`, w.Body.String())
	})

	t.Run("failure: proba omitted fails validation before the store", func(t *testing.T) {
		body := gin.H{}
		for k, v := range validBody {
			if k != "proba" {
				body[k] = v
			}
		}
		mockUC := &mockProductUsecase{
			CreateFunc: func(ctx context.Context, title, description, imagePath string, proba int, gramm float64, typ string) (uint, error) {
				t.Error("usecase must not be called for an invalid request")
				return 0, nil
			},
		}

		w := doJSON(t, newRouter(mockUC), http.MethodPost, "/api/product", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
	})

	t.Run("success: proba zero is present, not missing", func(t *testing.T) {
		body := gin.H{}
		for k, v := range validBody {
			body[k] = v
		}
		body["proba"] = 0

		called := false
		mockUC := &mockProductUsecase{
			CreateFunc: func(ctx context.Context, title, description, imagePath string, proba int, gramm float64, typ string) (uint, error) {
				called = true
				assert.Equal(t, 0, proba)
				return 4, nil
			},
		}

		w := doJSON(t, newRouter(mockUC), http.MethodPost, "/api/product", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, called, "usecase should be called when proba is explicitly zero")
	})
}

func TestProductHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: product found", func(t *testing.T) {
		mockUC := &mockProductUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Product, error) {
				assert.Equal(t, uint(12), id)
				return &entity.Product{ID: 12, Title: "Chain", Proba: 750, Gramm: 10.5, Type: "chain"}, nil
			},
		}

		w := doJSON(t, newRouter(mockUC), http.MethodGet, "/api/product/12", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.EqualValues(t, 12, resp["id"])
		assert.EqualValues(t, 750, resp["proba"])
	})

	t.Run("failure: product not found", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockProductUsecase{}), http.MethodGet, "/api/product/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"product not found"}`, w.Body.String())
	})

	t.Run("failure: non-numeric id", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockProductUsecase{}), http.MethodGet, "/api/product/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: partial update passes only provided fields", func(t *testing.T) {
		mockUC := &mockProductUsecase{
			UpdateFunc: func(ctx context.Context, id uint, params usecase.UpdateParams) error {
				assert.Equal(t, uint(5), id)
				if assert.NotNil(t, params.Title) {
					assert.Equal(t, "Renamed", *params.Title)
				}
				assert.Nil(t, params.Proba, "omitted fields must stay nil")
				return nil
			},
		}

		w := doJSON(t, newRouter(mockUC), http.MethodPatch, "/api/product/5", gin.H{"title": "Renamed"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure: product not found", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockProductUsecase{}), http.MethodPatch, "/api/product/999", gin.H{"title": "x"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: product deleted", func(t *testing.T) {
		mockUC := &mockProductUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return nil },
		}

		w := doJSON(t, newRouter(mockUC), http.MethodDelete, "/api/product/5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure: product not found", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockProductUsecase{}), http.MethodDelete, "/api/product/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockProductUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Product, error) {
			return []entity.Product{
				{ID: 2, Title: "Newer"},
				{ID: 1, Title: "Older"},
			}, nil
		},
	}

	w := doJSON(t, newRouter(mockUC), http.MethodGet, "/api/product", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Newer", resp[0]["title"])
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
