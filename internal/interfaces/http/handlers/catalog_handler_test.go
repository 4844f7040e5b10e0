package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

type catalogServiceStub struct {
	listCategoriesFn func(ctx context.Context) ([]*entities.Category, error)
	createCategoryFn func(ctx context.Context, input *entities.CreateCategoryInput) (*entities.Category, error)
	deleteCategoryFn func(ctx context.Context, id uuid.UUID) error
	listProductsFn   func(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error)
	getProductFn     func(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	searchFn         func(ctx context.Context, query string) ([]*entities.Product, error)
}

func (s catalogServiceStub) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.listCategoriesFn(ctx)
}
func (s catalogServiceStub) CreateCategory(ctx context.Context, input *entities.CreateCategoryInput) (*entities.Category, error) {
	return s.createCategoryFn(ctx, input)
}
func (s catalogServiceStub) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.deleteCategoryFn(ctx, id)
}
func (s catalogServiceStub) ListProducts(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	return s.listProductsFn(ctx, filter, pagination)
}
func (s catalogServiceStub) GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return s.getProductFn(ctx, id)
}
func (s catalogServiceStub) SearchProducts(ctx context.Context, query string) ([]*entities.Product, error) {
	return s.searchFn(ctx, query)
}

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/categories", h.ListCategories)
	r.POST("/admin/categories", h.CreateCategory)
	r.DELETE("/admin/categories/:id", h.DeleteCategory)
	r.GET("/products", h.ListProducts)
	r.GET("/products/search", h.SearchProducts)
	r.GET("/products/:id", h.GetProduct)
	return r
}

func TestCatalogHandler_Categories(t *testing.T) {
	categoryID := uuid.New()

	h := NewCatalogHandler(catalogServiceStub{
		listCategoriesFn: func(_ context.Context) ([]*entities.Category, error) {
			return []*entities.Category{{ID: categoryID, Name: "Stationery", Slug: "stationery"}}, nil
		},
		createCategoryFn: func(_ context.Context, input *entities.CreateCategoryInput) (*entities.Category, error) {
			if input.Slug == "stationery" {
				return nil, domainerrors.BadRequest("slug already in use")
			}
			return &entities.Category{ID: uuid.New(), Name: input.Name, Slug: input.Slug}, nil
		},
		deleteCategoryFn: func(_ context.Context, id uuid.UUID) error {
			if id != categoryID {
				return domainerrors.NotFound("category not found")
			}
			return nil
		},
	})
	r := newCatalogRouter(h)

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "stationery")
	})

	t.Run("create", func(t *testing.T) {
		body := `{"name":"Books","slug":"books"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/categories", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		body := `{"name":"Stationery Two","slug":"stationery"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/categories", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/categories/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler_ListProducts_FilterParsing(t *testing.T) {
	categoryID := uuid.New()
	var captured entities.ProductFilter
	var capturedPage utils.PaginationParams

	h := NewCatalogHandler(catalogServiceStub{
		listProductsFn: func(_ context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
			captured = filter
			capturedPage = pagination
			return []*entities.Product{}, 0, nil
		},
	})
	r := newCatalogRouter(h)

	t.Run("full filter", func(t *testing.T) {
		url := "/products?categoryId=" + categoryID.String() + "&minPrice=5.00&maxPrice=20.00&search=note&sort=low_to_high"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, categoryID, *captured.CategoryID)
		require.True(t, captured.MinPrice.Equal(decimal.RequireFromString("5.00")))
		require.True(t, captured.MaxPrice.Equal(decimal.RequireFromString("20.00")))
		require.Equal(t, "note", captured.Search)
		require.Equal(t, entities.ProductSortLowToHigh, captured.Sort)
	})

	t.Run("defaults to newest", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, entities.ProductSortNewest, captured.Sort)
		require.Equal(t, utils.PaginationParams{Page: 1, Limit: 0}, capturedPage)
	})

	t.Run("pagination", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products?page=2&limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, utils.PaginationParams{Page: 2, Limit: 10}, capturedPage)
		require.Contains(t, w.Body.String(), `"meta"`)
	})

	t.Run("bad price", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products?minPrice=cheap", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad category id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products?categoryId=nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_GetAndSearch(t *testing.T) {
	productID := uuid.New()

	h := NewCatalogHandler(catalogServiceStub{
		getProductFn: func(_ context.Context, id uuid.UUID) (*entities.Product, error) {
			if id != productID {
				return nil, domainerrors.NotFound("product not found")
			}
			return &entities.Product{ID: id, Name: "Notebook"}, nil
		},
		searchFn: func(_ context.Context, query string) ([]*entities.Product, error) {
			require.Equal(t, "note", query)
			return []*entities.Product{{ID: productID, Name: "Notebook"}}, nil
		},
	})
	r := newCatalogRouter(h)

	t.Run("get", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/"+productID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("search", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/search?q=note", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Notebook")
	})

	t.Run("search needs a query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/search", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
