package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/response"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

type catalogService interface {
	ListCategories(ctx context.Context) ([]*entities.Category, error)
	CreateCategory(ctx context.Context, input *entities.CreateCategoryInput) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*entities.Product, error)
}

// CatalogHandler handles the public catalog endpoints and admin
// category management
type CatalogHandler struct {
	catalogUsecase catalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase catalogService) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListCategories lists all categories
// GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUsecase.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// CreateCategory creates a category
// POST /api/v1/admin/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.catalogUsecase.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// DeleteCategory deletes a category
// DELETE /api/v1/admin/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.catalogUsecase.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "category deleted"})
}

// ListProducts lists products with optional filters
// GET /api/v1/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	pagination := utils.GetPaginationParams(page, limit)

	products, total, err := h.catalogUsecase.ListProducts(c.Request.Context(), filter, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": products,
		"meta":  utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// GetProduct returns one product
// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalogUsecase.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// SearchProducts searches products by name and description
// GET /api/v1/products/search?q=...
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "query parameter q is required")
		return
	}

	products, err := h.catalogUsecase.SearchProducts(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

func parseProductFilter(c *gin.Context) (entities.ProductFilter, error) {
	filter := entities.ProductFilter{
		Search: c.Query("search"),
		Sort:   entities.ProductSort(c.DefaultQuery("sort", string(entities.ProductSortNewest))),
	}

	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("storeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.StoreID = &id
	}
	if raw := c.Query("minPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &price
	}
	if raw := c.Query("maxPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &price
	}

	return filter, nil
}
