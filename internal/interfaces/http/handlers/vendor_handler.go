package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/middleware"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/response"
)

type vendorCatalogService interface {
	CreateStore(ctx context.Context, vendorID uuid.UUID, input *entities.CreateStoreInput) (*entities.Store, error)
	GetStore(ctx context.Context, vendorID uuid.UUID) (*entities.Store, error)
	CreateProduct(ctx context.Context, vendorID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error)
	ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entities.Product, error)
	UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error)
	DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error
}

type vendorOrderService interface {
	ListVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]*entities.Order, error)
}

type vendorEarningService interface {
	ListVendorEarnings(ctx context.Context, vendorID uuid.UUID) ([]*entities.VendorEarning, error)
	GetEarningsSummary(ctx context.Context, vendorID uuid.UUID) (*entities.EarningsSummary, error)
	RequestPayout(ctx context.Context, vendorID uuid.UUID, input *entities.RequestPayoutInput) (*entities.VendorPayout, error)
	ListVendorPayouts(ctx context.Context, vendorID uuid.UUID) ([]*entities.VendorPayout, error)
}

type reportService interface {
	SalesReport(ctx context.Context, vendorID uuid.UUID) (*entities.SalesReport, error)
}

// VendorHandler handles the vendor dashboard endpoints: store and
// product management, incoming orders, earnings, payouts and reports
type VendorHandler struct {
	catalogUsecase vendorCatalogService
	orderUsecase   vendorOrderService
	earningUsecase vendorEarningService
	reportUsecase  reportService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(
	catalogUsecase vendorCatalogService,
	orderUsecase vendorOrderService,
	earningUsecase vendorEarningService,
	reportUsecase reportService,
) *VendorHandler {
	return &VendorHandler{
		catalogUsecase: catalogUsecase,
		orderUsecase:   orderUsecase,
		earningUsecase: earningUsecase,
		reportUsecase:  reportUsecase,
	}
}

// CreateStore opens the caller's store
// POST /api/v1/vendor/store
func (h *VendorHandler) CreateStore(c *gin.Context) {
	var input entities.CreateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	vendorID, _ := middleware.GetUserID(c)
	store, err := h.catalogUsecase.CreateStore(c.Request.Context(), vendorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, store)
}

// GetStore returns the caller's store
// GET /api/v1/vendor/store
func (h *VendorHandler) GetStore(c *gin.Context) {
	vendorID, _ := middleware.GetUserID(c)
	store, err := h.catalogUsecase.GetStore(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, store)
}

// CreateProduct adds a product to the caller's store
// POST /api/v1/vendor/products
func (h *VendorHandler) CreateProduct(c *gin.Context) {
	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	vendorID, _ := middleware.GetUserID(c)
	product, err := h.catalogUsecase.CreateProduct(c.Request.Context(), vendorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// ListProducts lists the caller's products
// GET /api/v1/vendor/products
func (h *VendorHandler) ListProducts(c *gin.Context) {
	vendorID, _ := middleware.GetUserID(c)
	products, err := h.catalogUsecase.ListVendorProducts(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// UpdateProduct applies a partial update to one of the caller's products
// PATCH /api/v1/vendor/products/:id
func (h *VendorHandler) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	vendorID, _ := middleware.GetUserID(c)
	product, err := h.catalogUsecase.UpdateProduct(c.Request.Context(), vendorID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes one of the caller's products
// DELETE /api/v1/vendor/products/:id
func (h *VendorHandler) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	vendorID, _ := middleware.GetUserID(c)
	if err := h.catalogUsecase.DeleteProduct(c.Request.Context(), vendorID, productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "product deleted"})
}

// ListOrders lists orders containing the caller's products
// GET /api/v1/vendor/orders
func (h *VendorHandler) ListOrders(c *gin.Context) {
	vendorID, _ := middleware.GetUserID(c)
	orders, err := h.orderUsecase.ListVendorOrders(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// ListEarnings lists the caller's earnings
// GET /api/v1/vendor/earnings
func (h *VendorHandler) ListEarnings(c *gin.Context) {
	vendorID, _ := middleware.GetUserID(c)
	earnings, err := h.earningUsecase.ListVendorEarnings(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, earnings)
}

// EarningsSummary returns the caller's earnings totals per status
// GET /api/v1/vendor/earnings/summary
func (h *VendorHandler) EarningsSummary(c *gin.Context) {
	vendorID, _ := middleware.GetUserID(c)
	summary, err := h.earningUsecase.GetEarningsSummary(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// RequestPayout creates a payout request against available earnings
// POST /api/v1/vendor/payouts
func (h *VendorHandler) RequestPayout(c *gin.Context) {
	var input entities.RequestPayoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	vendorID, _ := middleware.GetUserID(c)
	payout, err := h.earningUsecase.RequestPayout(c.Request.Context(), vendorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, payout)
}

// ListPayouts lists the caller's payout requests
// GET /api/v1/vendor/payouts
func (h *VendorHandler) ListPayouts(c *gin.Context) {
	vendorID, _ := middleware.GetUserID(c)
	payouts, err := h.earningUsecase.ListVendorPayouts(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payouts)
}

// SalesReport returns the caller's sales dashboard
// GET /api/v1/vendor/reports
func (h *VendorHandler) SalesReport(c *gin.Context) {
	vendorID, _ := middleware.GetUserID(c)
	report, err := h.reportUsecase.SalesReport(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}
