package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/response"
)

type flashSaleService interface {
	ListActiveFlashSales(ctx context.Context) ([]*entities.FlashSale, error)
	CreateFlashSale(ctx context.Context, input *entities.CreateFlashSaleInput) (*entities.FlashSale, error)
	ListFlashSales(ctx context.Context) ([]*entities.FlashSale, error)
	GetFlashSale(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error)
	UpdateFlashSale(ctx context.Context, id uuid.UUID, input *entities.UpdateFlashSaleInput) (*entities.FlashSale, error)
	DeleteFlashSale(ctx context.Context, id uuid.UUID) error
}

// FlashSaleHandler handles flash sale endpoints
type FlashSaleHandler struct {
	flashSaleUsecase flashSaleService
}

// NewFlashSaleHandler creates a new flash sale handler
func NewFlashSaleHandler(flashSaleUsecase flashSaleService) *FlashSaleHandler {
	return &FlashSaleHandler{flashSaleUsecase: flashSaleUsecase}
}

// ListActive lists currently running sales
// GET /api/v1/flash-sales/active
func (h *FlashSaleHandler) ListActive(c *gin.Context) {
	sales, err := h.flashSaleUsecase.ListActiveFlashSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sales)
}

// CreateFlashSale creates a sale with its product entries
// POST /api/v1/admin/flash-sales
func (h *FlashSaleHandler) CreateFlashSale(c *gin.Context) {
	var input entities.CreateFlashSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	sale, err := h.flashSaleUsecase.CreateFlashSale(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sale)
}

// ListFlashSales lists every sale
// GET /api/v1/admin/flash-sales
func (h *FlashSaleHandler) ListFlashSales(c *gin.Context) {
	sales, err := h.flashSaleUsecase.ListFlashSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sales)
}

// GetFlashSale returns one sale
// GET /api/v1/admin/flash-sales/:id
func (h *FlashSaleHandler) GetFlashSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid flash sale id")
		return
	}

	sale, err := h.flashSaleUsecase.GetFlashSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sale)
}

// UpdateFlashSale applies a partial update to a sale
// PATCH /api/v1/admin/flash-sales/:id
func (h *FlashSaleHandler) UpdateFlashSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid flash sale id")
		return
	}

	var input entities.UpdateFlashSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	sale, err := h.flashSaleUsecase.UpdateFlashSale(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sale)
}

// DeleteFlashSale removes a sale
// DELETE /api/v1/admin/flash-sales/:id
func (h *FlashSaleHandler) DeleteFlashSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid flash sale id")
		return
	}

	if err := h.flashSaleUsecase.DeleteFlashSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "flash sale deleted"})
}
