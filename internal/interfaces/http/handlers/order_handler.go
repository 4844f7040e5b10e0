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

type orderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error)
	GetOrder(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, orderID uuid.UUID) (*entities.Order, error)
	ListStatusHistory(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, orderID uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error)
}

// OrderHandler handles customer order endpoints
type OrderHandler struct {
	orderUsecase orderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase orderService) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateOrder places an order for the authenticated customer
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(input.Items) == 0 {
		response.ErrorWithStatus(c, http.StatusBadRequest, "order must contain at least one item")
		return
	}

	userID, _ := middleware.GetUserID(c)
	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// ListMyOrders lists the caller's orders
// GET /api/v1/orders
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	orders, err := h.orderUsecase.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order the caller may see
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), userID, role, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// ListStatusHistory returns an order's status trail
// GET /api/v1/orders/:id/history
func (h *OrderHandler) ListStatusHistory(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	history, err := h.orderUsecase.ListStatusHistory(c.Request.Context(), userID, role, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, history)
}

// UpdateStatus applies a status transition as a vendor or admin
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var input entities.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	order, err := h.orderUsecase.UpdateStatus(c.Request.Context(), userID, role, orderID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}
