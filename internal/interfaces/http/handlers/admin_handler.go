package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/response"
)

type adminUserService interface {
	ListUsers(ctx context.Context, search string) ([]*entities.User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role entities.UserRole) (*entities.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type adminEarningService interface {
	ListAllPayouts(ctx context.Context) ([]*entities.VendorPayout, error)
	UpdatePayoutStatus(ctx context.Context, payoutID uuid.UUID, input *entities.UpdatePayoutStatusInput) (*entities.VendorPayout, error)
	CreateCommission(ctx context.Context, input *entities.CreateCommissionInput) (*entities.Commission, error)
	ListCommissions(ctx context.Context) ([]*entities.Commission, error)
	SetDefaultCommission(ctx context.Context, id uuid.UUID) (*entities.Commission, error)
	DeleteCommission(ctx context.Context, id uuid.UUID) error
}

// AdminHandler handles platform administration: users, commission
// rates and payout decisions
type AdminHandler struct {
	authUsecase    adminUserService
	earningUsecase adminEarningService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authUsecase adminUserService, earningUsecase adminEarningService) *AdminHandler {
	return &AdminHandler{authUsecase: authUsecase, earningUsecase: earningUsecase}
}

// ListUsers lists users with an optional search filter
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// UpdateUserRole changes a user's role
// PUT /api/v1/admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var input entities.UpdateUserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	role := entities.UserRole(input.Role)
	if !role.Valid() {
		response.Error(c, domainerrors.BadRequest("unknown role"))
		return
	}

	user, err := h.authUsecase.UpdateUserRole(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateUser changes a user's name or email
// PUT /api/v1/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.Name == nil && input.Email == nil {
		response.Error(c, domainerrors.BadRequest("nothing to update"))
		return
	}

	user, err := h.authUsecase.UpdateUser(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeleteUser removes a user account
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.authUsecase.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted"})
}

// ListPayouts lists every payout request
// GET /api/v1/admin/payouts
func (h *AdminHandler) ListPayouts(c *gin.Context) {
	payouts, err := h.earningUsecase.ListAllPayouts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payouts)
}

// UpdatePayoutStatus applies a payout decision
// PUT /api/v1/admin/payouts/:id/status
func (h *AdminHandler) UpdatePayoutStatus(c *gin.Context) {
	payoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid payout id")
		return
	}

	var input entities.UpdatePayoutStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	payout, err := h.earningUsecase.UpdatePayoutStatus(c.Request.Context(), payoutID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payout)
}

// CreateCommission creates a commission rate
// POST /api/v1/admin/commissions
func (h *AdminHandler) CreateCommission(c *gin.Context) {
	var input entities.CreateCommissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	commission, err := h.earningUsecase.CreateCommission(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, commission)
}

// ListCommissions lists all commission rates
// GET /api/v1/admin/commissions
func (h *AdminHandler) ListCommissions(c *gin.Context) {
	commissions, err := h.earningUsecase.ListCommissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, commissions)
}

// SetDefaultCommission makes a commission rate the default
// PUT /api/v1/admin/commissions/:id/default
func (h *AdminHandler) SetDefaultCommission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid commission id")
		return
	}

	commission, err := h.earningUsecase.SetDefaultCommission(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, commission)
}

// DeleteCommission removes a non-default commission rate
// DELETE /api/v1/admin/commissions/:id
func (h *AdminHandler) DeleteCommission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid commission id")
		return
	}

	if err := h.earningUsecase.DeleteCommission(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "commission deleted"})
}
