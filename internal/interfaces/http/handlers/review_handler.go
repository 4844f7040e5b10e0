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

type reviewService interface {
	CreateReview(ctx context.Context, userID, productID uuid.UUID, input *entities.CreateReviewInput) (*entities.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error)
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *entities.UpdateReviewInput) (*entities.Review, error)
	DeleteReview(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, reviewID uuid.UUID) error
}

// ReviewHandler handles product review endpoints
type ReviewHandler struct {
	reviewUsecase reviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUsecase reviewService) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// CreateReview posts a review for a product
// POST /api/v1/products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var input entities.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	review, err := h.reviewUsecase.CreateReview(c.Request.Context(), userID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, review)
}

// ListReviews lists a product's reviews
// GET /api/v1/products/:id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	reviews, err := h.reviewUsecase.ListProductReviews(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

// UpdateReview edits the caller's review
// PATCH /api/v1/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var input entities.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	review, err := h.reviewUsecase.UpdateReview(c.Request.Context(), userID, reviewID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, review)
}

// DeleteReview removes the caller's review
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid review id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	if err := h.reviewUsecase.DeleteReview(c.Request.Context(), userID, role, reviewID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "review deleted"})
}
