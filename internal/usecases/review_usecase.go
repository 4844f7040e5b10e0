package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/domain/repositories"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

// ReviewUsecase handles product reviews and keeps the product's
// aggregate rating in sync
type ReviewUsecase struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	uow         repositories.UnitOfWork
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	reviewRepo repositories.ReviewRepository,
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	uow repositories.UnitOfWork,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		uow:         uow,
	}
}

// CreateReview posts a review for a product. One review per user per
// product; the verified flag records whether the user has ever bought
// the product.
func (u *ReviewUsecase) CreateReview(ctx context.Context, userID, productID uuid.UUID, input *entities.CreateReviewInput) (*entities.Review, error) {
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	existing, err := u.reviewRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.NewAppError(400, "you have already reviewed this product", domainerrors.ErrDuplicateReview)
	}

	verified, err := u.orderRepo.UserHasPurchased(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entities.Review{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		ProductID: productID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Verified:  verified,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reviewRepo.Create(txCtx, review); err != nil {
			return err
		}
		return u.recomputeRating(txCtx, productID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListProductReviews lists a product's reviews, newest first
func (u *ReviewUsecase) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error) {
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.reviewRepo.ListByProduct(ctx, productID)
}

// UpdateReview edits the caller's own review
func (u *ReviewUsecase) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *entities.UpdateReviewInput) (*entities.Review, error) {
	review, err := u.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	// A foreign review is invisible to the caller.
	if review.UserID != userID {
		return nil, domainerrors.NotFound("review not found")
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, domainerrors.BadRequest("rating must be between 1 and 5")
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	review.UpdatedAt = time.Now()

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reviewRepo.Update(txCtx, review); err != nil {
			return err
		}
		return u.recomputeRating(txCtx, review.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. The author or an admin may delete it.
func (u *ReviewUsecase) DeleteReview(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, reviewID uuid.UUID) error {
	review, err := u.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != actorID && actorRole != entities.UserRoleAdmin {
		return domainerrors.NotFound("review not found")
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reviewRepo.Delete(txCtx, reviewID); err != nil {
			return err
		}
		return u.recomputeRating(txCtx, review.ProductID)
	})
}

// recomputeRating rereads every review of the product and stores the
// fresh mean and count, so the aggregates survive edits and deletes
// without drift
func (u *ReviewUsecase) recomputeRating(ctx context.Context, productID uuid.UUID) error {
	reviews, err := u.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	var average float64
	if len(reviews) > 0 {
		total := 0
		for _, review := range reviews {
			total += review.Rating
		}
		average = float64(total) / float64(len(reviews))
	}
	return u.productRepo.UpdateRatingStats(ctx, productID, average, len(reviews))
}
