package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createReviewTable(t, db)
	repo := NewReviewRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	review := &entities.Review{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Rating:    5,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := uow.Do(ctx, func(txCtx context.Context) error {
		return repo.Create(txCtx, review)
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, review.ID)
	require.NoError(t, err)
	require.Equal(t, 5, got.Rating)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createReviewTable(t, db)
	repo := NewReviewRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	review := &entities.Review{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Rating:    5,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, review); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetByID(ctx, review.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
