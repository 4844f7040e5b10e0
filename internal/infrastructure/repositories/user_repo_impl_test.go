package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
)

func TestUserRepository_CRUDAndFinders(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	user := &entities.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "hash",
		Role:         entities.UserRoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", byID.Email)
	require.Equal(t, entities.UserRoleCustomer, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	user.Name = "Alice B"
	user.Role = entities.UserRoleVendor
	require.NoError(t, repo.Update(ctx, user))

	updated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice B", updated.Name)
	require.Equal(t, entities.UserRoleVendor, updated.Role)

	require.NoError(t, repo.SoftDelete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_ListSearch(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, u := range []struct {
		email string
		name  string
	}{
		{"bob@example.com", "Bob"},
		{"carol@shop.io", "Carol"},
		{"dave@example.com", "Dave"},
	} {
		require.NoError(t, repo.Create(ctx, &entities.User{
			ID: uuid.New(), Email: u.email, Name: u.name,
			PasswordHash: "x", Role: entities.UserRoleCustomer,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}))
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	matched, err := repo.List(ctx, "shop.io")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "Carol", matched[0].Name)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.User{ID: uuid.New(), Name: "x", Role: entities.UserRoleCustomer})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.SoftDelete(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestStoreRepository_OnePerVendor(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()
	store := &entities.Store{
		ID:          uuid.New(),
		Name:        "Alice's Shop",
		Description: null.StringFrom("handmade goods"),
		VendorID:    vendorID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, store))

	byVendor, err := repo.GetByVendorID(ctx, vendorID)
	require.NoError(t, err)
	require.Equal(t, store.ID, byVendor.ID)
	require.Equal(t, "handmade goods", byVendor.Description.String)

	byID, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice's Shop", byID.Name)

	_, err = repo.GetByVendorID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
