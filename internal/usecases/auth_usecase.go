package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/domain/repositories"
	"github.com/abeer2626/sami-shops/pkg/crypto"
	"github.com/abeer2626/sami-shops/pkg/jwt"
	"github.com/abeer2626/sami-shops/pkg/logger"
	"github.com/abeer2626/sami-shops/pkg/utils"
	"go.uber.org/zap"
)

// AuthUsecase handles registration, login and account administration
type AuthUsecase struct {
	userRepo        repositories.UserRepository
	jwtService      *jwt.JWTService
	superAdminEmail string
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, superAdminEmail string) *AuthUsecase {
	return &AuthUsecase{
		userRepo:        userRepo,
		jwtService:      jwtService,
		superAdminEmail: superAdminEmail,
	}
}

// Register creates a new account. Admin accounts are provisioned, not
// self-registered: a requested admin role is coerced to customer unless
// the email is the configured super admin.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domainerrors.BadRequest("email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	role := entities.UserRole(input.Role)
	if role == "" {
		role = entities.UserRoleCustomer
	}
	if !role.Valid() {
		return nil, domainerrors.BadRequest("invalid role")
	}
	if role == entities.UserRoleAdmin && !u.isSuperAdmin(email) {
		role = entities.UserRoleCustomer
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return user, nil
}

// Login verifies credentials and issues a token pair
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, *jwt.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.Unauthorized("incorrect email or password")
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.Unauthorized("incorrect email or password")
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// GetMe returns the current user
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// ListUsers lists accounts with an optional search filter (admin)
func (u *AuthUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// UpdateUserRole changes an account's role (admin). The super-admin
// account cannot be demoted.
func (u *AuthUsecase) UpdateUserRole(ctx context.Context, userID uuid.UUID, role entities.UserRole) (*entities.User, error) {
	if !role.Valid() {
		return nil, domainerrors.BadRequest("invalid role")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.isSuperAdmin(user.Email) && role != entities.UserRoleAdmin {
		return nil, domainerrors.Forbidden("super admin role cannot be changed")
	}

	user.Role = role
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser changes an account's name or email (admin). The
// super-admin account cannot be renamed or given a new email.
func (u *AuthUsecase) UpdateUser(ctx context.Context, userID uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.isSuperAdmin(user.Email) {
		return nil, domainerrors.Forbidden("super admin account cannot be modified")
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
				return nil, domainerrors.BadRequest("email already registered")
			} else if !errors.Is(err, domainerrors.ErrNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.Name != nil {
		user.Name = *input.Name
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account (admin). The super-admin account cannot
// be deleted.
func (u *AuthUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.isSuperAdmin(user.Email) {
		return domainerrors.Forbidden("super admin account cannot be deleted")
	}

	return u.userRepo.SoftDelete(ctx, userID)
}

func (u *AuthUsecase) isSuperAdmin(email string) bool {
	return strings.EqualFold(email, u.superAdminEmail)
}
