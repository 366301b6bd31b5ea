package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/car-rental-service/internal/auth"
	"github.com/spec-kit/car-rental-service/internal/config"
	"github.com/spec-kit/car-rental-service/internal/domain"
	"github.com/spec-kit/car-rental-service/internal/events"
	"github.com/spec-kit/car-rental-service/internal/repository"
	apperrors "github.com/spec-kit/car-rental-service/pkg/util/errorutil"
)

// AuthService coordinates signup and login.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg *config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SignupInput is the signup payload. All five fields are required.
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

// Signup creates a new account. Duplicate email is a Conflict whether caught
// by the pre-check or by the store's unique index.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) error {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" || input.Role == "" {
		return apperrors.NewValidationError("All fields are required")
	}
	role := domain.Role(input.Role)
	if !role.Valid() {
		return apperrors.NewValidationError("role must be one of customer, rider, admin")
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return apperrors.NewConflict("Email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return apperrors.NewConflict("Email already exists")
		}
		return apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		},
	})
	return nil
}

// LoginResult carries the session token and the redacted user view.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Login authenticates by (email, role) and password. A wrong role, an unknown
// email and a bad password all produce the identical failure so callers
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*LoginResult, error) {
	user, err := s.users.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
