package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RostislavK636/B2B-marketplace/internal/sellers"
	pkgauth "github.com/RostislavK636/B2B-marketplace/pkg/auth"
	"github.com/RostislavK636/B2B-marketplace/pkg/auth/session"
	"github.com/RostislavK636/B2B-marketplace/pkg/config"
	"github.com/RostislavK636/B2B-marketplace/pkg/db/models"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/security"
	"gorm.io/gorm"
)

// invalidCredentialsMessage is returned for every login failure mode so the
// response does not reveal whether the email is registered.
const invalidCredentialsMessage = "invalid email or password"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type sellerStore interface {
	Create(ctx context.Context, dto sellers.CreateSellerDTO) (*models.Seller, error)
	FindByEmail(ctx context.Context, email string) (*models.Seller, error)
}

type sessionManager interface {
	Create(ctx context.Context, sellerID int64, email string) (string, error)
	Resolve(ctx context.Context, sessionID string) (*pkgauth.SessionTokenClaims, error)
	Revoke(ctx context.Context, sessionID string) error
}

// Service exposes account lifecycle and session operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*sellers.SellerDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	SessionStatus(ctx context.Context, sessionID string) (SessionStatusDTO, error)
}

// ServiceParams bundles the service dependencies.
type ServiceParams struct {
	DB       txRunner
	Sellers  *sellers.Repository
	Sessions *session.Manager
	Password config.PasswordConfig
}

type service struct {
	dbClient  txRunner
	sellers   sellerStore
	sellersIn func(tx *gorm.DB) sellerStore
	sessions  sessionManager
	password  config.PasswordConfig
}

// NewService constructs the auth service.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("db client required")
	}
	if params.Sellers == nil {
		return nil, fmt.Errorf("sellers repository required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}

	repo := params.Sellers
	return &service{
		dbClient: params.DB,
		sellers:  repo,
		sellersIn: func(tx *gorm.DB) sellerStore {
			return repo.WithTx(tx)
		},
		sessions: params.Sessions,
		password: params.Password,
	}, nil
}

// Login verifies credentials and opens a cookie session for the seller.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	seller, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.sessions.Create(ctx, seller.ID, seller.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating session")
	}

	return &LoginResult{
		SessionID: sessionID,
		Seller:    sellers.FromModel(seller),
	}, nil
}

// Logout revokes the session record. A blank or unknown session is a no-op.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

// SessionStatus resolves the cookie session. A missing or expired session
// yields an unauthenticated status, not an error.
func (s *service) SessionStatus(ctx context.Context, sessionID string) (SessionStatusDTO, error) {
	claims, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return SessionStatusDTO{Authenticated: false}, nil
		}
		return SessionStatusDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving session")
	}

	sellerID := claims.SellerID
	email := claims.Email
	return SessionStatusDTO{
		Authenticated: true,
		SellerID:      &sellerID,
		SellerEmail:   &email,
	}, nil
}

// authenticate maps every credential failure onto the same unauthorized
// message.
func (s *service) authenticate(ctx context.Context, email, password string) (*models.Seller, error) {
	seller, err := s.sellers.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up seller")
	}

	ok, err := security.VerifyPassword(password, seller.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return seller, nil
}
