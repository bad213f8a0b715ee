package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RostislavK636/B2B-marketplace/pkg/auth"
	"github.com/RostislavK636/B2B-marketplace/pkg/config"
	redisclient "github.com/RostislavK636/B2B-marketplace/pkg/redis"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

// ErrNoSession signals a missing, expired, or tampered session.
var ErrNoSession = errors.New("no active session")

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(sessionID string) string
}

// Record is the JSON payload stored in Redis for each active session.
type Record struct {
	SellerID  int64     `json:"seller_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager handles cookie session creation, resolution, and revocation.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	cfg   config.SessionConfig
	ttl   time.Duration
}

// Resolver exposes the read-only surface needed by middleware.
type Resolver interface {
	Resolve(ctx context.Context, sessionID string) (*auth.SessionTokenClaims, error)
}

// NewManager constructs a session manager backed by Redis.
func NewManager(client *redisclient.Client, cfg config.SessionConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.TTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if cfg.CookieName == "" {
		return nil, fmt.Errorf("session cookie name is required")
	}

	return &Manager{
		store: client,
		keyer: client,
		cfg:   cfg,
		ttl:   ttl,
	}, nil
}

// Create mints a session token for the seller and stores the record in Redis.
// It returns the opaque session identifier handed to the client via cookie.
func (m *Manager) Create(ctx context.Context, sellerID int64, email string) (string, error) {
	if sellerID <= 0 {
		return "", fmt.Errorf("seller id is required")
	}

	sessionID := uuid.NewString()
	token, err := auth.MintSessionToken(m.cfg, time.Now().UTC(), auth.SessionTokenPayload{
		SellerID: sellerID,
		Email:    email,
		JTI:      sessionID,
	})
	if err != nil {
		return "", err
	}

	record := Record{
		SellerID:  sellerID,
		Email:     email,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encoding session record: %w", err)
	}

	if err := m.store.Set(ctx, m.keyer.SessionKey(sessionID), string(payload), m.ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Resolve loads the session record and validates the embedded token.
// A stale or tampered record is revoked and reported as ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (*auth.SessionTokenClaims, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrNoSession
	}

	key := m.keyer.SessionKey(sessionID)
	raw, err := m.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		_ = m.store.Del(ctx, key)
		return nil, ErrNoSession
	}

	claims, err := auth.ParseSessionToken(m.cfg, record.Token)
	if err != nil {
		_ = m.store.Del(ctx, key)
		return nil, ErrNoSession
	}
	return claims, nil
}

// Revoke deletes the session record tied to the identifier.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return m.store.Del(ctx, m.keyer.SessionKey(sessionID))
}

// Cookie builds the HTTP-only session cookie handed to the client.
func (m *Manager) Cookie(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    sessionID,
		Path:     m.cfg.CookiePath,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedCookie builds an expired cookie that removes the session on the client.
func (m *Manager) ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     m.cfg.CookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CookieName returns the configured session cookie name.
func (m *Manager) CookieName() string {
	return m.cfg.CookieName
}
