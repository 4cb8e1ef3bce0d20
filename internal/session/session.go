// Package session issues and resolves login sessions.
//
// A session is a server-side record (session id -> user id) in a Store. The
// client holds a signed JWT whose jti names the record and whose subject names
// the user; both the signature and the record must check out for the token to
// resolve.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNotFound signals a missing or expired session record.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidToken signals a malformed, forged or expired token.
	ErrInvalidToken = errors.New("invalid session token")
)

// Store keeps session records.
type Store interface {
	Save(ctx context.Context, id string, userID int64, ttl time.Duration) error
	Load(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// Manager signs session tokens and tracks their records in a Store.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewManager constructs a Manager.
func NewManager(store Store, secret string, ttl time.Duration, issuer string) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// TTL returns the lifetime of issued sessions.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for userID and returns its signed token.
func (m *Manager) Issue(ctx context.Context, userID int64) (string, error) {
	id := uuid.NewString()
	if err := m.store.Save(ctx, id, userID, m.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		_ = m.store.Delete(ctx, id)
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id bound to a token.
func (m *Manager) Resolve(ctx context.Context, token string) (int64, error) {
	claims, err := m.parse(token)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	stored, err := m.store.Load(ctx, claims.ID)
	if err != nil {
		return 0, err
	}
	if stored != userID {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// Revoke deletes the session record behind a token. Unparseable tokens are ignored.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(token string) (*jwt.RegisteredClaims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
