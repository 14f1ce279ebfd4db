package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
)

const minPasswordLen = 8

// Sign-in throttle: after this many consecutive failures for one email,
// further attempts are rejected until the window passes.
const (
	maxFailedAttempts = 5
	attemptWindow     = 15 * time.Minute
)

// UserStore is the slice of the user collection the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service implements sign-up/sign-in and token verification over the user
// collection. Role enforcement on admin routes is a convenience gate; the
// document store's own rules remain the real security boundary.
type Service struct {
	users  UserStore
	tokens *TokenIssuer
	logger *zap.Logger

	mu       sync.Mutex
	attempts map[string]attemptRecord
}

type attemptRecord struct {
	count int
	since time.Time
}

// NewService creates a new auth service
func NewService(users UserStore, cfg *config.AuthConfig) *Service {
	return &Service{
		users:    users,
		tokens:   NewTokenIssuer(cfg),
		logger:   logging.GetLogger().With(zap.String("component", "auth")),
		attempts: make(map[string]attemptRecord),
	}
}

// SignUp registers a new account and returns the user with a signed token.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*models.User, string, error) {
	normEmail, err := normalizeEmail(email)
	if err != nil {
		return nil, "", ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        normEmail,
		DisplayName:  displayName,
		Role:         models.RoleViewer,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", ErrUserExists
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("User registered", zap.String("uid", user.ID))
	return user, token, nil
}

// SignIn authenticates an account and returns the user with a signed token.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	normEmail, err := normalizeEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if s.throttled(normEmail) {
		return nil, "", ErrTooManyAttempts
	}

	user, err := s.users.GetByEmail(ctx, normEmail)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		s.recordFailure(normEmail)
		return nil, "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(normEmail)
		return nil, "", ErrInvalidCredentials
	}

	s.clearFailures(normEmail)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// VerifyToken validates a token and loads the current user record, so role
// changes take effect without re-issuing tokens.
func (s *Service) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// IsAdmin reports whether the role grants admin access.
func IsAdmin(role models.Role) bool {
	return role == models.RoleAdmin
}

func (s *Service) throttled(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.attempts[email]
	if !ok {
		return false
	}
	if time.Since(rec.since) > attemptWindow {
		delete(s.attempts, email)
		return false
	}
	return rec.count >= maxFailedAttempts
}

func (s *Service) recordFailure(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.attempts[email]
	if rec.count == 0 || time.Since(rec.since) > attemptWindow {
		rec = attemptRecord{since: time.Now()}
	}
	rec.count++
	s.attempts[email] = rec
}

func (s *Service) clearFailures(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, email)
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", err
	}
	return strings.ToLower(addr.Address), nil
}
