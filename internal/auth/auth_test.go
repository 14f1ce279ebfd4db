package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
	"github.com/zkortam/tritontory-sub002/pkg/config"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return store.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = fmt.Sprintf("uid-%d", len(f.byID)+1)
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserStore) Get(ctx context.Context, id string) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Issuer:    "tritontory",
	}
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := NewService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	user, token, err := svc.SignUp(ctx, "editor@ucsd.edu", "correct-horse", "Editor")
	if err != nil {
		t.Fatalf("SignUp() error: %v", err)
	}
	if token == "" {
		t.Fatal("SignUp() returned empty token")
	}
	if user.Role != models.RoleViewer {
		t.Errorf("new user role = %s, want viewer", user.Role)
	}

	signedIn, _, err := svc.SignIn(ctx, "editor@ucsd.edu", "correct-horse")
	if err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}
	if signedIn.ID != user.ID {
		t.Errorf("SignIn() returned user %s, want %s", signedIn.ID, user.ID)
	}
}

func TestSignUpRejectsDuplicates(t *testing.T) {
	svc := NewService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "dup@ucsd.edu", "password123", ""); err != nil {
		t.Fatalf("first SignUp() error: %v", err)
	}
	_, _, err := svc.SignUp(ctx, "dup@ucsd.edu", "password123", "")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate SignUp() error = %v, want ErrUserExists", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := NewService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "not-an-email", "password123", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("bad email error = %v, want ErrInvalidEmail", err)
	}
	if _, _, err := svc.SignUp(ctx, "ok@ucsd.edu", "short", ""); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak password error = %v, want ErrWeakPassword", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc := NewService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "user@ucsd.edu", "password123", ""); err != nil {
		t.Fatalf("SignUp() error: %v", err)
	}
	_, _, err := svc.SignIn(ctx, "user@ucsd.edu", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignInThrottleAfterRepeatedFailures(t *testing.T) {
	svc := NewService(newFakeUserStore(), testAuthConfig())
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "target@ucsd.edu", "password123", ""); err != nil {
		t.Fatalf("SignUp() error: %v", err)
	}

	for i := 0; i < maxFailedAttempts; i++ {
		if _, _, err := svc.SignIn(ctx, "target@ucsd.edu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d error = %v, want ErrInvalidCredentials", i, err)
		}
	}

	// Even the right password is rejected while throttled.
	_, _, err := svc.SignIn(ctx, "target@ucsd.edu", "password123")
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("throttled SignIn() error = %v, want ErrTooManyAttempts", err)
	}
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	users := newFakeUserStore()
	svc := NewService(users, testAuthConfig())
	ctx := context.Background()

	user, token, err := svc.SignUp(ctx, "admin@ucsd.edu", "password123", "Admin")
	if err != nil {
		t.Fatalf("SignUp() error: %v", err)
	}

	verified, err := svc.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("VerifyToken() error: %v", err)
	}
	if verified.ID != user.ID {
		t.Errorf("VerifyToken() user = %s, want %s", verified.ID, user.ID)
	}

	// Role changes apply without re-issuing the token.
	users.byID[user.ID].Role = models.RoleAdmin
	verified, err = svc.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("VerifyToken() after role change error: %v", err)
	}
	if !IsAdmin(verified.Role) {
		t.Error("VerifyToken() should reflect the stored admin role")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewService(newFakeUserStore(), testAuthConfig())

	_, err := svc.VerifyToken(context.Background(), "not.a.token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenRejectsForeignKey(t *testing.T) {
	// A token minted under a different (here: empty) signing key must not
	// verify, even when its claims carry the admin role.
	forgedCfg := testAuthConfig()
	forgedCfg.JWTSecret = ""
	forged, err := NewTokenIssuer(forgedCfg).Issue(&models.User{ID: "attacker", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	issuer := NewTokenIssuer(testAuthConfig())
	if _, err := issuer.Verify(forged); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign-key token error = %v, want ErrInvalidToken", err)
	}
}

func TestUserMessageMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrong password", err: ErrInvalidCredentials, want: "Incorrect email or password."},
		{name: "too many attempts", err: ErrTooManyAttempts, want: "Too many attempts. Please try again later."},
		{name: "wrapped variant", err: fmt.Errorf("signin: %w", ErrUserExists), want: "An account with this email already exists."},
		{name: "unknown code", err: errors.New("upstream exploded"), want: genericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
