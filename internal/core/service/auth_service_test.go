package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byEmail[clone.Email] = &clone
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	stored, ok := r.byID[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.byEmail, stored.Email)
	clone := *user
	r.byID[clone.ID] = &clone
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

type stubRevoker struct {
	tokenID string
	ttl     time.Duration
	calls   int
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.tokenID = tokenID
	r.ttl = ttl
	r.calls++
	return nil
}

const testSecret = "test-secret"

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_HashesPasswordAndForcesUserRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubRevoker{}, testSecret, time.Hour)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Role != domain.RoleUser {
		t.Errorf("registration must always yield role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.ID == "" {
		t.Error("expected an assigned ID")
	}
	if user.PasswordHash == "password123" {
		t.Error("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubRevoker{}, testSecret, time.Hour)

	input := ports.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func registerUser(t *testing.T, svc *AuthService, email, password string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("seed register: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubRevoker{}, testSecret, time.Hour)
	registered := registerUser(t, svc, "alice@example.com", "password123")

	token, user, err := svc.Login(context.Background(), "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %q, got %q", registered.ID, user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != registered.ID {
		t.Errorf("claim sub: want %q, got %v", registered.ID, claims["sub"])
	}
	if claims["email"] != "alice@example.com" {
		t.Errorf("claim email: want alice@example.com, got %v", claims["email"])
	}
	if claims["role"] != domain.RoleUser {
		t.Errorf("claim role: want %q, got %v", domain.RoleUser, claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Error("claim jti must be a non-empty token ID")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("claim exp missing: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Error("token must expire in the future")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubRevoker{}, testSecret, time.Hour)
	registerUser(t, svc, "alice@example.com", "password123")

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubRevoker{}, testSecret, time.Hour)

	// Unknown email must be indistinguishable from a wrong password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubRevoker{}, testSecret, time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "x"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Logout tests
// ---------------------------------------------------------------------------

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	revoker := &stubRevoker{}
	svc := NewAuthService(newStubUserRepo(), revoker, testSecret, time.Hour)

	expiresAt := time.Now().Add(30 * time.Minute)
	if err := svc.Logout(context.Background(), "jti-abc", expiresAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if revoker.calls != 1 {
		t.Fatalf("expected 1 revoke call, got %d", revoker.calls)
	}
	if revoker.tokenID != "jti-abc" {
		t.Errorf("expected token ID jti-abc, got %q", revoker.tokenID)
	}
	if revoker.ttl <= 0 || revoker.ttl > 30*time.Minute {
		t.Errorf("ttl must cover the remaining lifetime, got %v", revoker.ttl)
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	revoker := &stubRevoker{}
	svc := NewAuthService(newStubUserRepo(), revoker, testSecret, time.Hour)

	if err := svc.Logout(context.Background(), "jti-old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoker.calls != 0 {
		t.Errorf("expired token must not hit the denylist, got %d calls", revoker.calls)
	}
}
