package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/car-rental-service/internal/config"
	"github.com/spec-kit/car-rental-service/internal/domain"
	"github.com/spec-kit/car-rental-service/internal/events"
	apperrors "github.com/spec-kit/car-rental-service/pkg/util/errorutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 120,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{
		UserRepo:   users,
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	return svc, users
}

func validSignup() SignupInput {
	return SignupInput{
		Name:     "A",
		Email:    "a@x.com",
		Phone:    "1",
		Password: "p",
		Role:     "customer",
	}
}

func TestSignupSucceedsOnce(t *testing.T) {
	svc, users := newTestAuthService()
	ctx := context.Background()

	if err := svc.Signup(ctx, validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	user, err := users.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.PasswordHash == "p" || user.PasswordHash == "" {
		t.Fatal("password must be stored as a hash")
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("role = %q, want customer", user.Role)
	}

	err = svc.Signup(ctx, validSignup())
	if err == nil {
		t.Fatal("second signup with same email must fail")
	}
	if code := apperrors.ToDomainError(err).Code; code != "CONFLICT" {
		t.Fatalf("second signup error code = %q, want CONFLICT", code)
	}
}

func TestSignupRequiresAllFields(t *testing.T) {
	svc, users := newTestAuthService()
	ctx := context.Background()

	cases := map[string]SignupInput{
		"name":     {Email: "a@x.com", Phone: "1", Password: "p", Role: "customer"},
		"email":    {Name: "A", Phone: "1", Password: "p", Role: "customer"},
		"phone":    {Name: "A", Email: "a@x.com", Password: "p", Role: "customer"},
		"password": {Name: "A", Email: "a@x.com", Phone: "1", Role: "customer"},
		"role":     {Name: "A", Email: "a@x.com", Phone: "1", Password: "p"},
	}
	for missing, input := range cases {
		err := svc.Signup(ctx, input)
		if err == nil {
			t.Fatalf("signup without %s must fail", missing)
		}
		if code := apperrors.ToDomainError(err).Code; code != "VALIDATION_FAILED" {
			t.Fatalf("signup without %s: code = %q, want VALIDATION_FAILED", missing, code)
		}
	}
	if _, err := users.GetByEmail(ctx, "a@x.com"); err == nil {
		t.Fatal("no user should be persisted from invalid signups")
	}
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestAuthService()

	input := validSignup()
	input.Role = "superuser"
	err := svc.Signup(context.Background(), input)
	if err == nil {
		t.Fatal("unknown role must be rejected")
	}
	if code := apperrors.ToDomainError(err).Code; code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", code)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.Signup(ctx, validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(ctx, "a@x.com", "p", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := svc.TokenManager().ParseToken(result.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Role != domain.RoleCustomer || claims.Name != "A" {
		t.Fatalf("claims = %+v, want identity fields embedded", claims)
	}
	if claims.UserID == "" {
		t.Fatal("claims must embed the user id")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.Signup(ctx, validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, "a@x.com", "nope", domain.RoleCustomer)
	_, wrongRole := svc.Login(ctx, "a@x.com", "p", domain.RoleAdmin)
	_, unknownEmail := svc.Login(ctx, "b@x.com", "p", domain.RoleCustomer)

	for name, err := range map[string]error{
		"wrong password": wrongPassword,
		"wrong role":     wrongRole,
		"unknown email":  unknownEmail,
	} {
		if err == nil {
			t.Fatalf("%s: login must fail", name)
		}
	}

	if wrongPassword.Error() != wrongRole.Error() || wrongRole.Error() != unknownEmail.Error() {
		t.Fatalf("login failures leak the failing factor: %q / %q / %q",
			wrongPassword, wrongRole, unknownEmail)
	}
}
