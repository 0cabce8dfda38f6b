package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/movieshelf/movieshelf/internal/auth"
	"github.com/movieshelf/movieshelf/internal/testutil"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	tokens, err := auth.NewTokenManager("service-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return NewAuthService(testutil.NewMemStore(), tokens)
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, RegisterInput{Login: "ana", Password: "Abc12345!"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.Token == "" {
		t.Error("registration should issue a token")
	}
	if result.User.Login != "ana" {
		t.Errorf("User.Login = %q, want %q", result.User.Login, "ana")
	}
	if result.User.ID == 0 {
		t.Error("user id should be assigned")
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{Login: "ana", Password: "Abc12345!"})
	if err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err = svc.Register(ctx, RegisterInput{Login: "ana", Password: "Other123!"})
	if !errors.Is(err, ErrLoginTaken) {
		t.Fatalf("second Register() error = %v, want ErrLoginTaken", err)
	}

	if first.Token == "" {
		t.Error("first registration token should remain valid")
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Login: "ana", Password: "Abc12345!"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	result, err := svc.Login(ctx, "ana", "Abc12345!")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token == "" {
		t.Error("login should issue a token")
	}
}

// Wrong password and unknown login must be indistinguishable.
func TestLoginFailuresDoNotLeakWhichCheckFailed(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Login: "ana", Password: "Abc12345!"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, wrongPassword := svc.Login(ctx, "ana", "not-the-password")
	_, unknownLogin := svc.Login(ctx, "nobody", "Abc12345!")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownLogin, ErrInvalidCredentials) {
		t.Errorf("unknown login error = %v, want ErrInvalidCredentials", unknownLogin)
	}
	if wrongPassword.Error() != unknownLogin.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPassword, unknownLogin)
	}
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	tokens, err := auth.NewTokenManager("service-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	svc := NewAuthService(testutil.NewMemStore(), tokens)

	result, err := svc.Register(context.Background(), RegisterInput{Login: "ana", Password: "Abc12345!"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Errorf("token UserID = %d, want %d", claims.UserID, result.User.ID)
	}
}
