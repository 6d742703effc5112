package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/repository"
)

func newAuthService(users *fakeUserRepo) *authService {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Admin.Username = "admin"
	return NewAuthService(users, cfg).(*authService)
}

func register(t *testing.T, svc AuthService, username, password string) *dto.UserResponseDTO {
	t.Helper()
	u, err := svc.Register(context.Background(), dto.RegisterDTO{
		Username: username, Email: username + "@example.com",
		Password: password, ConfirmPassword: password,
	})
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", username, err)
	}
	return u
}

func TestRegisterHashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	u := register(t, svc, "alice", "s3cret!")
	if u.ID == 0 || u.Username != "alice" || u.Email != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", u)
	}
	stored, _ := users.FindByUsername(context.Background(), "alice")
	if stored.Password == "s3cret!" || !strings.HasPrefix(stored.Password, "$2") {
		t.Fatalf("password not stored as bcrypt hash: %q", stored.Password)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Username: "bob", Email: "bob@example.com", Password: "one111", ConfirmPassword: "two222",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("err = %v, want ErrPasswordMismatch", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	register(t, svc, "carol", "first1")

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Username: "carol", Email: "other@example.com", Password: "second", ConfirmPassword: "second",
	})
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}
	if _, err := svc.Verify(context.Background(), "carol", "first1"); err != nil {
		t.Fatalf("original credentials stopped working: %v", err)
	}
}

func TestVerify(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	register(t, svc, "dave", "correct-horse")
	register(t, svc, "admin", "admin123")
	ctx := context.Background()

	id, err := svc.Verify(ctx, "dave", "correct-horse")
	if err != nil || id.Username != "dave" || id.IsAdmin {
		t.Fatalf("Verify = %+v, %v", id, err)
	}
	if _, err := svc.Verify(ctx, "dave", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := svc.Verify(ctx, "nobody", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v", err)
	}
	admin, err := svc.Verify(ctx, "admin", "admin123")
	if err != nil || !admin.IsAdmin {
		t.Fatalf("admin Verify = %+v, %v", admin, err)
	}
}

func TestVerifyPropagatesStoreErrors(t *testing.T) {
	users := newFakeUserRepo()
	users.err = errDiskFull
	svc := newAuthService(users)
	if _, err := svc.Verify(context.Background(), "x", "y"); !errors.Is(err, errDiskFull) {
		t.Fatalf("err = %v, want store error", err)
	}
}

func TestLoginTokenRoundTrip(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	u := register(t, svc, "erin", "pa55word")

	tok, err := svc.Login(context.Background(), dto.LoginDTO{Username: "erin", Password: "pa55word"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tok.TokenType != "Bearer" || tok.Token == "" || tok.User.UserID != u.ID {
		t.Fatalf("unexpected token response: %+v", tok)
	}

	id, err := svc.ParseToken(tok.Token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if id.UserID != u.ID || id.Username != "erin" || id.IsAdmin {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestParseTokenRejectsTamperedAndExpired(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	register(t, svc, "frank", "pa55word")
	tok, _ := svc.Login(context.Background(), dto.LoginDTO{Username: "frank", Password: "pa55word"})

	other := newAuthService(newFakeUserRepo())
	other.secret = []byte("another-secret")
	if _, err := other.ParseToken(tok.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign secret err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.ParseToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage err = %v, want ErrInvalidToken", err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := svc.ParseToken(tok.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired err = %v, want ErrInvalidToken", err)
	}
}
