package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/model"
	"github.com/lshigami/apquiz/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterDTO) (*dto.UserResponseDTO, error)
	// Verify checks a username and password against the stored hash. Unknown
	// users and wrong passwords are indistinguishable to the caller.
	Verify(ctx context.Context, username, password string) (*dto.UserIdentity, error)
	Login(ctx context.Context, req dto.LoginDTO) (*dto.TokenResponseDTO, error)
	ParseToken(token string) (*dto.UserIdentity, error)
}

type tokenClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type authService struct {
	users         repository.UserRepository
	secret        []byte
	tokenTTL      time.Duration
	adminUsername string
	now           func() time.Time
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{
		users:         users,
		secret:        []byte(cfg.Auth.JWTSecret),
		tokenTTL:      ttl,
		adminUsername: cfg.Admin.Username,
		now:           time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterDTO) (*dto.UserResponseDTO, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{Username: req.Username, Email: req.Email, Password: string(hash)}
	if err := s.users.Create(ctx, &user); err != nil {
		if !errors.Is(err, repository.ErrDuplicateUsername) {
			log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		}
		return nil, err
	}
	log.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("User registered")

	var resp dto.UserResponseDTO
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) Verify(ctx context.Context, username, password string) (*dto.UserIdentity, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &dto.UserIdentity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.Username == s.adminUsername,
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginDTO) (*dto.TokenResponseDTO, error) {
	identity, err := s.Verify(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	claims := tokenClaims{
		UserID:   identity.UserID,
		Username: identity.Username,
		IsAdmin:  identity.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Info().Uint("userID", identity.UserID).Bool("admin", identity.IsAdmin).Msg("User logged in")
	return &dto.TokenResponseDTO{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      *identity,
	}, nil
}

func (s *authService) ParseToken(token string) (*dto.UserIdentity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &dto.UserIdentity{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
