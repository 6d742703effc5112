package config

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.URL != "quiz.db" {
		t.Fatalf("Database.URL = %q, want quiz.db", cfg.Database.URL)
	}
	if cfg.Quiz.MaxQuestions != 10 {
		t.Fatalf("Quiz.MaxQuestions = %d, want 10", cfg.Quiz.MaxQuestions)
	}
	if cfg.Redis.SessionTTL != 2*time.Hour {
		t.Fatalf("Redis.SessionTTL = %v, want 2h", cfg.Redis.SessionTTL)
	}
	if cfg.Admin.Username != "admin" {
		t.Fatalf("Admin.Username = %q, want admin", cfg.Admin.Username)
	}
	if cfg.Auth.JWTSecret != insecureDevSecret {
		t.Fatalf("expected development secret fallback, got %q", cfg.Auth.JWTSecret)
	}
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://quiz:secret@db:5432/quiz")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("QUIZ_MAX_QUESTIONS", "5")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("Redis.Addr = %q", cfg.Redis.Addr)
	}
	if cfg.Redis.SessionTTL != 90*time.Minute {
		t.Fatalf("Redis.SessionTTL = %v, want 90m", cfg.Redis.SessionTTL)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("Auth.JWTSecret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Quiz.MaxQuestions != 5 {
		t.Fatalf("Quiz.MaxQuestions = %d, want 5", cfg.Quiz.MaxQuestions)
	}
}

func TestRedactedMasksSecrets(t *testing.T) {
	cfg := Config{
		Database:     Database{URL: "postgres://quiz:secret@db:5432/quiz"},
		Auth:         Auth{JWTSecret: "s3cret"},
		Admin:        Admin{Password: "admin123"},
		GeminiApiKey: "key",
	}

	red := cfg.Redacted()
	if red.Auth.JWTSecret != "****" || red.Admin.Password != "****" || red.GeminiApiKey != "****" {
		t.Fatalf("secrets not masked: %+v", red)
	}
	if red.Database.URL != "postgres://****@db:5432/quiz" {
		t.Fatalf("Database.URL = %q", red.Database.URL)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("Redacted must not modify the receiver")
	}
}
