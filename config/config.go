package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Redis        Redis
	Auth         Auth
	Admin        Admin
	Quiz         Quiz
	Log          Log
	GeminiApiKey string
	GeminiModel  string
}

type Server struct {
	Port    string
	GinMode string
}

// Database.URL is the only knob for the store location: a SQLite file path,
// or a postgres:// / mysql:// URL.
type Database struct {
	URL string
}

type Redis struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Admin struct {
	Username string
	Password string
	Email    string
}

type Quiz struct {
	MaxQuestions int
}

type Log struct {
	Level  string
	Pretty bool
}

const insecureDevSecret = "apquiz-dev-secret-change-me"

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment only")
	}

	config := fromViper(v)
	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Falling back to an insecure development secret.")
		config.Auth.JWTSecret = insecureDevSecret
	}

	log.Info().Interface("config", config.Redacted()).Msg("Config loaded")
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DATABASE_URL", "quiz.db")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("ADMIN_EMAIL", "admin@apquiz.com")
	v.SetDefault("QUIZ_MAX_QUESTIONS", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", true)
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Database.URL = strings.TrimSpace(v.GetString("DATABASE_URL"))

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")
	config.Redis.SessionTTL = v.GetDuration("SESSION_TTL")

	config.Auth.JWTSecret = v.GetString("JWT_SECRET")
	config.Auth.TokenTTL = v.GetDuration("JWT_TTL")

	config.Admin.Username = v.GetString("ADMIN_USERNAME")
	config.Admin.Password = v.GetString("ADMIN_PASSWORD")
	config.Admin.Email = v.GetString("ADMIN_EMAIL")

	config.Quiz.MaxQuestions = v.GetInt("QUIZ_MAX_QUESTIONS")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")

	config.GeminiApiKey = v.GetString("GEMINI_API_KEY")
	config.GeminiModel = v.GetString("GEMINI_MODEL")
	return &config
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "****"
	}
	c.Redis.Password = mask(c.Redis.Password)
	c.Auth.JWTSecret = mask(c.Auth.JWTSecret)
	c.Admin.Password = mask(c.Admin.Password)
	c.GeminiApiKey = mask(c.GeminiApiKey)
	if i := strings.Index(c.Database.URL, "@"); i >= 0 && strings.Contains(c.Database.URL, "://") {
		c.Database.URL = c.Database.URL[:strings.Index(c.Database.URL, "://")+3] + "****" + c.Database.URL[i:]
	}
	return c
}
