// Package session keeps each user's in-progress quiz between requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/internal/quiz"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

const DefaultTTL = 2 * time.Hour

// ErrConcurrentUpdate is returned when another request changed the session
// between read and write. It wraps quiz.ErrSessionExhausted: the losing
// request was working from a stale cursor.
var ErrConcurrentUpdate = errors.Join(quiz.ErrSessionExhausted, errors.New("session changed concurrently"))

// Store holds at most one session per user. Every method returns
// quiz.ErrNoActiveSession when the user has none.
type Store interface {
	// Put replaces whatever session the user had.
	Put(ctx context.Context, s *quiz.Session) error
	// PutIfAbsent stores s only when the user has no session. It reports
	// whether s was written.
	PutIfAbsent(ctx context.Context, s *quiz.Session) (bool, error)
	Get(ctx context.Context, userID uint) (*quiz.Session, error)
	// Update applies fn to the stored session and saves the result, atomically
	// per user. If fn fails nothing is written and its error is returned.
	Update(ctx context.Context, userID uint, fn func(*quiz.Session) error) error
	// Take removes and returns the session in one step.
	Take(ctx context.Context, userID uint) (*quiz.Session, error)
	Delete(ctx context.Context, userID uint) error
}

// NewStore picks Redis when REDIS_ADDR is configured and the in-process map
// otherwise.
func NewStore(lc fx.Lifecycle, cfg *config.Config) (Store, error) {
	ttl := cfg.Redis.SessionTTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if cfg.Redis.Addr == "" {
		log.Info().Dur("ttl", ttl).Msg("Using in-memory quiz session store")
		return NewMemoryStore(ttl), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed")
				return err
			}
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Using Redis quiz session store")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return NewRedisStore(client, ttl), nil
}
