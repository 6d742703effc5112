package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lshigami/apquiz/internal/quiz"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "quiz:session:"

// RedisStore keeps sessions as JSON strings with a TTL, one key per user.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID uint) string {
	return sessionKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (r *RedisStore) Put(ctx context.Context, s *quiz.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.UserID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store quiz session: %w", err)
	}
	return nil
}

func (r *RedisStore) PutIfAbsent(ctx context.Context, s *quiz.Session) (bool, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return false, fmt.Errorf("failed to marshal quiz session: %w", err)
	}
	ok, err := r.client.SetNX(ctx, sessionKey(s.UserID), data, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to store quiz session: %w", err)
	}
	return ok, nil
}

func (r *RedisStore) Get(ctx context.Context, userID uint) (*quiz.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, quiz.ErrNoActiveSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz session: %w", err)
	}
	return decodeSession(data)
}

// Update uses WATCH/MULTI so a concurrent writer makes this call fail with
// ErrConcurrentUpdate instead of applying fn to a stale cursor.
func (r *RedisStore) Update(ctx context.Context, userID uint, fn func(*quiz.Session) error) error {
	key := sessionKey(userID)

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return quiz.ErrNoActiveSession
		}
		if err != nil {
			return fmt.Errorf("failed to load quiz session: %w", err)
		}

		s, err := decodeSession(data)
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}

		out, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal quiz session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrConcurrentUpdate
	}
	return err
}

func (r *RedisStore) Take(ctx context.Context, userID uint) (*quiz.Session, error) {
	data, err := r.client.GetDel(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, quiz.ErrNoActiveSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to take quiz session: %w", err)
	}
	return decodeSession(data)
}

func (r *RedisStore) Delete(ctx context.Context, userID uint) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete quiz session: %w", err)
	}
	return nil
}

func decodeSession(data []byte) (*quiz.Session, error) {
	var s quiz.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode quiz session: %w", err)
	}
	return &s, nil
}
