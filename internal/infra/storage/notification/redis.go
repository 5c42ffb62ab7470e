package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

const keyPrefix = "hotelsite:notifications:"

// RedisInbox очередь flash-уведомлений в redis (список на сессию)
type RedisInbox struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisInbox создает очередь уведомлений поверх redis
func NewRedisInbox(client redis.Cmdable, ttl time.Duration) *RedisInbox {
	return &RedisInbox{client: client, ttl: ttl}
}

// Notify добавляет уведомление в конец очереди сессии
func (i *RedisInbox) Notify(ctx context.Context, sessionID string, n domain.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: Notify - session=%s: %v", ErrMarshal, sessionID, err)
	}

	k := key(sessionID)
	_, err = i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, k, data)
		pipe.LTrim(ctx, k, -maxPending, -1)
		if i.ttl > 0 {
			pipe.Expire(ctx, k, i.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Notify - session=%s: %v", ErrStore, sessionID, err)
	}
	return nil
}

// Drain атомарно читает и удаляет очередь сессии
func (i *RedisInbox) Drain(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	k := key(sessionID)

	var items *redis.StringSliceCmd
	_, err := i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, k, 0, -1)
		pipe.Del(ctx, k)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Drain - session=%s: %v", ErrStore, sessionID, err)
	}

	raw := items.Val()
	if len(raw) == 0 {
		return nil, nil
	}

	result := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("%w: Drain - session=%s: %v", ErrUnmarshal, sessionID, err)
		}
		result = append(result, n)
	}
	return result, nil
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}
