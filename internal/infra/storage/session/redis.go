package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

const keyPrefix = "hotelsite:flow:"

// RedisRepository хранит состояние мастера бронирования в redis в виде JSON
// Позволяет запускать несколько инстансов сервиса за балансировщиком
type RedisRepository struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisRepository создает репозиторий поверх redis клиента
func NewRedisRepository(client RedisClient, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

// Get возвращает состояние сессии
func (r *RedisRepository) Get(ctx context.Context, sessionID string) (*domain.FlowState, error) {
	data, err := r.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - session=%s: %v", ErrStore, sessionID, err)
	}

	var state domain.FlowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: Get - session=%s: %v", ErrUnmarshal, sessionID, err)
	}
	if state.Extras == nil {
		state.Extras = domain.NewExtrasSelection()
	}
	return &state, nil
}

// Save сохраняет состояние сессии с TTL
func (r *RedisRepository) Save(ctx context.Context, sessionID string, state domain.FlowState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: Save - session=%s: %v", ErrMarshal, sessionID, err)
	}

	if err := r.client.Set(ctx, key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - session=%s: %v", ErrStore, sessionID, err)
	}
	return nil
}

// Delete удаляет состояние сессии
func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - session=%s: %v", ErrStore, sessionID, err)
	}
	return nil
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}
