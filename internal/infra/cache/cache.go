package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrUnavailable возвращается, когда Redis недоступен
	ErrUnavailable = errors.New("cache: redis unavailable")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ReferenceCache кеш справочных данных (филиалы, каталог услуг) в Redis.
// Значения хранятся как JSON с единым TTL; промах кеша не является ошибкой.
type ReferenceCache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New подключается к Redis и проверяет соединение
func New(addr, password string, db int, ttl time.Duration, log Logger) (*ReferenceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &ReferenceCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}, nil
}

// GetJSON читает значение по ключу и декодирует его в dst.
// Возвращает false без ошибки при промахе кеша; ошибки Redis логируются и
// тоже превращаются в промах, чтобы кеш никогда не ронял запрос.
func (c *ReferenceCache) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache: failed to get key %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		c.log.Warn("cache: corrupted value for key %s: %v", key, err)
		return false
	}

	return true
}

// SetJSON сохраняет значение по ключу с настроенным TTL.
// Ошибки записи логируются, но не пробрасываются: кеш вспомогательный.
func (c *ReferenceCache) SetJSON(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache: failed to marshal value for key %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache: failed to set key %s: %v", key, err)
	}
}

// Close закрывает соединение с Redis
func (c *ReferenceCache) Close() error {
	return c.client.Close()
}
