package storage

import (
	"context"
	"fmt"

	"recipe-ingest/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// RedisStore Redis 鍵值儲存
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 創建 Redis 儲存並測試連接
func NewRedisStore(cfg *config.StorageConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連接
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		prefix: cfg.KeyPrefix,
	}, nil
}

// Get 讀取鍵值
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, s.namespaced(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return data, nil
}

// Set 寫入鍵值（無過期時間，訓練資料是 append-only 的）
func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.namespaced(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Ping 檢查連接，供就緒檢查使用
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// namespaced 加上鍵前綴
func (s *RedisStore) namespaced(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}
