package storage

import (
	"context"
	"errors"
)

// ErrNotFound 表示鍵不存在
var ErrNotFound = errors.New("storage: key not found")

// Store 鍵值儲存能力。訓練資料與自訂食材的持久化都透過這個介面，
// 核心管線不關心底層是 Redis 還是記憶體。
type Store interface {
	// Get 讀取鍵值，鍵不存在時回傳 ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set 寫入鍵值
	Set(ctx context.Context, key string, value string) error
}
