package learning

import (
	"context"
	"sync"
	"time"

	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/core/parse"
	"recipe-ingest/internal/infrastructure/config"
	"recipe-ingest/internal/infrastructure/storage"
	"recipe-ingest/internal/pkg/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const trainingKey = "learning:examples"

// TrainingExample 一筆使用者修正。Append-only：只新增或整筆刪除，從不編輯。
type TrainingExample struct {
	ID           string                 `json:"id"`
	OriginalText string                 `json:"original_text"`
	Manual       parse.ParsedIngredient `json:"manual_parsing"`
	Timestamp    time.Time              `json:"timestamp"`
}

// ScoredExample 帶相似度分數的範例
type ScoredExample struct {
	Example    *TrainingExample `json:"example"`
	Similarity float64          `json:"similarity"`
}

// Store 修正學習儲存。讀多寫少：查詢走記憶體，寫入序列化後持久化。
type Store struct {
	mu    sync.RWMutex
	store storage.Store
	cat   *catalog.Catalog

	examples []TrainingExample

	reuseThreshold   float64
	similarThreshold float64
	maxExamples      int
}

// NewStore 創建修正學習儲存並載入既有訓練資料。
// 載入失敗只記警告、從空資料開始——學習層是純粹的優化，不能擋住解析。
func NewStore(ctx context.Context, st storage.Store, cat *catalog.Catalog, cfg *config.LearningConfig) *Store {
	s := &Store{
		store:            st,
		cat:              cat,
		reuseThreshold:   cfg.ReuseThreshold,
		similarThreshold: cfg.SimilarThreshold,
		maxExamples:      cfg.MaxExamples,
	}

	data, err := st.Get(ctx, trainingKey)
	if err != nil {
		if err != storage.ErrNotFound {
			common.LogWarn("載入訓練資料失敗，從空資料開始", zap.Error(err))
		}
		return s
	}

	if err := common.ParseJSON(data, &s.examples); err != nil {
		common.LogWarn("訓練資料格式損毀，從空資料開始", zap.Error(err))
		s.examples = nil
		return s
	}

	common.LogInfo("訓練資料已載入", zap.Int("數量", len(s.examples)))
	return s
}

// Record 記錄一筆使用者修正並持久化。超過上限時丟棄最舊的範例。
func (s *Store) Record(ctx context.Context, originalText string, corrected parse.ParsedIngredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.examples = append(s.examples, TrainingExample{
		ID:           uuid.New().String(),
		OriginalText: originalText,
		Manual:       corrected,
		Timestamp:    time.Now(),
	})
	if len(s.examples) > s.maxExamples {
		s.examples = s.examples[len(s.examples)-s.maxExamples:]
	}

	return s.persist(ctx)
}

// Delete 整筆刪除指定範例
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.examples[:0]
	for _, ex := range s.examples {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	s.examples = kept

	return s.persist(ctx)
}

// FindBestMatch 找相似度最高且達到直接重用門檻的範例，沒有就回傳 nil
func (s *Store) FindBestMatch(text string) (*TrainingExample, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *TrainingExample
	bestSim := 0.0
	for i := range s.examples {
		sim := Similarity(text, s.examples[i].OriginalText)
		if sim > bestSim {
			best = &s.examples[i]
			bestSim = sim
		}
	}

	if best == nil || bestSim < s.reuseThreshold {
		return nil, bestSim
	}
	return best, bestSim
}

// SimilarExamples 列出達到較寬鬆門檻的相似範例（供轉換套用，不是逐字重用）
func (s *Store) SimilarExamples(text string, limit int) []ScoredExample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var scored []ScoredExample
	for i := range s.examples {
		sim := Similarity(text, s.examples[i].OriginalText)
		if sim >= s.similarThreshold {
			scored = append(scored, ScoredExample{Example: &s.examples[i], Similarity: sim})
		}
	}

	// 依相似度遞減，取前 limit 筆
	for i := 0; i < len(scored); i++ {
		for j := i + 1; j < len(scored); j++ {
			if scored[j].Similarity > scored[i].Similarity {
				scored[i], scored[j] = scored[j], scored[i]
			}
		}
	}
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Lookup 實作解析器的修正學習短路：夠相似就改編重用，否則讓解析器照常跑
func (s *Store) Lookup(text string) (*parse.ParsedIngredient, bool) {
	ex, sim := s.FindBestMatch(text)
	if ex == nil {
		common.LogLearningMiss()
		return nil, false
	}

	adapted := s.Adapt(text, ex)
	if adapted == nil {
		// 改編失敗靜默退回全新解析
		common.LogLearningMiss()
		return nil, false
	}

	common.LogLearningHit(sim)
	return adapted, true
}

// Count 目前的範例數
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.examples)
}

// persist 序列化全部範例寫回儲存。呼叫方須持有寫鎖。
func (s *Store) persist(ctx context.Context) error {
	data, err := common.ToJSON(s.examples)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, trainingKey, data)
}
