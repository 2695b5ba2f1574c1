package pipeline

import (
	"time"

	"recipe-ingest/internal/core/parse"
)

// IngredientMention 步驟內的一次食材提及。
// 不變量：同一個 ingredientId 在整份步驟序列裡恰好有一個 IsFirstMention=true，
// 且必定落在步驟順序最早的那次提及。
type IngredientMention struct {
	IngredientID       string `json:"ingredient_id,omitempty"`
	Text               string `json:"text"`
	FullText           string `json:"full_text"`
	IsFirstMention     bool   `json:"is_first_mention"`
	FirstMentionStepID string `json:"first_mention_step_id,omitempty"`
}

// IsResolved 提及是否已解析到食材清單上的條目。
// 食材被刪除後提及會降級為未解析的純文字，IngredientID 清空。
func (m *IngredientMention) IsResolved() bool {
	return m.IngredientID != ""
}

// Step 一個食譜步驟。Content 會被交叉引用與均分改寫，
// 原始文字保存在 Recipe.OriginalStepContent，不放這裡。
type Step struct {
	ID          string              `json:"id"`
	Order       int                 `json:"order"`
	Content     string              `json:"content"`
	Timing      string              `json:"timing,omitempty"`
	Ingredients []IngredientMention `json:"ingredients,omitempty"`
	IsPrep      bool                `json:"is_prep"`
}

// RecipeIngredient 食材清單項目。ID 在食譜生命週期內穩定不變；
// 使用者編輯時 Structured 整個換掉重建，刪除時串聯移除所有步驟引用。
type RecipeIngredient struct {
	ID           string                  `json:"id"`
	OriginalText string                  `json:"original_text"`
	Structured   *parse.ParsedIngredient `json:"structured,omitempty"`
	DisplayText  string                  `json:"display_text"`
}

// TrackerEntry 食材首次提及的追蹤資訊
type TrackerEntry struct {
	FirstMentionStepID string   `json:"first_mention_step_id"`
	StepOrder          int      `json:"step_order"`
	Amount             *float64 `json:"amount,omitempty"`
	Unit               string   `json:"unit,omitempty"`
}

// Recipe 攝取管線的輸出。
// OriginalStepContent 保存每個步驟改寫前的原始文字：
// 重跑交叉引用一律從這份快照出發，避免改寫結果層層疊加。
type Recipe struct {
	ID                  string                   `json:"id"`
	Title               string                   `json:"title"`
	OriginalContent     string                   `json:"original_content"`
	Servings            int                      `json:"servings,omitempty"`
	TotalTime           int                      `json:"total_time,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	Steps               []*Step                  `json:"steps"`
	Ingredients         []*RecipeIngredient      `json:"ingredients"`
	IngredientTracker   map[string]*TrackerEntry `json:"ingredient_tracker"`
	OriginalStepContent map[string]string        `json:"original_step_content"`
}

// StepByID 以 id 找步驟
func (r *Recipe) StepByID(id string) *Step {
	for _, step := range r.Steps {
		if step.ID == id {
			return step
		}
	}
	return nil
}

// IngredientByID 以 id 找食材清單項目
func (r *Recipe) IngredientByID(id string) *RecipeIngredient {
	for _, ing := range r.Ingredients {
		if ing.ID == id {
			return ing
		}
	}
	return nil
}
