package pipeline

import (
	"context"
	"strings"
	"time"

	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/core/learning"
	"recipe-ingest/internal/core/parse"
	"recipe-ingest/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜攝取管線。每次攝取在獨立的工作集上進行，
// 共用的只有唯讀為主的目錄與序列化寫入的學習儲存。
type Service struct {
	cat         *catalog.Catalog
	parser      *parse.Parser
	learning    *learning.Store
	crossref    *CrossReferencer
	distributor *Distributor
}

// NewService 創建攝取管線服務
func NewService(cat *catalog.Catalog, parser *parse.Parser, store *learning.Store) *Service {
	crossref := NewCrossReferencer(cat)
	return &Service{
		cat:         cat,
		parser:      parser,
		learning:    store,
		crossref:    crossref,
		distributor: NewDistributor(crossref),
	}
}

// IngestRecipe 管線唯一入口：自由文字 → 結構化食譜。
// 資料流：食材逐行解析 → 步驟切分 → 前置步驟合成 → 交叉引用 → 均分配發。
func (s *Service) IngestRecipe(ctx context.Context, title, stepsText, ingredientsText string, servings int) (*Recipe, error) {
	if strings.TrimSpace(stepsText) == "" && strings.TrimSpace(ingredientsText) == "" {
		return nil, common.ErrEmptyRecipeText
	}

	start := time.Now()

	ingredients := s.parseIngredientLines(ingredientsText)

	cooking := make([]*Step, 0)
	for _, content := range SegmentSteps(stepsText) {
		timing, _ := ExtractTiming(content)
		cooking = append(cooking, &Step{
			ID:      common.GenerateUUID(),
			Content: content,
			Timing:  timing,
		})
	}

	// 前置步驟排在烹飪步驟之前，首次提及以這個最終順序為準
	steps := append(SynthesizePrepSteps(ingredients), cooking...)
	totalTime := 0
	for i, step := range steps {
		step.Order = i
		if step.Timing != "" {
			_, minutes := ExtractTiming(step.Timing)
			totalTime += minutes
		}
	}

	recipe := &Recipe{
		ID:              common.GenerateUUID(),
		Title:           strings.TrimSpace(title),
		OriginalContent: stepsText,
		Servings:        servings,
		TotalTime:       totalTime,
		CreatedAt:       time.Now(),
		Steps:           steps,
		Ingredients:     ingredients,
	}

	s.crossref.Link(recipe)
	s.distributor.Distribute(recipe)

	common.LogInfo("食譜攝取完成",
		zap.String("recipe_id", recipe.ID),
		zap.Int("食材數", len(ingredients)),
		zap.Int("步驟數", len(steps)),
		zap.Duration("耗時", time.Since(start)))

	return recipe, nil
}

// parseIngredientLines 逐行解析食材文字，空行略過
func (s *Service) parseIngredientLines(ingredientsText string) []*RecipeIngredient {
	var out []*RecipeIngredient
	for _, line := range strings.Split(ingredientsText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		structured := s.parser.Parse(line)
		display := structured.FullSpec()
		if display == "" {
			display = line
		}

		out = append(out, &RecipeIngredient{
			ID:           common.GenerateUUID(),
			OriginalText: line,
			Structured:   structured,
			DisplayText:  display,
		})
	}
	return out
}

// ReparseIngredient 單一食材編輯：整個結構化結果換掉重建，ID 保持穩定
func (s *Service) ReparseIngredient(newText string, existing *RecipeIngredient) *RecipeIngredient {
	structured := s.parser.Parse(newText)
	display := structured.FullSpec()
	if display == "" {
		display = newText
	}
	return &RecipeIngredient{
		ID:           existing.ID,
		OriginalText: newText,
		Structured:   structured,
		DisplayText:  display,
	}
}

// RecordCorrection 餵一筆使用者修正給學習儲存
func (s *Service) RecordCorrection(ctx context.Context, originalText string, corrected parse.ParsedIngredient) error {
	return s.learning.Record(ctx, originalText, corrected)
}

// SimilarCorrections 列出與文字相似的既有修正
func (s *Service) SimilarCorrections(text string, limit int) []learning.ScoredExample {
	return s.learning.SimilarExamples(text, limit)
}

// RelinkAll 食材清單或步驟結構變動後整份重建：
// 交叉引用從原始快照重跑，均分接著重套。
func (s *Service) RelinkAll(recipe *Recipe) {
	s.crossref.Link(recipe)
	s.distributor.Distribute(recipe)
}

// RemoveIngredient 刪除食材並串聯清理步驟引用。
// 步驟裡的提及降級成純文字（ingredientId 清空）而不是移除，內容保持通順。
func (s *Service) RemoveIngredient(recipe *Recipe, ingredientID string) bool {
	found := false
	kept := recipe.Ingredients[:0]
	for _, ing := range recipe.Ingredients {
		if ing.ID == ingredientID {
			found = true
			continue
		}
		kept = append(kept, ing)
	}
	recipe.Ingredients = kept
	if !found {
		return false
	}

	delete(recipe.IngredientTracker, ingredientID)
	for _, step := range recipe.Steps {
		for i := range step.Ingredients {
			if step.Ingredients[i].IngredientID == ingredientID {
				step.Ingredients[i].IngredientID = ""
				step.Ingredients[i].IsFirstMention = false
				step.Ingredients[i].FirstMentionStepID = ""
			}
		}
	}
	return true
}

// Catalog 暴露目錄給 API 層的搜尋端點
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}
