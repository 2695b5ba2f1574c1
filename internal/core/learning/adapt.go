package learning

import (
	"strings"

	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/core/parse"
	"recipe-ingest/internal/pkg/common"

	"go.uber.org/zap"
)

// Adapt 把舊修正套到新文字上：數量永遠從新文字重新取，
// 食材、單位、處理方式則只在新文字仍提到時沿用。
// 任何 panic 都攔下來回傳 nil，讓呼叫端退回全新解析。
func (s *Store) Adapt(newText string, ex *TrainingExample) (result *parse.ParsedIngredient) {
	defer func() {
		if r := recover(); r != nil {
			common.LogWarn("套用訓練範例時發生例外，退回全新解析", zap.Any("panic", r))
			result = nil
		}
	}()

	normalized := parse.NormalizeLine(newText)
	lower := strings.ToLower(normalized)

	// 數量：一律從新文字重新抽取，舊範例的數量不可信
	quantity, _ := parse.ExtractQuantity(normalized)

	// 單位：新文字裡還出現才沿用
	var unit *catalog.Unit
	if ex.Manual.Unit != nil && unitMentioned(lower, ex.Manual.Unit) {
		unit = ex.Manual.Unit
	}

	// 食材：名稱和新文字有詞重疊就沿用，否則用排除法從新文字湊名稱
	ingredient := ex.Manual.Ingredient
	if ingredient == nil || !nameOverlaps(lower, ingredient) {
		ingredient = s.ingredientByExclusion(normalized)
		if ingredient == nil {
			return nil
		}
	}

	// 處理方式：同樣要求新文字仍提到
	var preparation *catalog.PreparationMethod
	if ex.Manual.Preparation != nil && containsToken(lower, strings.ToLower(ex.Manual.Preparation.Name)) {
		preparation = ex.Manual.Preparation
	}

	divided := strings.Contains(lower, "divided") || strings.Contains(lower, "split")

	return &parse.ParsedIngredient{
		Quantity:     quantity,
		Unit:         unit,
		Ingredient:   ingredient,
		Preparation:  preparation,
		OriginalText: newText,
		IsStructured: true,
		IsDivided:    divided,
	}
}

// ingredientByExclusion 排除數量、單位、處理方式詞後，剩下的詞當食材名
func (s *Store) ingredientByExclusion(normalized string) *catalog.CatalogIngredient {
	var kept []string
	for _, tok := range strings.Fields(normalized) {
		if isQuantityToken(tok) {
			continue
		}
		if s.cat.LookupUnit(tok) != nil {
			continue
		}
		if s.cat.LookupPreparation(strings.Trim(tok, ",")) != nil {
			continue
		}
		if strings.EqualFold(tok, "of") {
			continue
		}
		kept = append(kept, strings.Trim(tok, ","))
	}

	name := strings.TrimSpace(strings.Join(kept, " "))
	if name == "" {
		return nil
	}

	// 排除後的名稱先對目錄比對，比不到才退成 custom
	if ing, score := s.cat.BestMatch(name); score > 0 {
		return ing
	}
	return &catalog.CatalogIngredient{
		ID:     "custom",
		Name:   name,
		Plural: name,
		Custom: true,
	}
}

func isQuantityToken(tok string) bool {
	for _, r := range tok {
		if (r < '0' || r > '9') && r != '.' && r != '/' && r != '-' {
			return false
		}
	}
	return len(tok) > 0
}

// unitMentioned 新文字是否提到這個單位（名稱、複數或別名）
func unitMentioned(lower string, u *catalog.Unit) bool {
	names := append([]string{u.Name, u.Plural}, u.Aliases...)
	for _, n := range names {
		if n != "" && containsToken(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// nameOverlaps 食材名稱（含複數與搜尋詞）和新文字是否有詞重疊
func nameOverlaps(lower string, ing *catalog.CatalogIngredient) bool {
	var words []string
	words = append(words, strings.Fields(strings.ToLower(ing.Name))...)
	words = append(words, strings.Fields(strings.ToLower(ing.Plural))...)
	for _, term := range ing.SearchTerms {
		words = append(words, strings.Fields(strings.ToLower(term))...)
	}
	for _, w := range words {
		if len(w) > 1 && containsToken(lower, w) {
			return true
		}
	}
	return false
}

func containsToken(haystack, needle string) bool {
	padded := " " + strings.NewReplacer(",", " ", "(", " ", ")", " ").Replace(haystack) + " "
	return strings.Contains(padded, " "+needle+" ")
}
