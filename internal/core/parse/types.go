package parse

import (
	"strings"

	"recipe-ingest/internal/core/catalog"
)

// ParsedIngredient 單行食材文字的結構化解析結果。
// 整個生命週期只在解析時建立一次，使用者編輯時整個換掉重建，不做部分修改。
type ParsedIngredient struct {
	Quantity     *float64                   `json:"quantity,omitempty"`
	Unit         *catalog.Unit              `json:"unit,omitempty"`
	Ingredient   *catalog.CatalogIngredient `json:"ingredient,omitempty"`
	Preparation  *catalog.PreparationMethod `json:"preparation,omitempty"`
	OriginalText string                     `json:"original_text"`
	IsStructured bool                       `json:"is_structured"`
	IsDivided    bool                       `json:"is_divided"`
	SizeInfo     string                     `json:"size_info,omitempty"`
}

// IngredientName 解析出的食材顯示名稱
func (p *ParsedIngredient) IngredientName() string {
	if p.Ingredient == nil {
		return ""
	}
	if p.Quantity != nil {
		return p.Ingredient.NameFor(*p.Quantity, p.Unit != nil)
	}
	return p.Ingredient.Name
}

// FullSpec 完整規格字串：數量 + 單位 + 名稱，缺的部分省略。
// 首次提及改寫與前置步驟合成都用這個格式。
func (p *ParsedIngredient) FullSpec() string {
	var parts []string
	if p.Quantity != nil {
		parts = append(parts, FormatQuantity(*p.Quantity))
		if p.Unit != nil {
			parts = append(parts, p.Unit.NameFor(*p.Quantity))
		}
	}
	if name := p.IngredientName(); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}

// CorrectionSource 修正學習層。Lookup 在相似度夠高時回傳改編後的解析結果，
// 讓解析器短路全部後續步驟；回傳 false 時解析器照常從頭解析。
type CorrectionSource interface {
	Lookup(text string) (*ParsedIngredient, bool)
}
