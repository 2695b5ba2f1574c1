package parse

import (
	"strings"
	"time"

	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/pkg/common"
)

var (
	// 尾端的 divided / split 標記（可帶前導逗號）
	reDivided = mustCompile(`(?i)\s*,?\s*\b(divided|split)\b\s*$`)

	// 括號內的尺寸註記，例如 "(5 ounce)"
	reParenthetical = mustCompile(`\(([^)]*)\)`)

	// 單位後的贅詞："2 cups of flour"
	reLeadingOf = mustCompile(`(?i)^of\s+`)
)

// Parser 食材文字解析器。分層解析：正規化 → 修正學習查詢 → 逗號切分 →
// 數量 → 單位 → 食材 → 處理方式。每層都是純函數，失敗只會降級不會報錯。
type Parser struct {
	cat         *catalog.Catalog
	corrections CorrectionSource // 可為 nil
}

// NewParser 創建解析器
func NewParser(cat *catalog.Catalog, corrections CorrectionSource) *Parser {
	return &Parser{
		cat:         cat,
		corrections: corrections,
	}
}

// Parse 解析一行食材文字。永不失敗：最壞情況回傳自由文字的 custom 食材。
func (p *Parser) Parse(line string) *ParsedIngredient {
	start := time.Now()
	result := p.parse(line)
	common.LogParse(result.IsStructured, time.Since(start))
	return result
}

func (p *Parser) parse(line string) *ParsedIngredient {
	original := line
	normalized := NormalizeLine(line)

	// 空輸入是唯一 IsStructured=false 的情況
	if normalized == "" {
		return &ParsedIngredient{
			Ingredient:   &catalog.CatalogIngredient{ID: "custom", Name: original, Custom: true},
			OriginalText: original,
			IsStructured: false,
		}
	}

	// 修正學習短路：有夠相似的舊修正就直接改編重用
	if p.corrections != nil {
		if adapted, ok := p.corrections.Lookup(normalized); ok && adapted != nil {
			adapted.OriginalText = original
			return adapted
		}
	}

	working := normalized

	// divided / split 標記
	divided := false
	if reDivided.MatchString(working) {
		divided = true
		working = strings.TrimSpace(reDivided.ReplaceAllString(working, ""))
	}

	// 括號尺寸註記獨立抽出，不讓它干擾數量解析
	sizeInfo := ""
	if m := reParenthetical.FindStringSubmatch(working); m != nil {
		sizeInfo = strings.TrimSpace(m[1])
		working = strings.TrimSpace(reParenthetical.ReplaceAllString(working, " "))
		working = NormalizeLine(working)
	}

	// 逗號切分：第一段帶數量+單位+食材，後面是候選的處理方式子句
	var parts []string
	for _, part := range strings.Split(working, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		parts = []string{working}
	}

	// 數量
	quantity, rest := ExtractQuantity(parts[0])

	// 單位只在數量之後匹配
	var unit *catalog.Unit
	if quantity != nil {
		unit, rest = p.matchUnit(rest)
		rest = strings.TrimSpace(reLeadingOf.ReplaceAllString(rest, ""))
	}

	// 食材：第一段剩餘文字，加上不是已知處理方式的其餘逗號段
	nameCandidate := strings.TrimSpace(rest)
	candidates := []string{nameCandidate}
	for _, part := range parts[1:] {
		if p.cat.LookupPreparation(part) != nil {
			continue
		}
		candidates = append(candidates, part)
	}

	ingredient, claimedIdx := p.resolveIngredient(candidates, parts)

	// 處理方式：沒被認領的逗號段 + 尺寸註記
	var prepParts []string
	for i, part := range parts[1:] {
		if i+1 == claimedIdx {
			continue
		}
		prepParts = append(prepParts, part)
	}
	preparation := p.resolvePreparation(ingredient, prepParts, sizeInfo)

	return &ParsedIngredient{
		Quantity:     quantity,
		Unit:         unit,
		Ingredient:   ingredient,
		Preparation:  preparation,
		OriginalText: original,
		IsStructured: ingredient != nil,
		IsDivided:    divided,
		SizeInfo:     sizeInfo,
	}
}

// matchUnit 在數量之後匹配單位，先試兩個詞（"fluid ounces"）再試一個詞
func (p *Parser) matchUnit(rest string) (*catalog.Unit, string) {
	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return nil, rest
	}

	if len(tokens) >= 2 {
		if u := p.cat.LookupUnit(tokens[0] + " " + tokens[1]); u != nil {
			return u, strings.Join(tokens[2:], " ")
		}
	}
	if u := p.cat.LookupUnit(tokens[0]); u != nil {
		return u, strings.Join(tokens[1:], " ")
	}
	return nil, rest
}

// resolveIngredient 在候選片段中找最佳目錄食材。全部落空時合成 custom 食材，
// 取最長的片段當名稱——食材名通常是訊息量最大的片段。
// 回傳值第二項是被認領為食材來源的逗號段索引（-1 表示來自第一段）。
func (p *Parser) resolveIngredient(candidates []string, parts []string) (*catalog.CatalogIngredient, int) {
	var best *catalog.CatalogIngredient
	bestScore := 0
	bestIdx := -1

	for i, candidate := range candidates {
		if candidate == "" {
			continue
		}
		ing, score := p.cat.BestMatch(candidate)
		// 嚴格大於：分數平手時保留較早的候選
		if score > bestScore {
			best = ing
			bestScore = score
			if i > 0 {
				bestIdx = p.partIndex(parts, candidates[i])
			} else {
				bestIdx = -1
			}
		}
	}

	if best != nil {
		return best, bestIdx
	}

	// 沒有任何目錄命中：最長片段當 custom 食材
	longest := ""
	for _, candidate := range candidates {
		if len(candidate) > len(longest) {
			longest = candidate
		}
	}
	if longest == "" {
		return nil, -1
	}
	return &catalog.CatalogIngredient{
		ID:     "custom",
		Name:   longest,
		Plural: longest,
		Custom: true,
	}, -1
}

func (p *Parser) partIndex(parts []string, candidate string) int {
	for i, part := range parts {
		if part == candidate {
			return i
		}
	}
	return -1
}

// resolvePreparation 從沒被認領的子句解析處理方式
func (p *Parser) resolvePreparation(ing *catalog.CatalogIngredient, prepParts []string, sizeInfo string) *catalog.PreparationMethod {
	clauseParts := append([]string{}, prepParts...)
	if sizeInfo != "" {
		clauseParts = append(clauseParts, sizeInfo)
	}
	clause := strings.TrimSpace(strings.Join(clauseParts, ", "))
	if clause == "" {
		return nil
	}

	// 先對食材的常見處理方式找，較能消歧義
	if ing != nil {
		for _, prepID := range ing.CommonPreparations {
			prep := p.cat.LookupPreparation(prepID)
			if prep == nil {
				prep = p.lookupPrepByID(prepID)
			}
			if prep != nil && containsWordFold(clause, prep.Name) {
				return prep
			}
		}
	}

	// 再對全部已知處理方式逐段找
	for _, part := range prepParts {
		if prep := p.cat.LookupPreparation(part); prep != nil {
			return prep
		}
	}

	// 落空：自訂處理方式，含動作動詞詞幹才算需要步驟
	return &catalog.PreparationMethod{
		ID:           "custom",
		Name:         clause,
		RequiresStep: catalog.ContainsActionVerb(clause),
	}
}

// lookupPrepByID 以 id 查處理方式（CommonPreparations 存的是 id）
func (p *Parser) lookupPrepByID(id string) *catalog.PreparationMethod {
	return p.cat.LookupPreparation(strings.ReplaceAll(id, "-", " "))
}

func containsWordFold(haystack, needle string) bool {
	haystack = " " + strings.ToLower(haystack) + " "
	needle = strings.ToLower(needle)
	return strings.Contains(haystack, " "+needle+" ") ||
		strings.Contains(haystack, " "+needle+",")
}
