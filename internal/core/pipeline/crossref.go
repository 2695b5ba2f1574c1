package pipeline

import (
	"regexp"
	"sort"
	"strings"

	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/pkg/common"

	"go.uber.org/zap"
)

// CrossReferencer 掃描步驟內容，把提到的食材連結到清單身分，
// 首次提及改寫為完整規格、重複提及只留裸名稱，並建立追蹤表。
type CrossReferencer struct {
	cat *catalog.Catalog
	// 名稱前的寬鬆數量樣式：任意數字＋任意已知單位。
	// 用來避免往已經帶量的步驟（例如合成的前置步驟）重複插量。
	looseAmount *regexp.Regexp
}

// NewCrossReferencer 創建交叉引用器
func NewCrossReferencer(cat *catalog.Catalog) *CrossReferencer {
	alts := make([]string, 0, 64)
	for _, name := range cat.UnitNames() {
		alts = append(alts, regexp.QuoteMeta(name))
	}
	pattern := `(?i)(\d[\d\s./–-]*)\s*(?:(?:` + strings.Join(alts, "|") + `)\.?\s+)?(?:of\s+)?$`
	return &CrossReferencer{
		cat:         cat,
		looseAmount: regexp.MustCompile(pattern),
	}
}

// Link 對整份食譜做單趟交叉引用。一律從 OriginalStepContent 快照重新出發，
// 所以重複執行不會把數量疊加進內容（冪等）。追蹤表整份重建，不做增量修補。
func (c *CrossReferencer) Link(r *Recipe) {
	if r.OriginalStepContent == nil {
		r.OriginalStepContent = make(map[string]string)
	}
	for _, step := range r.Steps {
		if _, ok := r.OriginalStepContent[step.ID]; !ok {
			r.OriginalStepContent[step.ID] = step.Content
		}
	}

	r.IngredientTracker = make(map[string]*TrackerEntry)

	for _, step := range r.Steps {
		c.linkStep(r, step)
	}
}

// linkStep 處理單一步驟。任何 panic 只影響這一步：內容還原成原始快照、不帶提及。
func (c *CrossReferencer) linkStep(r *Recipe, step *Step) {
	original := r.OriginalStepContent[step.ID]
	content := original
	var mentions []IngredientMention

	defer func() {
		if rec := recover(); rec != nil {
			common.LogWarn("步驟交叉引用發生例外，保留原始內容",
				zap.String("step_id", step.ID), zap.Any("panic", rec))
			step.Content = original
			step.Ingredients = nil
			return
		}
		step.Content = content
		step.Ingredients = mentions
	}()

	for _, ri := range r.Ingredients {
		loc, matched := findMention(content, mentionNames(ri))
		if loc == nil {
			continue
		}

		full := fullDisplay(ri)
		entry, seen := r.IngredientTracker[ri.ID]

		if !seen {
			text := matched
			switch {
			case strings.Contains(strings.ToLower(content), strings.ToLower(full)):
				// 完整規格已逐字存在，改寫是 no-op
				text = full
			case c.amountPrecedes(content[:loc[0]]):
				// 名稱前已有數量，不重複插量
			default:
				content = content[:loc[0]] + full + content[loc[1]:]
				text = full
			}

			entry = &TrackerEntry{
				FirstMentionStepID: step.ID,
				StepOrder:          step.Order,
			}
			if ri.Structured != nil {
				entry.Amount = ri.Structured.Quantity
				if ri.Structured.Unit != nil && ri.Structured.Quantity != nil {
					entry.Unit = ri.Structured.Unit.NameFor(*ri.Structured.Quantity)
				}
			}
			r.IngredientTracker[ri.ID] = entry

			mentions = append(mentions, IngredientMention{
				IngredientID:       ri.ID,
				Text:               text,
				FullText:           full,
				IsFirstMention:     true,
				FirstMentionStepID: step.ID,
			})
			continue
		}

		// 重複提及：只留裸名稱，名稱前殘留的數量一併剝掉
		if stripped, ok := c.stripAmountBefore(content, loc[0]); ok {
			content = stripped
			loc, matched = findMention(content, mentionNames(ri))
			if loc == nil {
				continue
			}
		}
		mentions = append(mentions, IngredientMention{
			IngredientID:       ri.ID,
			Text:               matched,
			FullText:           full,
			IsFirstMention:     false,
			FirstMentionStepID: entry.FirstMentionStepID,
		})
	}
}

// amountPrecedes 名稱前緊鄰的文字是否已含數量（可帶單位、可帶 of）
func (c *CrossReferencer) amountPrecedes(prefix string) bool {
	return c.looseAmount.MatchString(prefix)
}

// stripAmountBefore 剝掉名稱前緊鄰的數量＋單位文字
func (c *CrossReferencer) stripAmountBefore(content string, start int) (string, bool) {
	loc := c.looseAmount.FindStringIndex(content[:start])
	if loc == nil {
		return content, false
	}
	return content[:loc[0]] + content[start:], true
}

// mentionNames 食材在步驟文字中可能出現的拼法，長度遞減排序
func mentionNames(ri *RecipeIngredient) []string {
	var names []string
	if ri.Structured != nil && ri.Structured.Ingredient != nil {
		ing := ri.Structured.Ingredient
		names = append(names, ing.Name)
		if ing.Plural != "" && ing.Plural != ing.Name {
			names = append(names, ing.Plural)
		}
		names = append(names, ing.SearchTerms...)
	} else if ri.DisplayText != "" {
		names = append(names, ri.DisplayText)
	}

	sort.Slice(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})
	return names
}

// findMention 在內容中找第一個以詞邊界出現的拼法
func findMention(content string, names []string) ([]int, string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if loc := re.FindStringIndex(content); loc != nil {
			return loc, content[loc[0]:loc[1]]
		}
	}
	return nil, ""
}

// fullDisplay 完整規格字串（首次提及要顯示的文字）
func fullDisplay(ri *RecipeIngredient) string {
	if ri.Structured != nil {
		if spec := ri.Structured.FullSpec(); spec != "" {
			return spec
		}
	}
	return ri.DisplayText
}
