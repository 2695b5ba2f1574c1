package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-ingest/internal/core/parse"
)

// 部分引用詞彙（封閉集合）：步驟裡沒有這些詞時，
// divided 標記只是資訊性的，不觸發均分。
var rePartialWord = regexp.MustCompile(`\b(half|remaining|rest|some|part|portion)\b`)

// Distributor 均分標記 divided 的食材數量到引用它的步驟
type Distributor struct {
	crossref *CrossReferencer
}

// NewDistributor 創建均分器
func NewDistributor(crossref *CrossReferencer) *Distributor {
	return &Distributor{crossref: crossref}
}

// Distribute 對每個 divided 食材做後處理：
// 引用步驟 ≥2 且至少一步含部分引用詞時，把每步顯示的數量換成 總量 ÷ 步驟數。
// 均分出不乾淨的值時退回「(總量) (divided by N)」字面描述，絕不讓引用消失。
func (d *Distributor) Distribute(r *Recipe) {
	for _, ri := range r.Ingredients {
		if ri.Structured == nil || !ri.Structured.IsDivided || ri.Structured.Quantity == nil {
			continue
		}
		d.distributeOne(r, ri)
	}
}

func (d *Distributor) distributeOne(r *Recipe, ri *RecipeIngredient) {
	refs := referencingSteps(r, ri.ID)
	if len(refs) < 2 || !anyHasPartialWord(refs) {
		return
	}

	total := *ri.Structured.Quantity
	per := total / float64(len(refs))

	if !parse.IsCleanQuantity(per) {
		d.annotateLiteral(refs, ri, len(refs))
		return
	}

	amount := parse.FormatQuantity(per)
	unitName := ""
	if ri.Structured.Unit != nil {
		unitName = ri.Structured.Unit.NameFor(per)
	}

	for _, step := range refs {
		d.rewriteMention(step, ri, joinSpec(amount, unitName, mentionBareName(ri)))
	}
}

// rewriteMention 把步驟裡這個食材的提及（含前面殘留的數量）換成指定文字
func (d *Distributor) rewriteMention(step *Step, ri *RecipeIngredient, replacement string) {
	loc, _ := findMention(step.Content, mentionNames(ri))
	if loc == nil {
		return
	}

	start, end := loc[0], loc[1]
	if amtLoc := d.crossref.looseAmount.FindStringIndex(step.Content[:start]); amtLoc != nil {
		start = amtLoc[0]
	}
	step.Content = step.Content[:start] + replacement + step.Content[end:]

	for i := range step.Ingredients {
		if step.Ingredients[i].IngredientID == ri.ID {
			step.Ingredients[i].Text = replacement
			break
		}
	}
}

// annotateLiteral 降級：首次提及標上「(divided by N)」，其餘步驟不動
func (d *Distributor) annotateLiteral(refs []*Step, ri *RecipeIngredient, n int) {
	suffix := " (divided by " + strconv.Itoa(n) + ")"
	for _, step := range refs {
		for i := range step.Ingredients {
			m := &step.Ingredients[i]
			if m.IngredientID != ri.ID || !m.IsFirstMention {
				continue
			}
			loc, matched := findMention(step.Content, mentionNames(ri))
			if loc == nil {
				return
			}
			step.Content = step.Content[:loc[1]] + suffix + step.Content[loc[1]:]
			m.Text = matched + suffix
			return
		}
	}
}

// referencingSteps 引用這個食材的步驟，依最終順序
func referencingSteps(r *Recipe, ingredientID string) []*Step {
	var refs []*Step
	for _, step := range r.Steps {
		for _, m := range step.Ingredients {
			if m.IngredientID == ingredientID {
				refs = append(refs, step)
				break
			}
		}
	}
	return refs
}

func anyHasPartialWord(steps []*Step) bool {
	for _, step := range steps {
		if rePartialWord.MatchString(strings.ToLower(step.Content)) {
			return true
		}
	}
	return false
}

// mentionBareName 均分改寫時用的裸名稱（配合均分後的數量選單複數）
func mentionBareName(ri *RecipeIngredient) string {
	if ri.Structured != nil && ri.Structured.Ingredient != nil {
		return ri.Structured.Ingredient.Name
	}
	return ri.DisplayText
}

func joinSpec(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
