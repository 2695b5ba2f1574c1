package pipeline

import (
	"strings"
	"testing"
)

func makeRecipe(ings []*RecipeIngredient, contents ...string) *Recipe {
	r := &Recipe{Ingredients: ings}
	for i, content := range contents {
		r.Steps = append(r.Steps, &Step{
			ID:      "step-" + string(rune('a'+i)),
			Order:   i,
			Content: content,
		})
	}
	return r
}

func TestLinkFirstMentionRewrite(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)

	flour := makeIngredient(p, "2 cups flour")
	eggs := makeIngredient(p, "3 eggs")
	r := makeRecipe([]*RecipeIngredient{flour, eggs},
		"Mix the flour and eggs.",
		"Fold in the remaining flour.",
	)

	cr.Link(r)

	if got := r.Steps[0].Content; got != "Mix the 2 cups flour and 3 eggs." {
		t.Errorf("首次提及改寫結果 = %q", got)
	}
	if got := r.Steps[1].Content; got != "Fold in the remaining flour." {
		t.Errorf("重複提及應保留裸名稱: %q", got)
	}

	// 追蹤表只記首次提及
	entry := r.IngredientTracker[flour.ID]
	if entry == nil {
		t.Fatal("追蹤表缺少 flour")
	}
	if entry.FirstMentionStepID != r.Steps[0].ID || entry.StepOrder != 0 {
		t.Errorf("追蹤表首次提及 = (%q, %d)，預期第一步", entry.FirstMentionStepID, entry.StepOrder)
	}
	if entry.Amount == nil || *entry.Amount != 2 || entry.Unit != "cups" {
		t.Errorf("追蹤表數量 = (%v, %q)，預期 (2, cups)", entry.Amount, entry.Unit)
	}
}

func TestLinkIdempotence(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)

	ings := []*RecipeIngredient{
		makeIngredient(p, "2 cups flour"),
		makeIngredient(p, "1 cup milk"),
	}
	r := makeRecipe(ings,
		"Whisk the flour into the milk.",
		"Add more flour if needed.",
	)

	cr.Link(r)
	first := []string{r.Steps[0].Content, r.Steps[1].Content}

	// 重跑不得再疊加數量
	cr.Link(r)
	second := []string{r.Steps[0].Content, r.Steps[1].Content}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("步驟 %d 重跑後改變: %q → %q", i, first[i], second[i])
		}
	}
}

func TestLinkSkipsExistingAmount(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)

	flour := makeIngredient(p, "2 cups flour")

	// 完整規格已逐字存在
	r := makeRecipe([]*RecipeIngredient{flour}, "Add 2 cups flour to the bowl.")
	cr.Link(r)
	if got := r.Steps[0].Content; got != "Add 2 cups flour to the bowl." {
		t.Errorf("已含完整規格的步驟不應改寫: %q", got)
	}

	// 名稱前已有數量（寬鬆樣式）
	r2 := makeRecipe([]*RecipeIngredient{flour}, "Add 2 cups of flour to the bowl.")
	cr.Link(r2)
	if got := r2.Steps[0].Content; got != "Add 2 cups of flour to the bowl." {
		t.Errorf("名稱前已有數量時不應重複插量: %q", got)
	}
}

func TestLinkFirstMentionUniqueness(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)

	ings := []*RecipeIngredient{
		makeIngredient(p, "2 cups flour"),
		makeIngredient(p, "3 eggs"),
	}
	r := makeRecipe(ings,
		"Beat the eggs.",
		"Add the flour and eggs.",
		"Sprinkle flour on top.",
	)

	cr.Link(r)

	for _, ing := range ings {
		firstCount := 0
		minOrder := -1
		firstOrder := -1
		for _, step := range r.Steps {
			for _, m := range step.Ingredients {
				if m.IngredientID != ing.ID {
					continue
				}
				if minOrder == -1 {
					minOrder = step.Order
				}
				if m.IsFirstMention {
					firstCount++
					firstOrder = step.Order
				}
			}
		}
		if firstCount != 1 {
			t.Errorf("%s 的首次提及數 = %d，預期恰好 1", ing.OriginalText, firstCount)
		}
		if firstOrder != minOrder {
			t.Errorf("%s 的首次提及步驟 = %d，預期最早引用步驟 %d", ing.OriginalText, firstOrder, minOrder)
		}
	}
}

func TestLinkNoMatchLeavesStepUntouched(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)

	r := makeRecipe([]*RecipeIngredient{makeIngredient(p, "2 cups flour")},
		"Preheat the oven to 350F.",
	)
	cr.Link(r)

	if got := r.Steps[0].Content; got != "Preheat the oven to 350F." {
		t.Errorf("無引用的步驟不應被改動: %q", got)
	}
	if len(r.Steps[0].Ingredients) != 0 {
		t.Errorf("無引用的步驟不應有提及: %v", r.Steps[0].Ingredients)
	}
}

func TestLinkRepeatMentionStripsStaleAmount(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)

	flour := makeIngredient(p, "2 cups flour")
	r := makeRecipe([]*RecipeIngredient{flour},
		"Add 2 cups flour to the bowl.",
		"Mix in 2 cups flour again.",
	)
	cr.Link(r)

	// 重複提及只留裸名稱
	if got := r.Steps[1].Content; strings.Contains(got, "2 cups flour") {
		t.Errorf("重複提及應剝掉數量: %q", got)
	}
	if got := r.Steps[1].Content; !strings.Contains(got, "flour") {
		t.Errorf("重複提及應保留名稱: %q", got)
	}
}
