package pipeline

import (
	"strings"
	"testing"
)

func TestDistributeEvenSplit(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)
	d := NewDistributor(cr)

	flour := makeIngredient(p, "2 cups flour, divided")
	r := makeRecipe([]*RecipeIngredient{flour},
		"Mix half the flour with the wet ingredients.",
		"Fold in the remaining flour.",
	)

	cr.Link(r)
	d.Distribute(r)

	// 2 ÷ 2 = 1，整數不需要分數
	for i, step := range r.Steps {
		if !strings.Contains(step.Content, "1 cup flour") {
			t.Errorf("步驟 %d 應含均分後的 %q: %q", i, "1 cup flour", step.Content)
		}
		if strings.Contains(step.Content, "2 cups") {
			t.Errorf("步驟 %d 不應殘留總量: %q", i, step.Content)
		}
	}
}

func TestDistributeFractionalSplit(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)
	d := NewDistributor(cr)

	milk := makeIngredient(p, "1 cup milk, divided")
	r := makeRecipe([]*RecipeIngredient{milk},
		"Stir in half the milk.",
		"Add the rest of the milk.",
	)

	cr.Link(r)
	d.Distribute(r)

	// 1 ÷ 2 = 1/2，吸附到常見烹飪分數
	for i, step := range r.Steps {
		if !strings.Contains(step.Content, "1/2 cup milk") {
			t.Errorf("步驟 %d 應含 %q: %q", i, "1/2 cup milk", step.Content)
		}
	}
}

func TestDistributeInformationalOnly(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)
	d := NewDistributor(cr)

	flour := makeIngredient(p, "2 cups flour, divided")
	r := makeRecipe([]*RecipeIngredient{flour},
		"Mix the flour with the butter.",
		"Add more flour on top.",
	)

	cr.Link(r)
	before := []string{r.Steps[0].Content, r.Steps[1].Content}
	d.Distribute(r)

	// 沒有部分引用詞彙時 divided 標記只是資訊性的
	for i, step := range r.Steps {
		if step.Content != before[i] {
			t.Errorf("步驟 %d 不應被均分改寫: %q → %q", i, before[i], step.Content)
		}
	}
}

func TestDistributeRequiresMultipleSteps(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)
	d := NewDistributor(cr)

	flour := makeIngredient(p, "2 cups flour, divided")
	r := makeRecipe([]*RecipeIngredient{flour},
		"Mix half the flour with everything.",
	)

	cr.Link(r)
	before := r.Steps[0].Content
	d.Distribute(r)

	if r.Steps[0].Content != before {
		t.Errorf("單一引用步驟不應均分: %q", r.Steps[0].Content)
	}
}

func TestDistributeDegenerateFallsBackToLiteral(t *testing.T) {
	cat, p := newTestCatalog()
	cr := NewCrossReferencer(cat)
	d := NewDistributor(cr)

	salt := makeIngredient(p, "1 pinch salt, divided")
	r := makeRecipe([]*RecipeIngredient{salt},
		"Add some salt to the onions.",
		"Add some salt to the sauce.",
		"Add some salt to the broth.",
		"Add some salt to the dressing.",
		"Add some salt to the garnish.",
	)

	cr.Link(r)
	d.Distribute(r)

	// 1 ÷ 5 = 0.2 不是常見烹飪分數，退回字面描述
	if !strings.Contains(r.Steps[0].Content, "(divided by 5)") {
		t.Errorf("首次提及應標上字面描述: %q", r.Steps[0].Content)
	}
	for i, step := range r.Steps {
		if strings.Contains(step.Content, "0.2") {
			t.Errorf("步驟 %d 不應出現退化分數: %q", i, step.Content)
		}
	}
}
