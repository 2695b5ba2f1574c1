package pipeline

import (
	"context"
	"strings"
	"testing"

	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/core/learning"
	"recipe-ingest/internal/core/parse"
	"recipe-ingest/internal/infrastructure/config"
	"recipe-ingest/internal/infrastructure/storage"
	"recipe-ingest/internal/pkg/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat := catalog.New(nil)
	store := learning.NewStore(context.Background(), storage.NewMemoryStore(), cat, &config.LearningConfig{
		ReuseThreshold:   0.8,
		SimilarThreshold: 0.7,
		MaxExamples:      100,
	})
	parser := parse.NewParser(cat, store)
	return NewService(cat, parser, store)
}

func TestIngestRecipeEndToEnd(t *testing.T) {
	svc := newTestService(t)

	ingredientsText := strings.Join([]string{
		"2 cups flour, sifted",
		"2 onions, chopped",
		"1 cup butter, softened",
		"2 cups milk, divided",
	}, "\n")
	stepsText := strings.Join([]string{
		"1. Combine the flour and butter.",
		"2. Stir in half the milk.",
		"3. Add the remaining milk and the onions.",
		"4. Bake for 25 minutes.",
	}, "\n")

	r, err := svc.IngestRecipe(context.Background(), "Test Bake", stepsText, ingredientsText, 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(r.Ingredients) != 4 {
		t.Fatalf("食材數 = %d，預期 4", len(r.Ingredients))
	}

	// 前置步驟在烹飪步驟之前：sifted 與 chopped 產生步驟，softened 不產生
	if len(r.Steps) != 6 {
		t.Fatalf("步驟數 = %d，預期 6（2 前置 + 4 烹飪）", len(r.Steps))
	}
	if r.Steps[0].Content != "Sift 2 cups flour" || !r.Steps[0].IsPrep {
		t.Errorf("第一步 = %q，預期前置步驟 Sift 2 cups flour", r.Steps[0].Content)
	}
	if r.Steps[1].Content != "Chop 2 onions" || !r.Steps[1].IsPrep {
		t.Errorf("第二步 = %q，預期前置步驟 Chop 2 onions", r.Steps[1].Content)
	}

	// 首次提及在前置步驟，烹飪步驟裡只留裸名稱
	if got := r.Steps[2].Content; !strings.Contains(got, "flour") || strings.Contains(got, "2 cups flour") {
		t.Errorf("flour 重複提及應為裸名稱: %q", got)
	}
	if got := r.Steps[2].Content; !strings.Contains(got, "1 cup butter") {
		t.Errorf("butter 首次提及應帶完整規格: %q", got)
	}

	// divided 的 milk 在兩個引用步驟各顯示 1 cup
	if got := r.Steps[3].Content; !strings.Contains(got, "1 cup milk") {
		t.Errorf("步驟 = %q，預期含 1 cup milk", got)
	}
	if got := r.Steps[4].Content; !strings.Contains(got, "1 cup milk") {
		t.Errorf("步驟 = %q，預期含 1 cup milk", got)
	}

	// 計時與追蹤表
	if r.TotalTime != 25 {
		t.Errorf("TotalTime = %d，預期 25", r.TotalTime)
	}
	if len(r.IngredientTracker) != 4 {
		t.Errorf("追蹤表條目 = %d，預期 4", len(r.IngredientTracker))
	}
	if r.Servings != 4 || r.Title != "Test Bake" {
		t.Errorf("食譜欄位錯誤: servings=%d title=%q", r.Servings, r.Title)
	}
}

func TestIngestRecipeEmptyInput(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.IngestRecipe(context.Background(), "Nothing", "  ", "", 0); err != common.ErrEmptyRecipeText {
		t.Errorf("err = %v，預期 ErrEmptyRecipeText", err)
	}
}

func TestRelinkAllIdempotent(t *testing.T) {
	svc := newTestService(t)

	r, err := svc.IngestRecipe(context.Background(), "Bread",
		"1. Mix half the flour into the water.\n2. Knead in the remaining flour.",
		"2 cups flour, divided\n1 cup water", 0)
	if err != nil {
		t.Fatal(err)
	}

	var before []string
	for _, step := range r.Steps {
		before = append(before, step.Content)
	}

	svc.RelinkAll(r)

	for i, step := range r.Steps {
		if step.Content != before[i] {
			t.Errorf("步驟 %d 重跑後改變: %q → %q", i, before[i], step.Content)
		}
	}
}

func TestReparseIngredient(t *testing.T) {
	svc := newTestService(t)

	r, err := svc.IngestRecipe(context.Background(), "Sauce",
		"1. Simmer the milk.", "1 cup milk", 0)
	if err != nil {
		t.Fatal(err)
	}

	existing := r.Ingredients[0]
	updated := svc.ReparseIngredient("2 cups milk", existing)

	if updated.ID != existing.ID {
		t.Error("重新解析必須保持 ID 穩定")
	}
	if updated.Structured.Quantity == nil || *updated.Structured.Quantity != 2 {
		t.Errorf("Quantity = %v，預期 2", updated.Structured.Quantity)
	}
	if updated.OriginalText != "2 cups milk" {
		t.Errorf("OriginalText = %q", updated.OriginalText)
	}
}

func TestRemoveIngredientCascades(t *testing.T) {
	svc := newTestService(t)

	r, err := svc.IngestRecipe(context.Background(), "Omelette",
		"1. Beat the eggs.\n2. Add the milk.", "3 eggs\n1 cup milk", 0)
	if err != nil {
		t.Fatal(err)
	}

	var eggID string
	for _, ing := range r.Ingredients {
		if ing.Structured.Ingredient.ID == "egg" {
			eggID = ing.ID
		}
	}
	if eggID == "" {
		t.Fatal("找不到 egg 食材")
	}

	if !svc.RemoveIngredient(r, eggID) {
		t.Fatal("RemoveIngredient 回傳 false")
	}

	if len(r.Ingredients) != 1 {
		t.Errorf("食材數 = %d，預期 1", len(r.Ingredients))
	}
	if _, ok := r.IngredientTracker[eggID]; ok {
		t.Error("追蹤表應移除被刪食材")
	}

	// 步驟提及降級成純文字而不是被移除，內容保持通順
	for _, step := range r.Steps {
		for _, m := range step.Ingredients {
			if m.IngredientID == eggID {
				t.Error("提及不應再掛在被刪的食材 id 上")
			}
			if m.IngredientID == "" && m.IsResolved() {
				t.Error("降級後的提及不應回報已解析")
			}
		}
	}
	if !strings.Contains(r.Steps[0].Content, "eggs") {
		t.Errorf("步驟內容應保持通順: %q", r.Steps[0].Content)
	}

	if svc.RemoveIngredient(r, "no-such-id") {
		t.Error("不存在的 id 應回傳 false")
	}
}

func TestRecordCorrectionFeedsParser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q := 2.0
	corrected := parse.ParsedIngredient{
		Quantity:     &q,
		Ingredient:   svc.Catalog().IngredientByID("flour"),
		IsStructured: true,
	}
	if err := svc.RecordCorrection(ctx, "two scoops wonder powder flour blend", corrected); err != nil {
		t.Fatal(err)
	}

	got := svc.SimilarCorrections("two scoops wonder powder flour blend", 5)
	if len(got) != 1 {
		t.Fatalf("相似修正數 = %d，預期 1", len(got))
	}
}
