package parse

import (
	"testing"

	"recipe-ingest/internal/core/catalog"
)

func newTestParser(t *testing.T, corrections CorrectionSource) *Parser {
	t.Helper()
	return NewParser(catalog.New(nil), corrections)
}

func TestParseCanonicalForms(t *testing.T) {
	p := newTestParser(t, nil)

	tests := []struct {
		name       string
		in         string
		quantity   float64
		unitID     string
		ingredient string
	}{
		{"整數數量", "2 cups flour", 2, "cup", "flour"},
		{"小數數量", "2.5 cups flour", 2.5, "cup", "flour"},
		{"簡分數", "1/2 cup milk", 0.5, "cup", "milk"},
		{"帶分數", "2 1/2 cups flour", 2.5, "cup", "flour"},
		{"黏連帶分數", "21/2 cups flour", 2.5, "cup", "flour"},
		{"單位後接 of", "2 cups of flour", 2, "cup", "flour"},
		{"別名單位", "3 tablespoons butter", 3, "tbsp", "butter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.in)
			if !got.IsStructured {
				t.Fatalf("Parse(%q).IsStructured = false", tt.in)
			}
			if got.Quantity == nil || *got.Quantity != tt.quantity {
				t.Errorf("Parse(%q).Quantity = %v，預期 %v", tt.in, got.Quantity, tt.quantity)
			}
			if got.Unit == nil || got.Unit.ID != tt.unitID {
				t.Errorf("Parse(%q).Unit = %v，預期 %q", tt.in, got.Unit, tt.unitID)
			}
			if got.Ingredient == nil || got.Ingredient.ID != tt.ingredient {
				t.Errorf("Parse(%q).Ingredient = %v，預期 %q", tt.in, got.Ingredient, tt.ingredient)
			}
		})
	}
}

func TestParseGluedFractionEquivalence(t *testing.T) {
	p := newTestParser(t, nil)

	a := p.Parse("21/2 cups flour")
	b := p.Parse("2 1/2 cups flour")

	if a.Quantity == nil || b.Quantity == nil || *a.Quantity != *b.Quantity {
		t.Fatalf("黏連帶分數與標準帶分數數量不一致: %v vs %v", a.Quantity, b.Quantity)
	}
	if a.Unit == nil || b.Unit == nil || a.Unit.ID != b.Unit.ID {
		t.Errorf("單位不一致: %v vs %v", a.Unit, b.Unit)
	}
	if a.Ingredient.ID != b.Ingredient.ID {
		t.Errorf("食材不一致: %q vs %q", a.Ingredient.ID, b.Ingredient.ID)
	}
}

func TestParseDividedMarker(t *testing.T) {
	p := newTestParser(t, nil)

	tests := []struct {
		in      string
		divided bool
	}{
		{"2 cups flour, divided", true},
		{"2 cups flour divided", true},
		{"1 cup sugar, split", true},
		{"2 cups flour", false},
	}

	for _, tt := range tests {
		got := p.Parse(tt.in)
		if got.IsDivided != tt.divided {
			t.Errorf("Parse(%q).IsDivided = %v，預期 %v", tt.in, got.IsDivided, tt.divided)
		}
		if tt.divided && got.Ingredient == nil {
			t.Errorf("Parse(%q) 應該仍解析出食材", tt.in)
		}
	}
}

func TestParseSizeInfo(t *testing.T) {
	p := newTestParser(t, nil)

	got := p.Parse("1 (5 ounce) can tomato")
	if got.SizeInfo != "5 ounce" {
		t.Errorf("SizeInfo = %q，預期 %q", got.SizeInfo, "5 ounce")
	}
	if got.Quantity == nil || *got.Quantity != 1 {
		t.Errorf("Quantity = %v，預期 1（括號註記不得干擾數量）", got.Quantity)
	}
	if got.Unit == nil || got.Unit.ID != "can" {
		t.Errorf("Unit = %v，預期 can", got.Unit)
	}
}

func TestParsePreparation(t *testing.T) {
	p := newTestParser(t, nil)

	tests := []struct {
		name         string
		in           string
		prepName     string
		requiresStep bool
	}{
		{"動作處理方式", "2 onions, chopped", "chopped", true},
		{"狀態處理方式", "1 cup butter, softened", "softened", false},
		{"形狀描述不算動作", "2 apples, halves", "halves", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.in)
			if got.Preparation == nil {
				t.Fatalf("Parse(%q).Preparation = nil", tt.in)
			}
			if got.Preparation.Name != tt.prepName {
				t.Errorf("Preparation.Name = %q，預期 %q", got.Preparation.Name, tt.prepName)
			}
			if got.Preparation.RequiresStep != tt.requiresStep {
				t.Errorf("RequiresStep = %v，預期 %v", got.Preparation.RequiresStep, tt.requiresStep)
			}
		})
	}
}

func TestParseCustomFallback(t *testing.T) {
	p := newTestParser(t, nil)

	got := p.Parse("3 dashes magic essence")
	if !got.IsStructured {
		t.Fatal("目錄落空時仍應回傳結構化結果")
	}
	if !got.Ingredient.Custom {
		t.Errorf("Ingredient.Custom = false，預期 true")
	}
	if got.Ingredient.Name != "magic essence" {
		t.Errorf("Ingredient.Name = %q，預期最長片段 %q", got.Ingredient.Name, "magic essence")
	}
	if got.Unit == nil || got.Unit.ID != "dash" {
		t.Errorf("Unit = %v，預期 dash", got.Unit)
	}
}

func TestParseUnstructuredInput(t *testing.T) {
	p := newTestParser(t, nil)

	got := p.Parse("salt to taste")
	if !got.IsStructured {
		t.Error("非空輸入必須是結構化結果")
	}
	if got.Quantity != nil {
		t.Errorf("Quantity = %v，預期 nil", *got.Quantity)
	}
	if got.Unit != nil {
		t.Errorf("Unit = %v，預期 nil", got.Unit)
	}
	if got.Ingredient == nil || got.Ingredient.ID != "salt" {
		t.Errorf("Ingredient = %v，預期 salt", got.Ingredient)
	}

	empty := p.Parse("   ")
	if empty.IsStructured {
		t.Error("空輸入是唯一 IsStructured=false 的情況")
	}
}

type stubCorrections struct {
	result *ParsedIngredient
}

func (s *stubCorrections) Lookup(text string) (*ParsedIngredient, bool) {
	if s.result != nil {
		return s.result, true
	}
	return nil, false
}

func TestParseCorrectionShortCircuit(t *testing.T) {
	q := 3.0
	stub := &stubCorrections{result: &ParsedIngredient{
		Quantity:     &q,
		Ingredient:   &catalog.CatalogIngredient{ID: "flour", Name: "flour"},
		IsStructured: true,
	}}
	p := newTestParser(t, stub)

	got := p.Parse("3 cups flour")
	if got.Quantity == nil || *got.Quantity != 3 {
		t.Errorf("修正學習短路未生效: Quantity = %v", got.Quantity)
	}
	if got.OriginalText != "3 cups flour" {
		t.Errorf("OriginalText = %q，短路結果必須保留原文", got.OriginalText)
	}

	// 沒有命中時照常解析
	miss := newTestParser(t, &stubCorrections{})
	normal := miss.Parse("2 cups flour")
	if normal.Ingredient == nil || normal.Ingredient.ID != "flour" {
		t.Errorf("未命中時應照常解析，得到 %v", normal.Ingredient)
	}
}

func TestFullSpec(t *testing.T) {
	p := newTestParser(t, nil)

	tests := []struct {
		in   string
		want string
	}{
		{"2 cups flour", "2 cups flour"},
		{"1 cup milk", "1 cup milk"},
		{"2 onions, chopped", "2 onions"},
		{"1/2 cup milk", "1/2 cup milk"},
	}

	for _, tt := range tests {
		if got := p.Parse(tt.in).FullSpec(); got != tt.want {
			t.Errorf("FullSpec(%q) = %q，預期 %q", tt.in, got, tt.want)
		}
	}
}
