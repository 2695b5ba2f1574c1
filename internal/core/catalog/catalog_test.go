package catalog

import (
	"context"
	"testing"

	"recipe-ingest/internal/infrastructure/storage"
)

func TestSearchRanking(t *testing.T) {
	c := New(nil)

	// 精確命中排在前綴命中之前
	results := c.Search("flour", 10)
	if len(results) == 0 {
		t.Fatal("Search(flour) 沒有結果")
	}
	if results[0].ID != "flour" {
		t.Errorf("第一筆 = %q，預期精確命中 flour", results[0].ID)
	}

	// 前綴搜尋
	results = c.Search("flo", 10)
	found := false
	for _, ing := range results {
		if ing.ID == "flour" {
			found = true
		}
	}
	if !found {
		t.Error("前綴 flo 應該找得到 flour")
	}

	// limit 生效
	if got := c.Search("s", 3); len(got) > 3 {
		t.Errorf("limit=3 卻回傳 %d 筆", len(got))
	}

	// 空查詢
	if got := c.Search("", 10); got != nil {
		t.Errorf("空查詢應回傳 nil，得到 %d 筆", len(got))
	}
}

func TestBestMatch(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name     string
		fragment string
		wantID   string
		wantMin  int
	}{
		{"精確名稱", "flour", "flour", scoreExact},
		{"精確複數", "onions", "onion", scoreExact},
		{"精確搜尋詞", "all purpose flour", "flour", scoreExact},
		{"子字串包含", "fresh flour blend", "flour", scoreSubstring},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing, score := c.BestMatch(tt.fragment)
			if ing == nil || ing.ID != tt.wantID {
				t.Fatalf("BestMatch(%q) = %v，預期 %q", tt.fragment, ing, tt.wantID)
			}
			if score < tt.wantMin {
				t.Errorf("分數 = %d，預期至少 %d", score, tt.wantMin)
			}
		})
	}

	if ing, score := c.BestMatch("xyzzy"); ing != nil || score != 0 {
		t.Errorf("無命中時應回傳 (nil, 0)，得到 (%v, %d)", ing, score)
	}
}

func TestBestMatchDeterministicTies(t *testing.T) {
	c := New(nil)

	// 同一片段重複查詢必須回傳同一食材（平手依宣告順序）
	first, _ := c.BestMatch("sugar")
	for i := 0; i < 5; i++ {
		got, _ := c.BestMatch("sugar")
		if got.ID != first.ID {
			t.Fatalf("第 %d 次查詢 = %q，與首次 %q 不一致", i, got.ID, first.ID)
		}
	}
}

func TestAddCustom(t *testing.T) {
	c := New(nil)

	ing := c.AddCustom(CatalogIngredient{Name: "dragonfruit"})
	if !ing.Custom {
		t.Error("AddCustom 結果應標記 Custom")
	}
	if ing.Plural != "dragonfruit" {
		t.Errorf("Plural 預設 = %q，預期沿用名稱", ing.Plural)
	}
	if len(ing.CommonUnits) == 0 {
		t.Error("CommonUnits 應補上預設值")
	}

	// 索引立即更新，不需重建
	results := c.Search("dragonfruit", 5)
	if len(results) == 0 || results[0].ID != ing.ID {
		t.Error("新增後應立即可搜尋")
	}
	if got := c.IngredientByID(ing.ID); got == nil {
		t.Error("IngredientByID 找不到自訂食材")
	}
}

func TestCustomPersistence(t *testing.T) {
	store := storage.NewMemoryStore()

	c := New(store)
	added := c.AddCustom(CatalogIngredient{Name: "yuzu kosho"})

	// 重新建構目錄時自訂食材應該回來
	c2 := New(store)
	got := c2.IngredientByID(added.ID)
	if got == nil {
		t.Fatal("重建目錄後自訂食材遺失")
	}
	if got.Name != "yuzu kosho" {
		t.Errorf("Name = %q，預期 yuzu kosho", got.Name)
	}

	// 確認儲存內容存在
	if _, err := store.Get(context.Background(), customKey); err != nil {
		t.Errorf("讀取自訂食材鍵失敗: %v", err)
	}
}

func TestLookupUnit(t *testing.T) {
	c := New(nil)

	tests := []struct {
		token string
		want  string
	}{
		{"cup", "cup"},
		{"cups", "cup"},
		{"Tablespoons", "tbsp"},
		{"tbsp.", "tbsp"},
		{"oz", "oz"},
		{"dashes", "dash"},
	}
	for _, tt := range tests {
		u := c.LookupUnit(tt.token)
		if u == nil || u.ID != tt.want {
			t.Errorf("LookupUnit(%q) = %v，預期 %q", tt.token, u, tt.want)
		}
	}

	if u := c.LookupUnit("flour"); u != nil {
		t.Errorf("LookupUnit(flour) = %v，預期 nil", u)
	}
}

func TestActionForPreparation(t *testing.T) {
	tests := []struct {
		name string
		verb string
		ok   bool
	}{
		{"chopped", "chop", true},
		{"sifted", "sift", true},
		{"finely chopped", "chop", true},
		{"halves", "", false},
		{"halved", "", false},
		{"quartered", "", false},
		{"softened", "", false},
	}

	for _, tt := range tests {
		verb, ok := ActionForPreparation(tt.name)
		if ok != tt.ok || verb != tt.verb {
			t.Errorf("ActionForPreparation(%q) = (%q, %v)，預期 (%q, %v)", tt.name, verb, ok, tt.verb, tt.ok)
		}
	}
}

func TestUnitNameFor(t *testing.T) {
	c := New(nil)
	cup := c.LookupUnit("cup")

	if got := cup.NameFor(1); got != "cup" {
		t.Errorf("NameFor(1) = %q，預期 cup", got)
	}
	if got := cup.NameFor(2); got != "cups" {
		t.Errorf("NameFor(2) = %q，預期 cups", got)
	}
	if got := cup.NameFor(0.5); got != "cup" {
		t.Errorf("NameFor(0.5) = %q，預期 cup", got)
	}
}

func TestIngredientNameFor(t *testing.T) {
	c := New(nil)
	onion := c.IngredientByID("onion")

	// 無單位的計數取複數
	if got := onion.NameFor(2, false); got != "onions" {
		t.Errorf("NameFor(2, 無單位) = %q，預期 onions", got)
	}
	if got := onion.NameFor(1, false); got != "onion" {
		t.Errorf("NameFor(1, 無單位) = %q，預期 onion", got)
	}
	// 有單位時名稱不變
	if got := onion.NameFor(2, true); got != "onion" {
		t.Errorf("NameFor(2, 有單位) = %q，預期 onion", got)
	}
}
