package catalog

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"recipe-ingest/internal/infrastructure/storage"
	"recipe-ingest/internal/pkg/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const customKey = "catalog:custom"

// Catalog 食材目錄。內建參考資料在建構時載入一次，之後只讀；
// 自訂食材可以在 session 期間新增，並立即更新索引。
type Catalog struct {
	mu sync.RWMutex

	ingredients []*CatalogIngredient
	units       []*Unit
	preparation []*PreparationMethod

	// 倒排索引：詞（含所有前綴）→ 食材。exact 與 prefix 分開存，
	// 排序時精確命中排在前綴命中之前。
	exactIndex  map[string][]*CatalogIngredient
	prefixIndex map[string][]*CatalogIngredient

	unitAlias map[string]*Unit
	prepByKey map[string]*PreparationMethod

	// 宣告順序，平手時做決定性的排序
	order map[string]int

	store storage.Store // 可為 nil：自訂食材只存活於行程內
}

// New 建立目錄：去重參考資料、建索引、載入已持久化的自訂食材
func New(store storage.Store) *Catalog {
	c := &Catalog{
		exactIndex:  make(map[string][]*CatalogIngredient),
		prefixIndex: make(map[string][]*CatalogIngredient),
		unitAlias:   make(map[string]*Unit),
		prepByKey:   make(map[string]*PreparationMethod),
		order:       make(map[string]int),
		store:       store,
	}

	// 以 id 去重，保留最後一筆定義（來源資料有同食材雙分類的問題）
	seen := make(map[string]int)
	for i := range defaultIngredients {
		entry := defaultIngredients[i]
		if idx, dup := seen[entry.ID]; dup {
			common.LogDebug("目錄參考資料出現重複 id，以後者為準", zap.String("id", entry.ID))
			c.ingredients[idx] = &entry
			continue
		}
		seen[entry.ID] = len(c.ingredients)
		c.ingredients = append(c.ingredients, &entry)
	}
	for i, ing := range c.ingredients {
		c.order[ing.ID] = i
		c.indexIngredient(ing)
	}

	for i := range defaultUnits {
		u := defaultUnits[i]
		c.units = append(c.units, &u)
		c.unitAlias[strings.ToLower(u.Name)] = &u
		c.unitAlias[strings.ToLower(u.Plural)] = &u
		for _, alias := range u.Aliases {
			c.unitAlias[strings.ToLower(alias)] = &u
		}
	}

	for i := range defaultPreparations {
		p := defaultPreparations[i]
		c.preparation = append(c.preparation, &p)
		c.prepByKey[strings.ToLower(p.Name)] = &p
	}

	c.loadCustom()

	return c
}

// indexIngredient 將食材的所有詞與詞前綴加入索引。呼叫方須持有寫鎖（或在建構期）。
func (c *Catalog) indexIngredient(ing *CatalogIngredient) {
	terms := append([]string{ing.Name, ing.Plural}, ing.SearchTerms...)
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if !containsIngredient(c.exactIndex[term], ing) {
			c.exactIndex[term] = append(c.exactIndex[term], ing)
		}
		for i := 1; i < len(term); i++ {
			prefix := term[:i]
			if !containsIngredient(c.prefixIndex[prefix], ing) {
				c.prefixIndex[prefix] = append(c.prefixIndex[prefix], ing)
			}
		}
	}
}

func containsIngredient(list []*CatalogIngredient, ing *CatalogIngredient) bool {
	for _, x := range list {
		if x.ID == ing.ID {
			return true
		}
	}
	return false
}

// Search 搜尋食材：精確詞命中排在前綴命中之前，各組內依宣告順序。
// 自訂食材已在索引內，會一併回傳。
func (c *Catalog) Search(query string, limit int) []*CatalogIngredient {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var results []*CatalogIngredient
	added := make(map[string]bool)

	exact := append([]*CatalogIngredient(nil), c.exactIndex[query]...)
	c.sortByOrder(exact)
	for _, ing := range exact {
		if !added[ing.ID] {
			added[ing.ID] = true
			results = append(results, ing)
		}
	}

	if len(results) < limit {
		prefixed := append([]*CatalogIngredient(nil), c.prefixIndex[query]...)
		c.sortByOrder(prefixed)
		for _, ing := range prefixed {
			if !added[ing.ID] {
				added[ing.ID] = true
				results = append(results, ing)
			}
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// 配對分數層級：精確 > 子字串包含 > 別名命中
const (
	scoreExact     = 3
	scoreSubstring = 2
	scoreAlias     = 1
)

// BestMatch 對自由文字片段找最佳食材。回傳分數 0 表示沒有任何命中。
// 平手時依宣告順序取先宣告者（決定性，不隨機）。
func (c *Catalog) BestMatch(fragment string) (*CatalogIngredient, int) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return nil, 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var best *CatalogIngredient
	bestScore := 0
	for _, ing := range c.ingredients {
		score := matchScore(fragment, ing)
		// 嚴格大於才取代，保證平手時保留宣告順序較前者
		if score > bestScore {
			best = ing
			bestScore = score
		}
	}
	return best, bestScore
}

func matchScore(fragment string, ing *CatalogIngredient) int {
	name := strings.ToLower(ing.Name)
	plural := strings.ToLower(ing.Plural)

	if fragment == name || fragment == plural {
		return scoreExact
	}
	for _, term := range ing.SearchTerms {
		if fragment == strings.ToLower(term) {
			return scoreExact
		}
	}
	if containsWholeWord(fragment, name) || containsWholeWord(fragment, plural) ||
		containsWholeWord(name, fragment) {
		return scoreSubstring
	}
	for _, term := range ing.SearchTerms {
		term = strings.ToLower(term)
		if containsWholeWord(fragment, term) || containsWholeWord(term, fragment) {
			return scoreAlias
		}
	}
	return 0
}

// containsWholeWord 以詞邊界檢查 needle 是否整詞出現在 haystack 內
func containsWholeWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	pattern := `(?i)\b` + regexp.QuoteMeta(needle) + `\b`
	matched, err := regexp.MatchString(pattern, haystack)
	return err == nil && matched
}

// sortByOrder 依宣告順序排序（自訂食材排在內建之後）
func (c *Catalog) sortByOrder(list []*CatalogIngredient) {
	sort.SliceStable(list, func(i, j int) bool {
		return c.order[list[i].ID] < c.order[list[j].ID]
	})
}

// AddCustom 新增自訂食材：分配新 id、補上預設欄位、立即更新索引。
// 內建條目永遠不會被修改或移除。
func (c *Catalog) AddCustom(data CatalogIngredient) *CatalogIngredient {
	c.mu.Lock()
	defer c.mu.Unlock()

	ing := data
	ing.ID = "custom-" + uuid.New().String()
	ing.Custom = true
	ing.Name = strings.TrimSpace(ing.Name)
	if ing.Plural == "" {
		ing.Plural = ing.Name
	}
	if ing.Category == "" {
		ing.Category = "custom"
	}
	if len(ing.CommonUnits) == 0 {
		ing.CommonUnits = []string{"cup", "tbsp", "tsp"}
	}

	c.order[ing.ID] = len(c.ingredients)
	c.ingredients = append(c.ingredients, &ing)
	c.indexIngredient(&ing)

	c.persistCustom()

	return &ing
}

// IngredientByID 以 id 取得食材
func (c *Catalog) IngredientByID(id string) *CatalogIngredient {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, ing := range c.ingredients {
		if ing.ID == id {
			return ing
		}
	}
	return nil
}

// LookupUnit 以任一拼法（單數、複數、縮寫）查單位
func (c *Catalog) LookupUnit(token string) *Unit {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.TrimSuffix(token, ".")
	if token == "" {
		return nil
	}
	if u, ok := c.unitAlias[token]; ok {
		return u
	}
	return nil
}

// LookupPreparation 以名稱查處理方式
func (c *Catalog) LookupPreparation(name string) *PreparationMethod {
	name = strings.ToLower(strings.TrimSpace(name))
	if p, ok := c.prepByKey[name]; ok {
		return p
	}
	return nil
}

// UnitNames 回傳所有單位拼法，長度遞減排序（供交叉引用的鬆散數量樣式使用）
func (c *Catalog) UnitNames() []string {
	names := make([]string, 0, len(c.unitAlias))
	for alias := range c.unitAlias {
		names = append(names, alias)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// ActionForPreparation 判斷處理方式是否隱含實際動作，並回傳祈使形動詞。
// 形狀描述詞（halves、quartered 等）優先檢查：長得像動詞也不算動作。
func ActionForPreparation(name string) (string, bool) {
	tokens := strings.Fields(strings.ToLower(name))
	for _, tok := range tokens {
		if formWords[tok] {
			return "", false
		}
	}
	for _, tok := range tokens {
		if verb, ok := actionVerbs[tok]; ok {
			return verb, true
		}
	}
	return "", false
}

// ContainsActionVerb 判斷子句是否含動作動詞詞幹（自訂處理方式的 RequiresStep 判定）
func ContainsActionVerb(clause string) bool {
	tokens := strings.Fields(strings.ToLower(clause))
	for _, tok := range tokens {
		if formWords[tok] {
			return false
		}
	}
	for _, tok := range tokens {
		if _, ok := actionVerbs[tok]; ok {
			return true
		}
		for _, stem := range actionVerbs {
			if strings.HasPrefix(tok, stem) {
				return true
			}
		}
	}
	return false
}

// loadCustom 載入已持久化的自訂食材
func (c *Catalog) loadCustom() {
	if c.store == nil {
		return
	}

	data, err := c.store.Get(context.Background(), customKey)
	if err != nil {
		if err != storage.ErrNotFound {
			common.LogWarn("載入自訂食材失敗", zap.Error(err))
		}
		return
	}

	var customs []CatalogIngredient
	if err := common.ParseJSON(data, &customs); err != nil {
		common.LogWarn("自訂食材資料格式損毀，忽略", zap.Error(err))
		return
	}

	for i := range customs {
		ing := customs[i]
		c.order[ing.ID] = len(c.ingredients)
		c.ingredients = append(c.ingredients, &ing)
		c.indexIngredient(&ing)
	}

	common.LogInfo("自訂食材已載入", zap.Int("count", len(customs)))
}

// persistCustom 將全部自訂食材寫回儲存。呼叫方須持有寫鎖。
func (c *Catalog) persistCustom() {
	if c.store == nil {
		return
	}

	var customs []CatalogIngredient
	for _, ing := range c.ingredients {
		if ing.Custom {
			customs = append(customs, *ing)
		}
	}

	data, err := common.ToJSON(customs)
	if err != nil {
		common.LogError("序列化自訂食材失敗", zap.Error(err))
		return
	}
	if err := c.store.Set(context.Background(), customKey, data); err != nil {
		common.LogError("持久化自訂食材失敗", zap.Error(err))
	}
}
