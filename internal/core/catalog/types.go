package catalog

// MeasurementType 計量類型
type MeasurementType string

const (
	MeasureVolume    MeasurementType = "volume"
	MeasureWeight    MeasurementType = "weight"
	MeasureCount     MeasurementType = "count"
	MeasureSize      MeasurementType = "size"
	MeasureContainer MeasurementType = "container"
)

// Unit 計量單位
type Unit struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Plural  string          `json:"plural"`
	Type    MeasurementType `json:"type"`
	Aliases []string        `json:"aliases,omitempty"`
}

// NameFor 依數量回傳單複數名稱
func (u *Unit) NameFor(quantity float64) string {
	if quantity > 1 {
		return u.Plural
	}
	return u.Name
}

// PreparationMethod 處理方式。RequiresStep 為 true 表示這是廚師要實際
// 動手做的動作（如 chopped），false 表示只是描述狀態（如 boneless）。
type PreparationMethod struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RequiresStep bool   `json:"requires_step"`
}

// CatalogIngredient 目錄食材。內建條目是不可變的參考資料，
// 執行期只會新增 custom 條目，不會修改或刪除內建條目。
type CatalogIngredient struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Plural             string   `json:"plural"`
	Category           string   `json:"category"`
	CommonUnits        []string `json:"common_units,omitempty"`
	CommonPreparations []string `json:"common_preparations,omitempty"`
	SearchTerms        []string `json:"search_terms,omitempty"`
	Custom             bool     `json:"custom,omitempty"`
}

// NameFor 依數量與單位決定顯示名稱：無單位的計數食材在數量大於 1 時用複數
func (ci *CatalogIngredient) NameFor(quantity float64, hasUnit bool) string {
	if !hasUnit && quantity > 1 && ci.Plural != "" {
		return ci.Plural
	}
	return ci.Name
}
