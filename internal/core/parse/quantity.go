package parse

import (
	"math"
	"strconv"
	"strings"
)

// 數量文法：整數、小數、簡分數 a/b、帶分數 a b/c、範圍 a-b 與 a to b。
// 範圍取下界而非平均——「2-3 瓣大蒜」照 2 準備，後續步驟的指示才可執行。
var (
	reMixedFraction = mustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)`)
	reFraction      = mustCompile(`^(\d+)\s*/\s*(\d+)`)
	reRange         = mustCompile(`^(\d+(?:\.\d+)?)\s*(?:-|–|to\s+)\s*(\d+(?:\.\d+)?)`)
	reNumber        = mustCompile(`^(\d+(?:\.\d+)?)`)
)

// ExtractQuantity 從字串開頭取出數量，回傳數量與剩餘文字。
// 解析失敗回傳 nil 數量與原字串，不是錯誤。
func ExtractQuantity(s string) (*float64, string) {
	s = strings.TrimSpace(s)

	if m := reMixedFraction.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den != 0 {
			q := whole + num/den
			return &q, strings.TrimSpace(s[len(m[0]):])
		}
	}

	if m := reFraction.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			q := num / den
			return &q, strings.TrimSpace(s[len(m[0]):])
		}
	}

	if m := reRange.FindStringSubmatch(s); m != nil {
		low, _ := strconv.ParseFloat(m[1], 64)
		q := low
		return &q, strings.TrimSpace(s[len(m[0]):])
	}

	if m := reNumber.FindStringSubmatch(s); m != nil {
		q, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return &q, strings.TrimSpace(s[len(m[0]):])
		}
	}

	return nil, s
}

// 常見烹飪分數，格式化時在 0.02 容差內吸附
var cookingFractions = []struct {
	value float64
	label string
}{
	{1.0 / 8.0, "1/8"},
	{1.0 / 4.0, "1/4"},
	{1.0 / 3.0, "1/3"},
	{3.0 / 8.0, "3/8"},
	{1.0 / 2.0, "1/2"},
	{5.0 / 8.0, "5/8"},
	{2.0 / 3.0, "2/3"},
	{3.0 / 4.0, "3/4"},
	{7.0 / 8.0, "7/8"},
}

const fractionTolerance = 0.02

// FormatQuantity 將數量格式化為顯示字串：整數直接輸出，
// 小數部分吸附到常見烹飪分數（帶分數形式），否則保留兩位小數。
func FormatQuantity(q float64) string {
	if q < 0 {
		q = 0
	}

	whole := math.Floor(q + fractionTolerance/2)
	frac := q - whole

	if frac < fractionTolerance {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}

	if label, ok := snapFraction(frac); ok {
		if whole == 0 {
			return label
		}
		return strconv.FormatFloat(whole, 'f', -1, 64) + " " + label
	}

	return trimDecimal(strconv.FormatFloat(q, 'f', 2, 64))
}

// IsCleanQuantity 判斷數量是否能格式化成可讀的整數或常見分數。
// 均分後出現不乾淨的值時，配分器用這個決定是否退回字面描述。
func IsCleanQuantity(q float64) bool {
	if q <= 0 {
		return false
	}
	whole := math.Floor(q + fractionTolerance/2)
	frac := q - whole
	if frac < fractionTolerance {
		return true
	}
	_, ok := snapFraction(frac)
	return ok
}

func snapFraction(frac float64) (string, bool) {
	for _, cf := range cookingFractions {
		if math.Abs(frac-cf.value) <= fractionTolerance {
			return cf.label, true
		}
	}
	return "", false
}

func trimDecimal(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
