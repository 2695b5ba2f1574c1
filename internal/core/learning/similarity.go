package learning

import (
	"regexp"
	"strings"
)

// 單位同義詞正規化表：相似度計算前把各種拼法收斂成同一個
var unitSynonyms = map[string]string{
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tbsp":        "tbsp",
	"tbs":         "tbsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tsp":         "tsp",
	"ounce":       "oz",
	"ounces":      "oz",
	"oz":          "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lb":          "lb",
	"lbs":         "lb",
	"cup":         "cup",
	"cups":        "cup",
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"milliliter":  "ml",
	"milliliters": "ml",
	"liter":       "l",
	"liters":      "l",
}

// 保留數字與分數斜線，其餘標點去掉
var reNonToken = regexp.MustCompile(`[^a-z0-9/ ]+`)

// tokenSet 正規化後的詞集合：小寫、去標點、單位同義詞收斂、丟棄單字元詞
func tokenSet(text string) map[string]bool {
	cleaned := reNonToken.ReplaceAllString(strings.ToLower(text), " ")
	set := make(map[string]bool)
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 1 {
			continue
		}
		if canonical, ok := unitSynonyms[tok]; ok {
			tok = canonical
		}
		set[tok] = true
	}
	return set
}

// Similarity 計算兩段文字的詞集合相似度：
// (精確詞匹配 + 0.5 × 部分包含匹配) ÷ 詞集合聯集大小。
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	union := make(map[string]bool, len(setA)+len(setB))
	for tok := range setA {
		union[tok] = true
	}
	for tok := range setB {
		union[tok] = true
	}
	if len(union) == 0 {
		return 0
	}

	exact := 0
	for tok := range setA {
		if setB[tok] {
			exact++
		}
	}

	// 部分匹配：沒精確命中的 a 詞，若被某個 b 詞包含（或反過來）算半分
	partial := 0
	for tokA := range setA {
		if setB[tokA] {
			continue
		}
		for tokB := range setB {
			if setA[tokB] {
				continue
			}
			if len(tokA) >= 3 && len(tokB) >= 3 &&
				(strings.Contains(tokA, tokB) || strings.Contains(tokB, tokA)) {
				partial++
				break
			}
		}
	}

	return (float64(exact) + 0.5*float64(partial)) / float64(len(union))
}
