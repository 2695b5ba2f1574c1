package parse

import (
	"regexp"
	"strings"
)

var (
	// 黏連帶分數：數字緊貼 "1/數字"（"21/2" 其實是 "2 1/2"）。
	// 必須在通用的數字字母切分之前處理，否則會被誤拆成分數 21/2。
	reGluedMixed = mustCompile(`(\d)(1/\d)`)

	// 數字緊貼字母："2.5cups" → "2.5 cups"
	reDigitLetter = mustCompile(`(\d)([A-Za-z])`)

	reSpaces = mustCompile(`\s+`)
)

func mustCompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

// NormalizeLine 正規化一行食材文字
func NormalizeLine(line string) string {
	s := strings.TrimSpace(line)
	s = reGluedMixed.ReplaceAllString(s, "$1 $2")
	s = reDigitLetter.ReplaceAllString(s, "$1 $2")
	s = reSpaces.ReplaceAllString(s, " ")
	return s
}
