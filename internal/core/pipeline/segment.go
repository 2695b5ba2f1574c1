package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// 編號行："1. 步驟" 或 "1) 步驟"
	reNumberedLine = regexp.MustCompile(`^\s*(\d+)[.)]\s*`)

	// 步驟內的時間標記，範圍取上界（「煮 10-12 分鐘」按 12 分鐘排程）
	reTiming = regexp.MustCompile(`(?i)\b(\d+)(?:\s*(?:-|–|to)\s*(\d+))?\s*(minutes?|mins?|hours?|hrs?)\b`)

	reSentenceEnd = regexp.MustCompile(`[.!?]+`)
)

// 句子切分的最短長度下限，避免 "Dr." 之類的縮寫被切成迷你步驟
const minSentenceLen = 10

// SegmentSteps 把原始多行步驟文字切成步驟字串序列。
// 降級鏈固定：編號清單 → 空行段落 → 句子切分，編號清單一出現就優先。
func SegmentSteps(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")

	if hasNumberedLine(lines) {
		return segmentNumbered(lines)
	}

	if paragraphs := splitParagraphs(raw); len(paragraphs) > 1 {
		return paragraphs
	}

	return segmentSentences(raw)
}

func hasNumberedLine(lines []string) bool {
	for _, line := range lines {
		if reNumberedLine.MatchString(line) {
			return true
		}
	}
	return false
}

// segmentNumbered 每個編號行開一個新步驟，未編號的接續行用空格併入前一步
func segmentNumbered(lines []string) []string {
	var steps []string
	current := ""

	flush := func() {
		if trimmed := strings.TrimSpace(current); trimmed != "" {
			steps = append(steps, trimmed)
		}
		current = ""
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if reNumberedLine.MatchString(trimmed) {
			flush()
			current = reNumberedLine.ReplaceAllString(trimmed, "")
			continue
		}
		if current == "" {
			current = trimmed
		} else {
			current += " " + trimmed
		}
	}
	flush()
	return steps
}

// splitParagraphs 空行分段，段內換行收斂成空格
func splitParagraphs(raw string) []string {
	var paragraphs []string
	for _, block := range regexp.MustCompile(`\n\s*\n`).Split(raw, -1) {
		joined := strings.Join(strings.Fields(block), " ")
		if joined != "" {
			paragraphs = append(paragraphs, joined)
		}
	}
	return paragraphs
}

// segmentSentences 句子切分降級：丟掉太短的碎片
func segmentSentences(raw string) []string {
	joined := strings.Join(strings.Fields(raw), " ")

	var steps []string
	for _, fragment := range reSentenceEnd.Split(joined, -1) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) >= minSentenceLen {
			steps = append(steps, fragment)
		}
	}
	if len(steps) == 0 && joined != "" {
		steps = []string{joined}
	}
	return steps
}

// ExtractTiming 取步驟文字中的第一個時間標記，回傳原文與換算後的分鐘數
func ExtractTiming(content string) (string, int) {
	m := reTiming.FindStringSubmatch(content)
	if m == nil {
		return "", 0
	}

	value, _ := strconv.Atoi(m[1])
	if m[2] != "" {
		if upper, err := strconv.Atoi(m[2]); err == nil && upper > value {
			value = upper
		}
	}

	if strings.HasPrefix(strings.ToLower(m[3]), "h") {
		value *= 60
	}
	return strings.TrimSpace(m[0]), value
}
