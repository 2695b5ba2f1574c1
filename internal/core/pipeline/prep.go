package pipeline

import (
	"strings"

	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/pkg/common"
)

// SynthesizePrepSteps 為隱含實際動作的處理方式合成前置步驟。
// 形狀描述詞（halves、quartered）長得像動詞但不是動作，
// ActionForPreparation 會先擋掉，這裡不會為它們產生步驟。
func SynthesizePrepSteps(ingredients []*RecipeIngredient) []*Step {
	var steps []*Step
	for _, ing := range ingredients {
		if ing.Structured == nil || ing.Structured.Preparation == nil {
			continue
		}
		prep := ing.Structured.Preparation
		if !prep.RequiresStep {
			continue
		}

		verb, ok := catalog.ActionForPreparation(prep.Name)
		if !ok {
			continue
		}

		spec := ing.Structured.FullSpec()
		if spec == "" {
			continue
		}

		steps = append(steps, &Step{
			ID:      common.GenerateUUID(),
			Content: capitalize(verb) + " " + spec,
			IsPrep:  true,
		})
	}
	return steps
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
