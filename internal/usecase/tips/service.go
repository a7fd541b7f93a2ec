// Package tips proxies two fixed prompts to the generative provider and
// validates the shape of what comes back. No retries, no repair of
// malformed output, no caching.
package tips

import (
	"context"
	"encoding/json"
	"fmt"

	"welltips/internal/domain/tips"
)

// Generator is the narrow provider port: one prompt in, raw JSON out.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, temperature float64) ([]byte, error)
}

// Temperatures differ by task: the tip batch wants variety, the detail
// expansion wants stability.
const (
	tipsTemperature   = 0.7
	detailTemperature = 0.3
)

const tipsPromptTemplate = `Suggest 5 distinct, actionable wellness tips personalized for a %d year old %s whose goal is %q.
Each tip must have a short title of at most 5 words and exactly one icon keyword (a single word naming a matching icon).
Respond with only a JSON array of 5 objects, each shaped as {"tip_id": <integer 1-5>, "title": <string>, "icon_keyword": <string>}.`

const detailPromptTemplate = `A %d year old %s with the goal %q selected the wellness tip titled %q.
Write a detailed explanation of this tip in 2-3 paragraphs, followed by 5 numbered, practical steps to act on it.
Respond with only a JSON object shaped as {"explanation_long": <string>, "steps": [<5 strings>]}.`

type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// GenerateTips asks the provider for a batch of 5 tip candidates. The
// batch size is the provider's contract; the service only checks that
// the output parses as the expected array shape.
func (s *Service) GenerateTips(ctx context.Context, age int, gender, goal string) ([]tips.GeneratedTip, error) {
	if s == nil || s.gen == nil {
		return nil, fmt.Errorf("%w: no generator configured", tips.ErrGeneration)
	}

	prompt := fmt.Sprintf(tipsPromptTemplate, age, gender, goal)
	raw, err := s.gen.GenerateJSON(ctx, prompt, tipsTemperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tips.ErrGeneration, err)
	}

	var out []tips.GeneratedTip
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: malformed tips output: %v", tips.ErrGeneration, err)
	}
	for _, t := range out {
		if t.Title == "" || t.IconKeyword == "" {
			return nil, fmt.Errorf("%w: tip missing title or icon_keyword", tips.ErrGeneration)
		}
	}
	return out, nil
}

// GenerateTipDetail expands one selected tip into a long explanation
// plus steps.
func (s *Service) GenerateTipDetail(ctx context.Context, age int, gender, goal, tipTitle string) (tips.TipDetail, error) {
	if s == nil || s.gen == nil {
		return tips.TipDetail{}, fmt.Errorf("%w: no generator configured", tips.ErrGeneration)
	}

	prompt := fmt.Sprintf(detailPromptTemplate, age, gender, goal, tipTitle)
	raw, err := s.gen.GenerateJSON(ctx, prompt, detailTemperature)
	if err != nil {
		return tips.TipDetail{}, fmt.Errorf("%w: %v", tips.ErrGeneration, err)
	}

	var out tips.TipDetail
	if err := json.Unmarshal(raw, &out); err != nil {
		return tips.TipDetail{}, fmt.Errorf("%w: malformed detail output: %v", tips.ErrGeneration, err)
	}
	if out.ExplanationLong == "" || len(out.Steps) == 0 {
		return tips.TipDetail{}, fmt.Errorf("%w: detail missing explanation or steps", tips.ErrGeneration)
	}
	return out, nil
}
