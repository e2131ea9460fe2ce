package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saishivaaditya/market/internal/model"
)

// ErrNotPersistable marks a completion that cannot be stored because it is
// not the JSON object the prompt asked for. The caller logs it and responds
// anyway; persistence is best-effort.
var ErrNotPersistable = errors.New("completion is not a JSON object")

// campaignRecord maps a sanitized completion onto a campaign row. An absent
// 'content' key falls back to the full completion text; a present-but-empty
// one is stored as-is.
func campaignRecord(in CampaignInput, text string) (*model.Campaign, error) {
	var parsed struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPersistable, err)
	}
	result := text
	if parsed.Content != nil {
		result = *parsed.Content
	}
	return &model.Campaign{
		Product:  in.Product,
		Industry: in.Industry,
		Cost:     in.Cost,
		Audience: in.Audience,
		Platform: in.Platform,
		Result:   result,
	}, nil
}

func pitchRecord(in PitchInput, text string) (*model.Pitch, error) {
	var parsed struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPersistable, err)
	}
	result := text
	if parsed.Content != nil {
		result = *parsed.Content
	}
	return &model.Pitch{
		Product:  in.Product,
		Customer: in.Customer,
		Result:   result,
	}, nil
}

// leadRecord extracts score/probability/analysis. Numbers are decoded as
// float64 so a model answering 80.0 instead of 80 still persists; missing
// numeric keys default to 0, an absent analysis key falls back to the full
// text.
func leadRecord(in LeadInput, text string) (*model.Lead, error) {
	var parsed struct {
		Score       float64 `json:"score"`
		Probability float64 `json:"probability"`
		Analysis    *string `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPersistable, err)
	}
	analysis := text
	if parsed.Analysis != nil {
		analysis = *parsed.Analysis
	}
	return &model.Lead{
		Name:        in.Name,
		Budget:      in.Budget,
		Need:        in.Need,
		Urgency:     in.Urgency,
		Score:       int(parsed.Score),
		Probability: int(parsed.Probability),
		Analysis:    analysis,
	}, nil
}
