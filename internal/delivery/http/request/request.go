// Package request holds the typed request shapes for the HTTP surface
// and their structural validation. Validation checks presence and
// primitive type only, never semantics, and runs before any call to the
// provider or the store.
package request

import "strings"

// ValidationError names every missing or invalid field of a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid request"
	}
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func invalid(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// CreateProfile carries the POST /api/profile body. Goal is optional.
type CreateProfile struct {
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
	Goal   *string `json:"goal"`
}

func (r CreateProfile) Validate() error {
	var fields []string
	if r.Age == nil {
		fields = append(fields, "age")
	}
	if r.Gender == nil || *r.Gender == "" {
		fields = append(fields, "gender")
	}
	return invalid(fields)
}

// GenerateTips carries the POST /api/tips/generate body.
type GenerateTips struct {
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
	Goal   *string `json:"goal"`
}

func (r GenerateTips) Validate() error {
	var fields []string
	if r.Age == nil {
		fields = append(fields, "age")
	}
	if r.Gender == nil || *r.Gender == "" {
		fields = append(fields, "gender")
	}
	if r.Goal == nil || *r.Goal == "" {
		fields = append(fields, "goal")
	}
	return invalid(fields)
}

// GenerateTipDetail carries the POST /api/tips/detail body.
type GenerateTipDetail struct {
	Age      *int    `json:"age"`
	Gender   *string `json:"gender"`
	Goal     *string `json:"goal"`
	TipTitle *string `json:"tip_title"`
}

func (r GenerateTipDetail) Validate() error {
	var fields []string
	if r.Age == nil {
		fields = append(fields, "age")
	}
	if r.Gender == nil || *r.Gender == "" {
		fields = append(fields, "gender")
	}
	if r.Goal == nil || *r.Goal == "" {
		fields = append(fields, "goal")
	}
	if r.TipTitle == nil || *r.TipTitle == "" {
		fields = append(fields, "tip_title")
	}
	return invalid(fields)
}

// TipPayload is the tip object inside a SaveTip request. All four
// fields are required; a partial tip never reaches the store.
type TipPayload struct {
	Title           *string  `json:"title"`
	IconKeyword     *string  `json:"icon_keyword"`
	ExplanationLong *string  `json:"explanation_long"`
	Steps           []string `json:"steps"`
}

// SaveTip carries the POST /api/tips/save body. GoalName is optional;
// the profile service decides the fallback.
type SaveTip struct {
	UserID   *string     `json:"userId"`
	GoalName *string     `json:"goalName"`
	Tip      *TipPayload `json:"tip"`
}

func (r SaveTip) Validate() error {
	var fields []string
	if r.UserID == nil || *r.UserID == "" {
		fields = append(fields, "userId")
	}
	if r.Tip == nil {
		fields = append(fields, "tip")
		return invalid(fields)
	}
	if r.Tip.Title == nil || *r.Tip.Title == "" {
		fields = append(fields, "tip.title")
	}
	if r.Tip.IconKeyword == nil || *r.Tip.IconKeyword == "" {
		fields = append(fields, "tip.icon_keyword")
	}
	if r.Tip.ExplanationLong == nil || *r.Tip.ExplanationLong == "" {
		fields = append(fields, "tip.explanation_long")
	}
	if len(r.Tip.Steps) == 0 {
		fields = append(fields, "tip.steps")
	}
	return invalid(fields)
}

// GetSavedTips carries the GET /api/tips/saved/:userId path parameter.
type GetSavedTips struct {
	UserID string
}

func (r GetSavedTips) Validate() error {
	if r.UserID == "" {
		return invalid([]string{"userId"})
	}
	return nil
}
