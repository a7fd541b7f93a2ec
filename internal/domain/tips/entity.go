package tips

import "errors"

// ErrGeneration covers provider failures, timeouts and output that does
// not conform to the expected shape. Never retried automatically.
var ErrGeneration = errors.New("tip generation failed")

// GeneratedTip is an ephemeral tip candidate. A batch holds 5 tips by
// provider contract; the count is not enforced locally.
type GeneratedTip struct {
	TipID       int    `json:"tip_id"`
	Title       string `json:"title"`
	IconKeyword string `json:"icon_keyword"`
}

// TipDetail expands one selected tip. Steps is expected to hold 5
// entries by prompt contract, advisory only.
type TipDetail struct {
	ExplanationLong string   `json:"explanation_long"`
	Steps           []string `json:"steps"`
}
