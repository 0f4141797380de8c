package converter

import "infix-postfix/internal/notation"

// ConvertRequest is the JSON body for POST /api/convert and POST /api/validate.
type ConvertRequest struct {
	Expression string `json:"expression"`
}

// ConvertResponse is the JSON response for POST /api/convert.
type ConvertResponse struct {
	Infix   string          `json:"infix"` // whitespace stripped
	Postfix string          `json:"postfix"`
	Steps   []notation.Step `json:"steps"`
}

// ValidateResponse is the JSON response for POST /api/validate.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ExamplesResponse is the JSON response for GET /api/examples.
type ExamplesResponse struct {
	Examples []string `json:"examples"`
}
