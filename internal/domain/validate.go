package domain

import (
	"math"
	"strconv"
	"strings"
)

// ValidationResult is the outcome of a form-level validation. Failures are
// returned to the caller to surface to the user, never raised as errors.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(msg string) ValidationResult {
	return ValidationResult{Valid: false, Error: msg}
}

// ValidateRequired flags empty or whitespace-only strings.
func ValidateRequired(value, fieldName string) ValidationResult {
	if fieldName == "" {
		fieldName = "Field"
	}
	if strings.TrimSpace(value) == "" {
		return invalid(fieldName + " is required")
	}
	return valid()
}

// ValidateNumber flags blank, non-numeric, and negative inputs.
func ValidateNumber(value string) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return invalid("Please enter a value")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return invalid("Please enter a valid number")
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable quantity.
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return invalid("Please enter a valid number")
	}
	if n < 0 {
		return invalid("Please enter a positive number")
	}
	return valid()
}

// ValidateNoteTitle validates a note title.
func ValidateNoteTitle(title string) ValidationResult {
	return ValidateRequired(title, "Note title")
}
