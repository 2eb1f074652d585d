package entities

// ValidationResult represents the outcome of validating a method payload.
type ValidationResult struct {
	Errors []ValidationError `json:"errors,omitempty"`
	Valid  bool              `json:"valid"`
}

// ValidationError represents a specific validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
