package dto

// FormatCurrencyRequest represents the request body for number to pt-BR formatting.
type FormatCurrencyRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

// FormatCurrencyResponse represents the formatted currency string.
type FormatCurrencyResponse struct {
	Formatted string `json:"formatted"`
}

// ParseCurrencyRequest represents the request body for pt-BR text parsing.
type ParseCurrencyRequest struct {
	Text string `json:"text"`
}

// ParseCurrencyResponse represents the parsed numeric value.
type ParseCurrencyResponse struct {
	Value float64 `json:"value"`
}

// FormatCPFRequest represents the request body for CPF masking.
type FormatCPFRequest struct {
	Text string `json:"text"`
}

// FormatCPFResponse represents the masked CPF.
type FormatCPFResponse struct {
	Formatted string `json:"formatted"`
}

// ValidateFormRequest represents the request body for form validation.
type ValidateFormRequest struct {
	Fields map[string]string `json:"fields"`
}

// ValidateFormResponse represents the result of a form validation.
type ValidateFormResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
