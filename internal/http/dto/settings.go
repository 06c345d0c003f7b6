package dto

// PersonalizationRequest es el body de PUT /v1/settings/personalization.
type PersonalizationRequest struct {
	SystemPrompt string `json:"system_prompt"`
	Notes        string `json:"notes"`
}
