package dashboard

// ConsumeSuggestionRequest dismisses one schedule suggestion by its start key
type ConsumeSuggestionRequest struct {
	StartISO string `json:"start_iso" validate:"required"`
}

// SaveNotesRequest represents the request to save scratchpad notes
type SaveNotesRequest struct {
	Notes string `json:"notes"`
}
