package dashboard

// NotesResponse carries the user's scratchpad notes
type NotesResponse struct {
	Notes string `json:"notes"`
}
