package drive

// AttachDriveFileRequest represents the request to pull a Drive file into a
// meeting as its transcript
type AttachDriveFileRequest struct {
	MeetingID string `json:"meeting_id" validate:"required,uuid"`
	FileID    string `json:"file_id" validate:"required"`
	MimeType  string `json:"mime_type,omitempty"`
	Name      string `json:"name,omitempty"`
}
