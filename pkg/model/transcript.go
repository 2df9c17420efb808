package model

// TranscriptRequest is the request body sent by the iOS Shortcut.
type TranscriptRequest struct {
	Text string `json:"text"`
}

// APIResponse is the flat response shape the Shortcut reads back.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
