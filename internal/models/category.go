package models

// Action determines whether and how a matched bookmark is persisted.
type Action string

const (
	// ActionFile writes a markdown note into the rule's folder.
	ActionFile Action = "file"
	// ActionTranscribe is reserved for audio/video sources; no file is
	// written here, the archive entry alone records the bookmark.
	ActionTranscribe Action = "transcribe"
	// ActionCapture records the bookmark in the archive only.
	ActionCapture Action = "capture"
)

// CategoryRule describes one entry of the category registry: a filing
// destination plus the URL substrings that identify it directly.
type CategoryRule struct {
	Key         string   `json:"key"`
	Action      Action   `json:"action"`
	Folder      string   `json:"folder,omitempty"`
	Match       []string `json:"match,omitempty"`
	Template    string   `json:"template,omitempty"`
	Description string   `json:"description,omitempty"`
}
