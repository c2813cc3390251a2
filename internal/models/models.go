package models

// ReasoningResult is the structured analysis of one bookmark, either
// returned by the reasoning provider or synthesized from local heuristics.
// Category is a free-text label, not guaranteed to be a registry key.
type ReasoningResult struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

// ProcessingResult records the outcome of filing one bookmark.
// FilePath is empty when the matched rule produced no file.
type ProcessingResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	FilePath string `json:"file_path,omitempty"`
}
