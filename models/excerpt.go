package models

// Excerpt is a single chunk of a stored document returned by the search
// collaborator.
type Excerpt struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}
