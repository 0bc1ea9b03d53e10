package document

import "github.com/google/uuid"

// Document is the normalized output unit: text content plus metadata.
type Document struct {
	// ID uniquely identifies the document.
	ID string `json:"id"`
	// Text is the document content.
	Text string `json:"text"`
	// Metadata carries additional key-value context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// New creates a Document with a fresh ID and a copy of the given metadata.
func New(text string, metadata map[string]string) *Document {
	md := make(map[string]string, len(metadata))
	for k, v := range metadata {
		md[k] = v
	}
	return &Document{
		ID:       uuid.NewString(),
		Text:     text,
		Metadata: md,
	}
}

// Content returns the document text.
func (d *Document) Content() string {
	return d.Text
}
