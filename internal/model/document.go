package model

import (
	"time"

	"docuchat/internal/pkg/tfidf"
)

// DocumentContext is everything retained about one processed upload: the raw
// extracted text, its paragraphs in document order, and the vector model
// fitted over exactly that paragraph sequence. Model is nil when the
// vectorizer was disabled or could not be fitted; queries then use keyword
// matching. Paragraphs and Model are never mutated independently — replacing
// either means rebuilding the whole context.
type DocumentContext struct {
	UID        string
	Text       string
	Paragraphs []string
	Model      *tfidf.Model
	IndexedAt  time.Time
}

// HasModel reports whether vector ranking is available for this document.
func (c *DocumentContext) HasModel() bool {
	return c != nil && c.Model != nil
}
