// Package pdfextract pulls embedded text out of PDFs. It only sees text the
// PDF actually carries; scanned documents come back (near) empty and are the
// OCR backend's problem.
package pdfextract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// ExtractText reads the PDF at path page by page and returns the concatenated
// plain text, pages joined by newlines, trimmed. Pages that fail to decode
// are skipped rather than failing the whole document.
func (e *Extractor) ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
