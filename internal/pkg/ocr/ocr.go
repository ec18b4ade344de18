// Package ocr extracts text from scanned PDFs by rasterizing each page with
// MuPDF (go-fitz) and running Tesseract (gosseract) over the images.
package ocr

import (
	"strings"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

type Extractor struct {
	language string
	dpi      float64
}

func New(language string, dpi float64) *Extractor {
	if dpi <= 0 {
		dpi = 150
	}
	return &Extractor{language: language, dpi: dpi}
}

// ExtractText rasterizes every page of the PDF at path and recognises text
// per page, pages joined by newlines, trimmed. A page that fails to render
// or recognise is skipped; the document fails only when it cannot be opened
// at all or Tesseract is unusable.
func (e *Extractor) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	client := gosseract.NewClient()
	defer client.Close()
	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return "", err
		}
	}

	var pages []string
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImagePNG(i, e.dpi)
		if err != nil {
			continue
		}
		if err := client.SetImageFromBytes(img); err != nil {
			continue
		}
		text, err := client.Text()
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
