package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	text string
	err  error
}

func (f fakeBackend) ExtractText(string) (string, error) {
	return f.text, f.err
}

func TestExtract_DirectTextAboveThresholdWins(t *testing.T) {
	direct := fakeBackend{text: "this is a long enough direct extraction"}
	ocr := fakeBackend{text: "ocr text that must not be used"}
	svc := NewExtractService(direct, ocr, 20, zap.NewNop())

	require.Equal(t, direct.text, svc.Extract("doc.pdf"))
}

func TestExtract_ShortDirectTextFallsBackToOCR(t *testing.T) {
	direct := fakeBackend{text: "short"}
	ocr := fakeBackend{text: "recognised scanned text"}
	svc := NewExtractService(direct, ocr, 20, zap.NewNop())

	require.Equal(t, ocr.text, svc.Extract("doc.pdf"))
}

func TestExtract_EmptyOCRKeepsDirectText(t *testing.T) {
	direct := fakeBackend{text: "short"}
	ocr := fakeBackend{text: ""}
	svc := NewExtractService(direct, ocr, 20, zap.NewNop())

	require.Equal(t, "short", svc.Extract("doc.pdf"))
}

func TestExtract_BothBackendsFailDegradeToEmpty(t *testing.T) {
	direct := fakeBackend{err: errors.New("corrupt file")}
	ocr := fakeBackend{err: errors.New("tesseract missing")}
	svc := NewExtractService(direct, ocr, 20, zap.NewNop())

	require.Equal(t, "", svc.Extract("doc.pdf"))
}

func TestExtract_OCRFailureKeepsDirectText(t *testing.T) {
	direct := fakeBackend{text: "short"}
	ocr := fakeBackend{err: errors.New("render failed")}
	svc := NewExtractService(direct, ocr, 20, zap.NewNop())

	require.Equal(t, "short", svc.Extract("doc.pdf"))
}

func TestExtract_NilOCRBackend(t *testing.T) {
	direct := fakeBackend{text: "short"}
	svc := NewExtractService(direct, nil, 20, zap.NewNop())

	require.Equal(t, "short", svc.Extract("doc.pdf"))
}

func TestExtract_ThresholdBoundary(t *testing.T) {
	// Exactly at the threshold counts as acceptable direct text.
	direct := fakeBackend{text: "12345678901234567890"}
	ocr := fakeBackend{text: "ocr text"}
	svc := NewExtractService(direct, ocr, 20, zap.NewNop())

	require.Equal(t, direct.text, svc.Extract("doc.pdf"))
}
