package app

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// TextBackend extracts plain text from the document at path. Implementations
// may fail; the extract service absorbs those failures.
type TextBackend interface {
	ExtractText(path string) (string, error)
}

// ExtractService chooses between direct text extraction and OCR by a length
// heuristic: direct output shorter than minDirectLen characters is taken to
// mean a scanned/image PDF, and the OCR backend gets a try.
type ExtractService struct {
	direct       TextBackend
	ocr          TextBackend
	minDirectLen int
	logger       *zap.Logger
}

// NewExtractService wires the two backends. ocr may be nil when OCR is
// disabled; the direct result is then final regardless of length.
func NewExtractService(direct, ocr TextBackend, minDirectLen int, logger *zap.Logger) *ExtractService {
	return &ExtractService{
		direct:       direct,
		ocr:          ocr,
		minDirectLen: minDirectLen,
		logger:       logger,
	}
}

// Extract returns the best-effort text for the document at path. It never
// fails: backend errors degrade to empty text, and the caller decides what
// an empty document means. When OCR runs but produces nothing, whatever the
// direct pass yielded (possibly "") is returned.
func (s *ExtractService) Extract(path string) string {
	text, err := s.direct.ExtractText(path)
	if err != nil {
		s.logger.Warn("direct text extraction failed", zap.String("path", path), zap.Error(err))
		text = ""
	}
	if utf8.RuneCountInString(text) >= s.minDirectLen {
		return text
	}

	if s.ocr == nil {
		return text
	}
	s.logger.Info("direct extraction below threshold, trying OCR",
		zap.String("path", path),
		zap.Int("direct_len", utf8.RuneCountInString(text)),
		zap.Int("threshold", s.minDirectLen),
	)
	ocrText, err := s.ocr.ExtractText(path)
	if err != nil {
		s.logger.Warn("ocr extraction failed", zap.String("path", path), zap.Error(err))
		return text
	}
	if ocrText == "" {
		return text
	}
	return ocrText
}
