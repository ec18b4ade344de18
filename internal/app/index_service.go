package app

import (
	"time"

	"go.uber.org/zap"

	"docuchat/internal/model"
	"docuchat/internal/pkg/segment"
	"docuchat/internal/pkg/tfidf"
	"docuchat/internal/repository"
)

// IndexService builds the per-document retrieval index: paragraph
// segmentation plus, when possible, a TF-IDF vector model over those
// paragraphs.
type IndexService struct {
	store             *repository.DocumentStore
	vectorizerEnabled bool
	logger            *zap.Logger
}

func NewIndexService(store *repository.DocumentStore, vectorizerEnabled bool, logger *zap.Logger) *IndexService {
	return &IndexService{
		store:             store,
		vectorizerEnabled: vectorizerEnabled,
		logger:            logger,
	}
}

// Build segments text, fits the vector model when the vectorizer is enabled
// and the paragraphs yield a usable vocabulary, and stores the resulting
// context under uid. Any previous context for uid is fully replaced; there
// is no merging of old and new paragraphs. A document that extracts to
// nothing still gets a context, so queries can answer "no readable text"
// rather than "no document". Build does not touch the latest-UID pointer;
// that is the upload handler's job.
func (s *IndexService) Build(uid, text string) *model.DocumentContext {
	paragraphs := segment.Paragraphs(text)
	ctx := &model.DocumentContext{
		UID:        uid,
		Text:       text,
		Paragraphs: paragraphs,
		IndexedAt:  time.Now(),
	}

	if s.vectorizerEnabled && len(paragraphs) > 0 {
		m, err := tfidf.Fit(paragraphs)
		if err != nil {
			s.logger.Warn("vector model unavailable, document will use keyword matching",
				zap.String("uid", uid),
				zap.Error(err),
			)
		} else {
			ctx.Model = m
		}
	}

	s.store.Save(ctx)
	s.logger.Info("document indexed",
		zap.String("uid", uid),
		zap.Int("paragraphs", len(paragraphs)),
		zap.Bool("vector_model", ctx.HasModel()),
	)
	return ctx
}
