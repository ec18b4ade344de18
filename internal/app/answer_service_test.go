package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docuchat/internal/model"
	"docuchat/internal/repository"
)

func newAnswerFixture(t *testing.T) (*repository.DocumentStore, *IndexService, *AnswerService) {
	t.Helper()
	store := repository.NewDocumentStore()
	indexService := NewIndexService(store, true, zap.NewNop())
	answerService := NewAnswerService(store, 3, 0.01, zap.NewNop())
	return store, indexService, answerService
}

func TestAnswer_UnknownUIDIsIdempotent(t *testing.T) {
	_, _, answerService := newAnswerFixture(t)

	require.Equal(t, ReplyNoDocument, answerService.Answer("missing", "x"))
	require.Equal(t, ReplyNoDocument, answerService.Answer("missing", "x"))
}

func TestAnswer_EmptyTextDocument(t *testing.T) {
	store, indexService, answerService := newAnswerFixture(t)

	indexService.Build("doc1", "")
	_, ok := store.Get("doc1")
	require.True(t, ok, "empty extraction must still create a context")
	require.Equal(t, ReplyNoReadableText, answerService.Answer("doc1", "anything"))
}

func TestAnswer_VectorMode_EndToEnd(t *testing.T) {
	_, indexService, answerService := newAnswerFixture(t)

	ctx := indexService.Build("doc1", "Cats are mammals.\n\nDogs are loyal.")
	require.Equal(t, []string{"Cats are mammals.", "Dogs are loyal."}, ctx.Paragraphs)
	require.True(t, ctx.HasModel())

	require.Equal(t, "Dogs are loyal.", answerService.Answer("doc1", "dog"))
	require.Equal(t, ReplyNoRelevantPassages, answerService.Answer("doc1", "animal"))
}

func TestAnswer_KeywordMode_EndToEnd(t *testing.T) {
	store, _, answerService := newAnswerFixture(t)
	store.Save(&model.DocumentContext{
		UID:        "doc1",
		Paragraphs: []string{"Cats are mammals.", "Dogs are loyal."},
	})

	require.Equal(t, "Dogs are loyal.", answerService.Answer("doc1", "dog"))
	require.Equal(t, ReplyNoRelevantPassages, answerService.Answer("doc1", "animal"))
}

func TestAnswer_KeywordMode_IncludesEveryMatchExcludesRest(t *testing.T) {
	store, _, answerService := newAnswerFixture(t)
	store.Save(&model.DocumentContext{
		UID: "doc1",
		Paragraphs: []string{
			"Widget assembly requires care.",
			"Unrelated shipping notes.",
			"A second widget passage.",
		},
	})

	reply := answerService.Answer("doc1", "widget")
	passages := strings.Split(reply, "\n\n")
	require.Equal(t, []string{
		"Widget assembly requires care.",
		"A second widget passage.",
	}, passages)
}

func TestAnswer_KeywordMode_TieBreakKeepsDocumentOrder(t *testing.T) {
	store, _, answerService := newAnswerFixture(t)
	store.Save(&model.DocumentContext{
		UID:        "doc1",
		Paragraphs: []string{"alpha one", "alpha two", "alpha three", "alpha four"},
	})

	reply := answerService.Answer("doc1", "alpha")
	require.Equal(t, []string{"alpha one", "alpha two", "alpha three"}, strings.Split(reply, "\n\n"))
}

func TestAnswer_KeywordMode_ScoresDistinctTokenPresence(t *testing.T) {
	store, _, answerService := newAnswerFixture(t)
	store.Save(&model.DocumentContext{
		UID: "doc1",
		Paragraphs: []string{
			"alpha alpha alpha",
			"alpha beta",
		},
	})

	// Repeated occurrences of one token do not outrank a paragraph matching
	// two distinct tokens.
	reply := answerService.Answer("doc1", "alpha beta")
	require.Equal(t, []string{"alpha beta", "alpha alpha alpha"}, strings.Split(reply, "\n\n"))
}

func TestAnswer_KeywordMode_EmptyQueryTokens(t *testing.T) {
	store, _, answerService := newAnswerFixture(t)
	store.Save(&model.DocumentContext{
		UID:        "doc1",
		Paragraphs: []string{"some text"},
	})

	require.Equal(t, ReplyNoRelevantPassages, answerService.Answer("doc1", "!!! ???"))
}

func TestAnswer_VectorMode_TopKLimit(t *testing.T) {
	_, indexService, answerService := newAnswerFixture(t)

	text := "widget alpha\n\nwidget beta\n\nwidget gamma\n\nwidget delta"
	ctx := indexService.Build("doc1", text)
	require.True(t, ctx.HasModel())

	reply := answerService.Answer("doc1", "widget")
	require.NotEqual(t, ReplyNoRelevantPassages, reply)
	require.Len(t, strings.Split(reply, "\n\n"), 3)
}
