package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"docuchat/internal/model"
)

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := NewDocumentStore()

	_, ok := store.Get("doc1")
	require.False(t, ok)

	store.Save(&model.DocumentContext{UID: "doc1", Paragraphs: []string{"p"}})
	ctx, ok := store.Get("doc1")
	require.True(t, ok)
	require.Equal(t, "doc1", ctx.UID)
	require.Equal(t, 1, store.Count())
}

func TestDocumentStore_SaveReplaces(t *testing.T) {
	store := NewDocumentStore()
	store.Save(&model.DocumentContext{UID: "doc1", Paragraphs: []string{"old"}})
	store.Save(&model.DocumentContext{UID: "doc1", Paragraphs: []string{"new"}})

	ctx, ok := store.Get("doc1")
	require.True(t, ok)
	require.Equal(t, []string{"new"}, ctx.Paragraphs)
	require.Equal(t, 1, store.Count())
}

func TestDocumentStore_LatestPointer(t *testing.T) {
	store := NewDocumentStore()
	require.Empty(t, store.Latest())

	store.SetLatest("doc1")
	store.SetLatest("doc2")
	require.Equal(t, "doc2", store.Latest())
}
