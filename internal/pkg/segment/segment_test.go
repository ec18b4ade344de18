package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParagraphs_BlankLineSeparated(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph.\n \n\nThird paragraph."
	require.Equal(t, []string{
		"First paragraph.",
		"Second paragraph.",
		"Third paragraph.",
	}, Paragraphs(text))
}

func TestParagraphs_TrimsUnits(t *testing.T) {
	text := "  Cats are mammals.  \n\n\tDogs are loyal.\t"
	require.Equal(t, []string{"Cats are mammals.", "Dogs are loyal."}, Paragraphs(text))
}

func TestParagraphs_LineFallback(t *testing.T) {
	text := "line one\nline two\nline three"
	require.Equal(t, []string{"line one", "line two", "line three"}, Paragraphs(text))
}

func TestParagraphs_LineFallbackSkipsEmptyLines(t *testing.T) {
	// No run of two consecutive newlines, but trailing whitespace-only line.
	text := "only line\n   "
	require.Equal(t, []string{"only line"}, Paragraphs(text))
}

func TestParagraphs_EmptyInput(t *testing.T) {
	require.Empty(t, Paragraphs(""))
	require.Empty(t, Paragraphs("  \n \n\t\n"))
}

func TestParagraphs_OrderPreserved(t *testing.T) {
	text := "b\n\na\n\nc"
	require.Equal(t, []string{"b", "a", "c"}, Paragraphs(text))
}
