// Package tfidf implements a per-document TF-IDF vectorizer. Each paragraph
// of a document becomes one L2-normalised sparse vector over a vocabulary
// built solely from that document's paragraphs.
package tfidf

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	ErrEmptyCorpus     = errors.New("empty corpus for TF-IDF fit")
	ErrEmptyVocabulary = errors.New("no indexable tokens found in corpus")
)

var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Model holds the fitted vocabulary, IDF weights and one vector per paragraph.
// A Model is immutable after Fit and safe for concurrent reads.
type Model struct {
	vocabulary map[string]int
	idf        []float64
	rows       [][]float64
}

// Fit builds a Model from the document's paragraphs. It returns
// ErrEmptyCorpus for an empty paragraph sequence and ErrEmptyVocabulary when
// stop-word filtering leaves no terms to index; callers treat either as
// "vector model unavailable" and fall back to keyword matching.
func Fit(paragraphs []string) (*Model, error) {
	if len(paragraphs) == 0 {
		return nil, ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, text := range paragraphs {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Stable vocabulary ordering
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return nil, ErrEmptyVocabulary
	}

	m := &Model{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(paragraphs))
	for i, term := range terms {
		m.vocabulary[term] = i
		// Smoothed IDF
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	m.rows = make([][]float64, len(paragraphs))
	for i, text := range paragraphs {
		m.rows[i] = m.Transform(text)
	}
	return m, nil
}

// Dimension returns the vocabulary size.
func (m *Model) Dimension() int { return len(m.idf) }

// Len returns the number of paragraph vectors.
func (m *Model) Len() int { return len(m.rows) }

// Transform computes the L2-normalised TF-IDF vector for text. Tokens
// outside the fitted vocabulary contribute nothing; a text with no known
// tokens yields the zero vector.
func (m *Model) Transform(text string) []float64 {
	vec := make([]float64, len(m.idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenize(text) {
		if idx, ok := m.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * m.idf[idx]
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Similarities returns the cosine similarity between query and every
// paragraph vector, in paragraph order. Since all vectors are L2-normalised
// and weights are non-negative, each score is the dot product, in [0,1].
func (m *Model) Similarities(query []float64) ([]float64, error) {
	if len(query) != len(m.idf) {
		return nil, fmt.Errorf("query vector dimension %d does not match vocabulary size %d", len(query), len(m.idf))
	}
	sims := make([]float64, len(m.rows))
	for i, row := range m.rows {
		dot := 0.0
		for j, v := range row {
			dot += v * query[j]
		}
		sims[i] = dot
	}
	return sims, nil
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := stopwords[t]; isStop {
			continue
		}
		t = singularize(t)
		if _, isStop := stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// singularize folds trivial English plurals so a query like "dog" still
// matches a paragraph mentioning "dogs". Anything smarter than trailing-s
// stripping belongs in a real stemmer.
func singularize(tok string) string {
	tok = strings.TrimSuffix(tok, "'s")
	tok = strings.TrimSuffix(tok, "’s")
	if len(tok) > 3 && strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") && !strings.HasSuffix(tok, "us") {
		return tok[:len(tok)-1]
	}
	return tok
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "not", "no", "nor",
		"do", "does", "did", "have", "has", "had", "he", "she", "they",
		"them", "his", "her", "its", "their", "we", "you", "your", "i",
		"me", "my", "what", "which", "who", "whom", "there", "here",
		"when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "only", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
