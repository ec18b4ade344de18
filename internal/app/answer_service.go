package app

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"docuchat/internal/model"
	"docuchat/internal/repository"
)

// Fixed advisory replies. The query path never surfaces an error to the
// caller; every failure mode maps to one of these.
const (
	ReplyNoDocument         = "No document context found. Please upload a PDF first."
	ReplyNoReadableText     = "The document contains no readable text."
	ReplyNoRelevantPassages = "No relevant passages found."
	ReplyUnableToProcess    = "Unable to process the query at this time."
)

var wordPattern = regexp.MustCompile(`\w+`)

// AnswerService ranks a document's paragraphs against a free-text query and
// returns the top passages, joined by blank lines. Documents with a vector
// model use cosine ranking; the rest use keyword-overlap scoring.
type AnswerService struct {
	store         *repository.DocumentStore
	topK          int
	minSimilarity float64
	logger        *zap.Logger
}

func NewAnswerService(store *repository.DocumentStore, topK int, minSimilarity float64, logger *zap.Logger) *AnswerService {
	return &AnswerService{
		store:         store,
		topK:          topK,
		minSimilarity: minSimilarity,
		logger:        logger,
	}
}

// Answer resolves uid to a context and ranks its paragraphs against query.
// It always returns a user-facing string, never an error.
func (s *AnswerService) Answer(uid, query string) string {
	ctx, ok := s.store.Get(uid)
	if !ok {
		return ReplyNoDocument
	}
	if len(ctx.Paragraphs) == 0 {
		return ReplyNoReadableText
	}
	if !ctx.HasModel() {
		return s.keywordAnswer(ctx.Paragraphs, query)
	}

	reply, err := s.vectorAnswer(ctx, query)
	if err != nil {
		s.logger.Error("vector ranking failed", zap.String("uid", uid), zap.Error(err))
		return ReplyUnableToProcess
	}
	return reply
}

// keywordAnswer scores each paragraph by how many distinct query tokens it
// contains as case-insensitive substrings — presence per token, not term
// frequency. Equal scores keep document order.
func (s *AnswerService) keywordAnswer(paragraphs []string, query string) string {
	tokens := queryTokens(query)
	if len(tokens) == 0 {
		return ReplyNoRelevantPassages
	}

	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, len(paragraphs))
	for i, p := range paragraphs {
		lower := strings.ToLower(p)
		count := 0
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				count++
			}
		}
		ranked[i] = scored{index: i, score: count}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var top []string
	for _, r := range ranked {
		if len(top) == s.topK {
			break
		}
		if r.score > 0 {
			top = append(top, paragraphs[r.index])
		}
	}
	if len(top) == 0 {
		return ReplyNoRelevantPassages
	}
	return strings.Join(top, "\n\n")
}

// vectorAnswer ranks paragraphs by cosine similarity to the query over the
// document's fitted vocabulary. Paragraphs below minSimilarity are noise and
// dropped; equal scores keep document order.
func (s *AnswerService) vectorAnswer(ctx *model.DocumentContext, query string) (string, error) {
	queryVec := ctx.Model.Transform(query)
	sims, err := ctx.Model.Similarities(queryVec)
	if err != nil {
		return "", err
	}

	indices := make([]int, len(sims))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return sims[indices[i]] > sims[indices[j]]
	})

	var top []string
	for _, idx := range indices {
		if len(top) == s.topK {
			break
		}
		if sims[idx] > s.minSimilarity {
			top = append(top, ctx.Paragraphs[idx])
		}
	}
	if len(top) == 0 {
		return ReplyNoRelevantPassages, nil
	}
	return strings.Join(top, "\n\n"), nil
}

// queryTokens returns the unique lowercase word tokens of query, in first
// occurrence order.
func queryTokens(query string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(query), -1)
	seen := make(map[string]struct{}, len(raw))
	var tokens []string
	for _, t := range raw {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}
