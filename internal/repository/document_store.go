package repository

import (
	"sync"

	"docuchat/internal/model"
)

// DocumentStore keeps document contexts for the lifetime of the process,
// keyed by UID, plus a pointer to the most recently indexed UID used as the
// default when a query names no document. All access is mutex-guarded;
// saving a context and updating the latest pointer are two separate calls,
// so a query racing an upload may still see the previous latest document
// (last writer wins).
type DocumentStore struct {
	mu     sync.RWMutex
	docs   map[string]*model.DocumentContext
	latest string
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*model.DocumentContext)}
}

// Save stores the context, replacing any existing context for the same UID.
func (s *DocumentStore) Save(ctx *model.DocumentContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[ctx.UID] = ctx
}

func (s *DocumentStore) Get(uid string) (*model.DocumentContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx, ok := s.docs[uid]
	return ctx, ok
}

func (s *DocumentStore) SetLatest(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = uid
}

// Latest returns the most recently indexed UID, or "" before any upload.
func (s *DocumentStore) Latest() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
