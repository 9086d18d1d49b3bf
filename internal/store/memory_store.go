package store

import (
	"sync"

	"setpiece-service/internal/domain/takers"
)

// MemoryStore keeps a thread-safe snapshot of the extracted document in memory.
type MemoryStore struct {
	mu  sync.RWMutex
	doc *takers.Document
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		doc: takers.NewDocument(),
	}
}

// Document returns the current document. Callers must treat it as read-only;
// replacement happens wholesale via SetDocument.
func (s *MemoryStore) Document() *takers.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// GetClub retrieves one club's record by name.
func (s *MemoryStore) GetClub(name string) (takers.ClubRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Get(name)
}

// Clubs returns the club names currently held, in document order.
func (s *MemoryStore) Clubs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clubs()
}

// SetDocument replaces the existing document with a new snapshot.
func (s *MemoryStore) SetDocument(doc *takers.Document) {
	if doc == nil {
		doc = takers.NewDocument()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}
