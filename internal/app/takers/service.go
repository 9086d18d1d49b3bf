package takers

import domaintakers "setpiece-service/internal/domain/takers"

// Store defines the contract for persisting and retrieving the document.
type Store interface {
	Document() *domaintakers.Document
	GetClub(name string) (domaintakers.ClubRecord, bool)
	Clubs() []string
	SetDocument(doc *domaintakers.Document)
}

// Service coordinates taker lookups using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Document returns the current extracted document.
func (s *Service) Document() *domaintakers.Document {
	return s.store.Document()
}

// ClubByName returns a single club's record if present.
func (s *Service) ClubByName(name string) (domaintakers.ClubRecord, bool) {
	return s.store.GetClub(name)
}

// Clubs returns the club names currently held, in document order.
func (s *Service) Clubs() []string {
	return s.store.Clubs()
}

// Replace swaps the in-memory document with a new extraction result.
func (s *Service) Replace(doc *domaintakers.Document) {
	s.store.SetDocument(doc)
}
