package data

import (
	"context"
	"sync"
)

// MemoryStore keeps books in process memory. Ids start at 1 and are never
// reused, even after a delete. It is safe for concurrent use; concurrent
// writes to the same id resolve as last-write-wins.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64 // ids in insertion order
	books  map[int64]Book
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		books:  make(map[int64]Book),
	}
}

// List returns copies of every book in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]*Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*Book, 0, len(s.books))
	for _, id := range s.order {
		book := s.books[id]
		books = append(books, &book)
	}
	return books, nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return NotFound()
	}
	return OK(&book)
}

func (s *MemoryStore) Create(_ context.Context, in BookInput) Result {
	if violations := validate(in); violations != nil {
		return Invalid(nil, violations)
	}

	var book Book
	in.apply(&book)

	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = s.nextID
	s.nextID++
	s.books[book.ID] = book
	s.order = append(s.order, book.ID)

	return OK(&book)
}

func (s *MemoryStore) Update(_ context.Context, id int64, in BookInput) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.books[id]
	if !ok {
		return NotFound()
	}
	if violations := validate(in); violations != nil {
		return Invalid(&current, violations)
	}

	updated := Book{ID: id}
	in.apply(&updated)
	s.books[id] = updated

	return OK(&updated)
}

func (s *MemoryStore) Delete(_ context.Context, id int64) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return NotFound()
	}
	delete(s.books, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return OK(nil)
}
