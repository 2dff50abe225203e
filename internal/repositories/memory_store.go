package repositories

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// memoryStore is an insertion-ordered, mutex-guarded document map. It enforces
// the same unique fields the Mongo indexes do.
type memoryStore[T any] struct {
	mu     sync.RWMutex
	docs   map[primitive.ObjectID]T
	order  []primitive.ObjectID
	idOf   func(*T) primitive.ObjectID
	unique []uniqueKey[T]
	clone  func(T) T
}

type uniqueKey[T any] struct {
	field string
	key   func(*T) string
}

func newMemoryStore[T any](idOf func(*T) primitive.ObjectID) *memoryStore[T] {
	return &memoryStore[T]{
		docs:  make(map[primitive.ObjectID]T),
		idOf:  idOf,
		clone: func(v T) T { return v },
	}
}

func (s *memoryStore[T]) addUnique(field string, key func(*T) string) {
	s.unique = append(s.unique, uniqueKey[T]{field: field, key: key})
}

func (s *memoryStore[T]) list(page, limit int) ([]T, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := int64(len(s.order))
	start := models.Offset(page, limit)
	docs := []T{}
	if start >= total {
		return docs, total
	}
	end := total
	if int64(limit) < total-start {
		end = start + int64(limit)
	}
	for _, id := range s.order[start:end] {
		docs = append(docs, s.clone(s.docs[id]))
	}
	return docs, total
}

func (s *memoryStore[T]) get(id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[oid]
	if !ok {
		return nil, nil
	}
	doc = s.clone(doc)
	return &doc, nil
}

func (s *memoryStore[T]) insert(doc *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(doc)
	if _, ok := s.docs[id]; ok {
		return &apperrors.DuplicateKeyError{Field: "_id"}
	}
	if err := s.checkUnique(doc, id); err != nil {
		return err
	}
	s.docs[id] = s.clone(*doc)
	s.order = append(s.order, id)
	return nil
}

func (s *memoryStore[T]) replace(doc *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(doc)
	if _, ok := s.docs[id]; !ok {
		return nil, nil
	}
	if err := s.checkUnique(doc, id); err != nil {
		return nil, err
	}
	s.docs[id] = s.clone(*doc)
	updated := s.clone(*doc)
	return &updated, nil
}

func (s *memoryStore[T]) remove(id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[oid]
	if !ok {
		return nil, nil
	}
	delete(s.docs, oid)
	for i, v := range s.order {
		if v == oid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return &doc, nil
}

// checkUnique must be called with s.mu held.
func (s *memoryStore[T]) checkUnique(doc *T, self primitive.ObjectID) error {
	for _, u := range s.unique {
		want := u.key(doc)
		for id, other := range s.docs {
			if id != self && u.key(&other) == want {
				return &apperrors.DuplicateKeyError{Field: u.field}
			}
		}
	}
	return nil
}
