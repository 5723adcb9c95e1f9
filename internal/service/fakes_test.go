package service

import (
	"context"
	"sync"

	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory record store keyed by ObjectID.
type memStore[T any] struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]T
	order   []primitive.ObjectID
	getID   func(*T) *primitive.ObjectID
	err     error
}

func newMemStore[T any](getID func(*T) *primitive.ObjectID) *memStore[T] {
	return &memStore[T]{records: make(map[primitive.ObjectID]T), getID: getID}
}

func (s *memStore[T]) Create(_ context.Context, record T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	id := primitive.NewObjectID()
	*s.getID(&record) = id
	s.records[id] = record
	s.order = append(s.order, id)
	return &record, nil
}

func (s *memStore[T]) List(context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]T, 0, len(s.records))
	for _, id := range s.order {
		if r, ok := s.records[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore[T]) GetByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (s *memStore[T]) Update(_ context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	id := *s.getID(&record)
	if _, ok := s.records[id]; !ok {
		return repository.ErrNotFound
	}
	s.records[id] = record
	return nil
}

func (s *memStore[T]) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *memStore[T]) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.records)), nil
}

func newMenuStore() *memStore[models.MenuItem] {
	return newMemStore(func(m *models.MenuItem) *primitive.ObjectID { return &m.ID })
}

func newReservationStore() *memStore[models.Reservation] {
	return newMemStore(func(r *models.Reservation) *primitive.ObjectID { return &r.ID })
}

func newOrderStore() *memStore[models.Order] {
	return newMemStore(func(o *models.Order) *primitive.ObjectID { return &o.ID })
}

func newStaffStore() *memStore[models.StaffMember] {
	return newMemStore(func(m *models.StaffMember) *primitive.ObjectID { return &m.ID })
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
	err   error
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]models.User)}
}

func (s *memUsers) Create(_ context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.users[user.Username]; ok {
		return nil, repository.ErrDuplicateKey
	}
	user.ID = primitive.NewObjectID()
	s.users[user.Username] = user
	return &user, nil
}

func (s *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *memUsers) List(context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *memUsers) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUsers) Update(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for name, u := range s.users {
		if u.ID == user.ID {
			delete(s.users, name)
			s.users[user.Username] = user
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memUsers) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for name, u := range s.users {
		if u.ID == id {
			delete(s.users, name)
			return nil
		}
	}
	return repository.ErrNotFound
}
