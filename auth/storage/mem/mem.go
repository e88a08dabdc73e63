package mem

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/ThomasSalomon/chicosAPP-V2/auth/storage"
	"github.com/ThomasSalomon/chicosAPP-V2/auth/users"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Storage keeps users in process memory. Unlike the academy fixture backend
// it does persist writes for the lifetime of the process: login is useless
// without the registration that preceded it.
type Storage struct {
	mu      sync.RWMutex
	log     *logrus.Entry
	byID    map[uuid.UUID]users.User
	byEmail map[string]uuid.UUID
	hashes  map[string]string
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger) *Storage {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage-mem",
	})
	log.Warn("using in-memory auth storage, users vanish on restart")
	return &Storage{
		log:     log,
		byID:    make(map[uuid.UUID]users.User),
		byEmail: make(map[string]uuid.UUID),
		hashes:  make(map[string]string),
	}
}

func (s *Storage) CreateUser(_ context.Context, user users.User, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return storage.ErrEmailTaken
	}
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user.ID
	s.hashes[user.Email] = passwordHash
	return nil
}

func (s *Storage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return user, nil
}

func (s *Storage) GetUserByEmail(_ context.Context, email string) (users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return s.byID[id], nil
}

func (s *Storage) GetPasswordHash(_ context.Context, email string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hash, ok := s.hashes[email]
	if !ok {
		return "", sql.ErrNoRows
	}
	return hash, nil
}

func (s *Storage) ListUsers(_ context.Context) ([]users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]users.User, 0, len(s.byID))
	for _, user := range s.byID {
		list = append(list, user)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].RegisteredAt.After(list[j].RegisteredAt)
	})
	return list, nil
}

func (s *Storage) UpdateUserRole(_ context.Context, id uuid.UUID, role users.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	user.Role = role
	s.byID[id] = user
	return nil
}
