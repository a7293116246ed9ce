package repository

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

// UserRepository keeps users in memory. A separate id slice preserves
// insertion order so listings are stable across calls.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
	order []uuid.UUID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]entity.User),
	}
}

func (r *UserRepository) Create(_ context.Context, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.ErrDuplicateEmail
		}
	}

	r.users[user.ID] = user
	r.order = append(r.order, user.ID)

	return nil
}

func (r *UserRepository) Update(_ context.Context, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return entity.ErrUserNotFound
	}

	r.users[user.ID] = user

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return entity.User{}, entity.ErrUserNotFound
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Email == email {
			return r.users[id], nil
		}
	}

	return entity.User{}, entity.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]entity.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}

	return users, nil
}
