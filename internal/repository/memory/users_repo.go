package memory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

type usersRepo struct{ s *store }

func (r *usersRepo) Create(_ context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return models.User{}, errors.New("duplicate email")
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	r.s.users[u.ID] = u
	r.s.order[u.ID] = r.s.nextSeq()
	return u, nil
}

func (r *usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (r *usersRepo) Update(_ context.Context, u models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.users[u.ID]
	if !ok {
		return repo.ErrNotFound
	}
	cur.Email = u.Email
	cur.FirstName = u.FirstName
	cur.LastName = u.LastName
	cur.UpdatedAt = time.Now()
	r.s.users[u.ID] = cur
	return nil
}

func (r *usersRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	cur.PasswordHash = passwordHash
	cur.UpdatedAt = time.Now()
	r.s.users[id] = cur
	return nil
}
