// Package mocks holds in-memory repositories used by service and handler tests.
package mocks

import (
	"context"
	"frescoguard/entities"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	mu    sync.Mutex
	Users map[string]*entities.User
	Err   error
}

func NewUserRepository(users ...*entities.User) *UserRepository {
	r := &UserRepository{Users: map[string]*entities.User{}}
	for _, u := range users {
		r.Users[u.ID.String()] = u
	}
	return r
}

// Get returns a copy of the stored user, or nil.
func (r *UserRepository) Get(id string) *entities.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return nil
	}
	clone := *u
	return &clone
}

func (r *UserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	clone := *user
	r.Users[user.ID.String()] = &clone
	return nil
}

func (r *UserRepository) find(match func(*entities.User) bool) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Users {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *UserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	return r.find(func(u *entities.User) bool { return u.ID.String() == id })
}

func (r *UserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	return r.find(func(u *entities.User) bool { return u.Email == email })
}

func (r *UserRepository) GetUserByGoogleID(_ context.Context, googleID string) (*entities.User, error) {
	return r.find(func(u *entities.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (r *UserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	clone := *user
	r.Users[user.ID.String()] = &clone
	return nil
}

func (r *UserRepository) update(id string, apply func(*entities.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	u, ok := r.Users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	apply(u)
	return nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, id string, fields map[string]any) error {
	return r.update(id, func(u *entities.User) {
		if name, ok := fields["name"].(string); ok {
			u.Name = &name
		}
		if enabled, ok := fields["notifications_enabled"].(bool); ok {
			u.NotificationsEnabled = enabled
		}
	})
}

func (r *UserRepository) UpdatePlan(_ context.Context, id string, plan string, expiresAt time.Time) error {
	return r.update(id, func(u *entities.User) {
		u.Plan = plan
		u.PlanExpiresAt = &expiresAt
	})
}

func (r *UserRepository) IncrementFoodCount(_ context.Context, id string) error {
	return r.update(id, func(u *entities.User) { u.FoodCount++ })
}

func (r *UserRepository) DecrementFoodCount(_ context.Context, id string) error {
	return r.update(id, func(u *entities.User) { u.FoodCount = max(u.FoodCount-1, 0) })
}

func (r *UserRepository) IncrementPhotosTaken(_ context.Context, id string, limit int) (bool, error) {
	incremented := false
	err := r.update(id, func(u *entities.User) {
		if limit > 0 && u.PhotosTaken >= limit {
			return
		}
		u.PhotosTaken++
		incremented = true
	})
	return incremented, err
}

func (r *UserRepository) ResetPhotosTaken(_ context.Context, id string) error {
	return r.update(id, func(u *entities.User) { u.PhotosTaken = 0 })
}
