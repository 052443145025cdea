package mocks

import (
	"context"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/pkg/expiry"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type FoodRepository struct {
	mu    sync.Mutex
	Foods []*entities.Food
	Err   error
}

func (r *FoodRepository) CreateFood(_ context.Context, food *entities.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	now := time.Now()
	food.CreatedAt, food.UpdatedAt = now, now
	clone := *food
	r.Foods = append(r.Foods, &clone)
	return nil
}

func (r *FoodRepository) GetFoodByID(_ context.Context, id string, userID string) (*entities.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, f := range r.Foods {
		if f.ID.String() == id && f.UserID.String() == userID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FoodRepository) UpdateFood(_ context.Context, food *entities.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, f := range r.Foods {
		if f.ID == food.ID {
			food.UpdatedAt = time.Now()
			clone := *food
			r.Foods[i] = &clone
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *FoodRepository) DeleteFood(_ context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, f := range r.Foods {
		if f.ID.String() == id && f.UserID.String() == userID {
			r.Foods = append(r.Foods[:i], r.Foods[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *FoodRepository) owned(userID string, match func(*entities.Food) bool) []*entities.Food {
	var res []*entities.Food
	for _, f := range r.Foods {
		if f.UserID.String() == userID && match(f) {
			clone := *f
			res = append(res, &clone)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].ExpiryDate.Before(res[j].ExpiryDate) })
	return res
}

func (r *FoodRepository) GetFoods(_ context.Context, userID string, filter string, now time.Time) ([]*entities.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	today, soon := expiry.Bounds(now)
	return r.owned(userID, func(f *entities.Food) bool {
		d := expiry.Date(f.ExpiryDate)
		switch filter {
		case domain.FilterExpiring:
			return !d.After(soon)
		case domain.FilterExpired:
			return d.Before(today)
		case domain.FilterSafe:
			return d.After(soon)
		default:
			return true
		}
	}), nil
}

func (r *FoodRepository) CountFoods(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.owned(userID, func(*entities.Food) bool { return true }))), nil
}

func (r *FoodRepository) GetFoodNamesExpiringBetween(_ context.Context, userID string, from, to time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var names []string
	for _, f := range r.owned(userID, func(f *entities.Food) bool {
		d := expiry.Date(f.ExpiryDate)
		return !d.Before(expiry.Date(from)) && !d.After(expiry.Date(to))
	}) {
		names = append(names, f.Name)
	}
	return names, nil
}

func (r *FoodRepository) GetDashboardStats(_ context.Context, userID string, now time.Time) (domain.DashboardStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return domain.DashboardStats{}, r.Err
	}
	var stats domain.DashboardStats
	for _, f := range r.owned(userID, func(*entities.Food) bool { return true }) {
		stats.TotalFoods++
		switch expiry.Classify(f.ExpiryDate, now).Status {
		case expiry.StatusExpired:
			stats.ExpiredCount++
		case expiry.StatusExpiringSoon:
			stats.ExpiringSoonCount++
		default:
			stats.SafeCount++
		}
	}
	return stats, nil
}

func (r *FoodRepository) GetExpiringFoods(_ context.Context, userID string, now time.Time, limit int) ([]*entities.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	_, soon := expiry.Bounds(now)
	res := r.owned(userID, func(f *entities.Food) bool { return !expiry.Date(f.ExpiryDate).After(soon) })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
