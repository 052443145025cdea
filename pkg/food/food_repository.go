package food

import (
	"context"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/pkg/expiry"
	"time"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string, userID string) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string, userID string) error
		GetFoods(ctx context.Context, userID string, filter string, now time.Time) ([]*entities.Food, error)
		CountFoods(ctx context.Context, userID string) (int64, error)
		GetFoodNamesExpiringBetween(ctx context.Context, userID string, from, to time.Time) ([]string, error)
		GetDashboardStats(ctx context.Context, userID string, now time.Time) (domain.DashboardStats, error)
		GetExpiringFoods(ctx context.Context, userID string, now time.Time, limit int) ([]*entities.Food, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

// dateBounds renders today and the last expiring-soon day as DATE literals,
// so comparisons against the date column do not depend on the session zone.
func dateBounds(now time.Time) (string, string) {
	today, soon := expiry.Bounds(now)
	return today.Format(domain.DateLayout), soon.Format(domain.DateLayout)
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string, userID string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Food{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodRepository) GetFoods(ctx context.Context, userID string, filter string, now time.Time) ([]*entities.Food, error) {
	var foods []*entities.Food
	query := filterFoods(r.db.WithContext(ctx).Where("user_id = ?", userID), filter, now)

	if err := query.Order("expiry_date asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// filterFoods narrows by expiry window; "expiring" includes expired foods.
func filterFoods(query *gorm.DB, filter string, now time.Time) *gorm.DB {
	today, soon := dateBounds(now)
	switch filter {
	case domain.FilterExpiring:
		return query.Where("expiry_date <= ?", soon)
	case domain.FilterExpired:
		return query.Where("expiry_date < ?", today)
	case domain.FilterSafe:
		return query.Where("expiry_date > ?", soon)
	default:
		return query
	}
}

func (r *foodRepository) CountFoods(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *foodRepository) GetFoodNamesExpiringBetween(ctx context.Context, userID string, from, to time.Time) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("user_id = ? AND expiry_date >= ? AND expiry_date <= ?",
			userID, from.Format(domain.DateLayout), to.Format(domain.DateLayout)).
		Order("expiry_date asc").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *foodRepository) GetDashboardStats(ctx context.Context, userID string, now time.Time) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	today, soon := dateBounds(now)

	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Select(`COUNT(*) AS total_foods,
			COUNT(*) FILTER (WHERE expiry_date < ?) AS expired_count,
			COUNT(*) FILTER (WHERE expiry_date >= ? AND expiry_date <= ?) AS expiring_soon_count,
			COUNT(*) FILTER (WHERE expiry_date > ?) AS safe_count`,
			today, today, soon, soon).
		Where("user_id = ?", userID).
		Scan(&stats).Error; err != nil {
		return domain.DashboardStats{}, err
	}
	return stats, nil
}

func (r *foodRepository) GetExpiringFoods(ctx context.Context, userID string, now time.Time, limit int) ([]*entities.Food, error) {
	var foods []*entities.Food
	_, soon := dateBounds(now)

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date <= ?", userID, soon).
		Order("expiry_date asc").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
