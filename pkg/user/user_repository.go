package user

import (
	"context"
	"frescoguard/entities"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByGoogleID(ctx context.Context, googleID string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		UpdateProfile(ctx context.Context, id string, fields map[string]any) error
		UpdatePlan(ctx context.Context, id string, plan string, expiresAt time.Time) error
		IncrementFoodCount(ctx context.Context, id string) error
		DecrementFoodCount(ctx context.Context, id string) error
		IncrementPhotosTaken(ctx context.Context, id string, limit int) (bool, error)
		ResetPhotosTaken(ctx context.Context, id string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) UpdatePlan(ctx context.Context, id string, plan string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"plan": plan, "plan_expires_at": expiresAt}).Error
}

// Counters are updated in a single statement so concurrent requests cannot
// lose an increment.

func incrementFoodCount(tx *gorm.DB, id string) *gorm.DB {
	return tx.Model(&entities.User{}).Where("id = ?", id).
		Update("food_count", gorm.Expr("food_count + 1"))
}

func decrementFoodCount(tx *gorm.DB, id string) *gorm.DB {
	return tx.Model(&entities.User{}).Where("id = ?", id).
		Update("food_count", gorm.Expr("GREATEST(food_count - 1, 0)"))
}

func incrementPhotosTaken(tx *gorm.DB, id string, limit int) *gorm.DB {
	query := tx.Model(&entities.User{}).Where("id = ?", id)
	if limit > 0 {
		query = query.Where("photos_taken < ?", limit)
	}
	return query.Update("photos_taken", gorm.Expr("photos_taken + 1"))
}

func (r *userRepository) IncrementFoodCount(ctx context.Context, id string) error {
	return incrementFoodCount(r.db.WithContext(ctx), id).Error
}

func (r *userRepository) DecrementFoodCount(ctx context.Context, id string) error {
	return decrementFoodCount(r.db.WithContext(ctx), id).Error
}

// IncrementPhotosTaken reports false when limit (if positive) was already reached.
func (r *userRepository) IncrementPhotosTaken(ctx context.Context, id string, limit int) (bool, error) {
	res := incrementPhotosTaken(r.db.WithContext(ctx), id, limit)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) ResetPhotosTaken(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Update("photos_taken", 0).Error
}
