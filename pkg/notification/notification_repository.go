package notification

import (
	"context"
	"frescoguard/entities"
	"time"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotifications(ctx context.Context, notifications []*entities.Notification) error
		GetDueUnsent(ctx context.Context, userID string, now time.Time) ([]*entities.Notification, error)
		MarkSent(ctx context.Context, notification *entities.Notification) error
		GetPending(ctx context.Context, userID string, now time.Time, limit int) ([]*entities.Notification, error)
		MarkRead(ctx context.Context, id string, userID string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotifications inserts all rows in one statement.
func (r *notificationRepository) CreateNotifications(ctx context.Context, notifications []*entities.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&notifications).Error
}

func (r *notificationRepository) GetDueUnsent(ctx context.Context, userID string, now time.Time) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND sent = ? AND scheduled <= ?", userID, false, now).
		Order("scheduled asc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkSent(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", notification.ID).
		Updates(map[string]any{
			"title":   notification.Title,
			"message": notification.Message,
			"sent":    true,
		}).Error
}

func (r *notificationRepository) GetPending(ctx context.Context, userID string, now time.Time, limit int) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND sent = ? AND read = ? AND scheduled <= ?", userID, true, false, now).
		Order("scheduled desc").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string, userID string) error {
	res := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
