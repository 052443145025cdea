package mocks

import (
	"context"
	"frescoguard/entities"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	mu            sync.Mutex
	Notifications []*entities.Notification
	Err           error
	MarkSentErr   error
}

func (r *NotificationRepository) CreateNotifications(_ context.Context, notifications []*entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, n := range notifications {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = time.Now()
		}
		clone := *n
		r.Notifications = append(r.Notifications, &clone)
	}
	return nil
}

func (r *NotificationRepository) filter(match func(*entities.Notification) bool) []*entities.Notification {
	var res []*entities.Notification
	for _, n := range r.Notifications {
		if match(n) {
			clone := *n
			res = append(res, &clone)
		}
	}
	return res
}

func (r *NotificationRepository) GetDueUnsent(_ context.Context, userID string, now time.Time) ([]*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	res := r.filter(func(n *entities.Notification) bool {
		return n.UserID.String() == userID && !n.Sent && !n.Scheduled.After(now)
	})
	sort.SliceStable(res, func(i, j int) bool { return res[i].Scheduled.Before(res[j].Scheduled) })
	return res, nil
}

func (r *NotificationRepository) MarkSent(_ context.Context, notification *entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.MarkSentErr != nil {
		return r.MarkSentErr
	}
	for _, n := range r.Notifications {
		if n.ID == notification.ID {
			n.Title = notification.Title
			n.Message = notification.Message
			n.Sent = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *NotificationRepository) GetPending(_ context.Context, userID string, now time.Time, limit int) ([]*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	res := r.filter(func(n *entities.Notification) bool {
		return n.UserID.String() == userID && n.Sent && !n.Read && !n.Scheduled.After(now)
	})
	sort.SliceStable(res, func(i, j int) bool { return res[i].Scheduled.After(res[j].Scheduled) })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, n := range r.Notifications {
		if n.ID.String() == id && n.UserID.String() == userID {
			n.Read = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
