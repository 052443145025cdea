package notification

import (
	"context"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/pkg/expiry"
	"frescoguard/pkg/metrics"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const reminderHour = 9

// ReminderOffsets are the days before expiry at which a reminder fires.
var ReminderOffsets = []int{3, 2, 1, 0}

const (
	titleExpirySoon  = "Alimento próximo a vencer"
	titleExpiryToday = "Alimento vence hoy"
)

type (
	Scheduler interface {
		ScheduleFoodNotifications(ctx context.Context, foodID uuid.UUID, foodName string, expiryDate time.Time, userID uuid.UUID) int
	}

	scheduler struct {
		notificationRepository NotificationRepository
	}
)

func NewScheduler(notificationRepository NotificationRepository) Scheduler {
	return &scheduler{notificationRepository: notificationRepository}
}

// ReminderMessage is the text stored for a reminder offset days before expiry.
func ReminderMessage(foodName string, offset int) string {
	switch offset {
	case 0:
		return fmt.Sprintf("%s vence hoy", foodName)
	case 1:
		return fmt.Sprintf("%s vence mañana", foodName)
	default:
		return fmt.Sprintf("%s vence en %d días", foodName, offset)
	}
}

// BuildFoodNotifications returns one reminder per offset that has not yet
// passed, scheduled at 09:00 in now's location on the offset date.
func BuildFoodNotifications(foodID uuid.UUID, foodName string, expiryDate time.Time, userID uuid.UUID, now time.Time) []*entities.Notification {
	diffDays := expiry.DaysUntil(expiryDate, now)
	y, m, d := expiryDate.Date()

	var notifications []*entities.Notification
	for _, offset := range ReminderOffsets {
		if diffDays < offset {
			continue
		}

		title, kind := titleExpirySoon, domain.NotificationExpirySoon
		if offset == 0 {
			title, kind = titleExpiryToday, domain.NotificationExpiryToday
		}

		id := foodID
		daysOffset := offset
		notifications = append(notifications, &entities.Notification{
			ID:         uuid.New(),
			UserID:     userID,
			FoodID:     &id,
			Title:      title,
			Message:    ReminderMessage(foodName, offset),
			Type:       kind,
			Scheduled:  time.Date(y, m, d-offset, reminderHour, 0, 0, 0, now.Location()),
			DaysOffset: &daysOffset,
			Sent:       false,
		})
	}
	return notifications
}

// ScheduleFoodNotifications never fails the caller; storage errors are logged
// and reported as zero rows scheduled.
func (s *scheduler) ScheduleFoodNotifications(ctx context.Context, foodID uuid.UUID, foodName string, expiryDate time.Time, userID uuid.UUID) int {
	notifications := BuildFoodNotifications(foodID, foodName, expiryDate, userID, time.Now())
	if len(notifications) == 0 {
		return 0
	}

	if err := s.notificationRepository.CreateNotifications(ctx, notifications); err != nil {
		log.Errorf("error scheduling notifications for food %s (user %s): %v", foodID, userID, err)
		return 0
	}

	for _, n := range notifications {
		metrics.NotificationsScheduled.WithLabelValues(n.Type).Inc()
	}
	return len(notifications)
}
