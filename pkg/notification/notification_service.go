package notification

import (
	"context"
	"errors"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/pkg/recipe"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const PendingLimit = 10

type (
	// ExpiringFoodFinder lists the names of a user's foods whose expiry date
	// falls within [from, to].
	ExpiringFoodFinder interface {
		GetFoodNamesExpiringBetween(ctx context.Context, userID string, from, to time.Time) ([]string, error)
	}

	Deliverer interface {
		Deliver(ctx context.Context, notification *entities.Notification) error
	}

	NotificationService interface {
		ProcessDue(ctx context.Context, userID string) (domain.ProcessNotificationsResult, error)
		GetPending(ctx context.Context, userID string) ([]domain.Notification, error)
		MarkRead(ctx context.Context, id string, userID string) error
		SendTest(ctx context.Context, userID string, req domain.TestNotificationRequest) (domain.Notification, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		foods                  ExpiringFoodFinder
		generator              recipe.Generator
		deliverer              Deliverer
	}
)

// NewNotificationService accepts a nil deliverer when no delivery channel is configured.
func NewNotificationService(
	notificationRepository NotificationRepository,
	foods ExpiringFoodFinder,
	generator recipe.Generator,
	deliverer Deliverer,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		foods:                  foods,
		generator:              generator,
		deliverer:              deliverer,
	}
}

func (s *notificationService) GetPending(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.notificationRepository.GetPending(ctx, userID, time.Now(), PendingLimit)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, toDomain(n))
	}
	return res, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotificationNotFound
	}
	if err := s.notificationRepository.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return nil
}

// SendTest stores an already delivered notification so it surfaces on the
// next pending poll.
func (s *notificationService) SendTest(ctx context.Context, userID string, req domain.TestNotificationRequest) (domain.Notification, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Notification{}, domain.ErrParseUUID
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = domain.DefaultTestNotificationTitle
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = domain.DefaultTestNotificationMessage
	}

	n := &entities.Notification{
		ID:        uuid.New(),
		UserID:    userUUID,
		Title:     title,
		Message:   message,
		Type:      domain.NotificationRecipeSuggestion,
		Scheduled: time.Now(),
		Sent:      true,
	}
	if err := s.notificationRepository.CreateNotifications(ctx, []*entities.Notification{n}); err != nil {
		return domain.Notification{}, err
	}
	return toDomain(n), nil
}

func toDomain(n *entities.Notification) domain.Notification {
	var foodID *string
	if n.FoodID != nil {
		id := n.FoodID.String()
		foodID = &id
	}
	return domain.Notification{
		ID:         n.ID.String(),
		UserID:     n.UserID.String(),
		FoodID:     foodID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		Scheduled:  n.Scheduled,
		DaysOffset: n.DaysOffset,
		Sent:       n.Sent,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}
