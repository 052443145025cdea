package notification

import (
	"context"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/pkg/expiry"
	"frescoguard/pkg/metrics"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// reminderPhrases maps legacy reminder texts, stored before days_offset
// existed, to their offset.
var reminderPhrases = []struct {
	phrase string
	days   int
}{
	{"vence en 3 días", 3},
	{"vence en 2 días", 2},
	{"vence mañana", 1},
	{"vence hoy", 0},
}

// LookaheadDays returns how many days ahead the reminder looks for expiring foods.
func LookaheadDays(n *entities.Notification) int {
	if n.DaysOffset != nil {
		return *n.DaysOffset
	}
	for _, p := range reminderPhrases {
		if strings.Contains(n.Message, p.phrase) {
			return p.days
		}
	}
	return 0
}

func (s *notificationService) ProcessDue(ctx context.Context, userID string) (domain.ProcessNotificationsResult, error) {
	now := time.Now()
	due, err := s.notificationRepository.GetDueUnsent(ctx, userID, now)
	if err != nil {
		return domain.ProcessNotificationsResult{}, err
	}

	result := domain.ProcessNotificationsResult{Total: len(due)}
	for _, n := range due {
		if err := s.process(ctx, userID, n, now); err != nil {
			log.Errorf("error processing notification %s (user %s): %v", n.ID, userID, err)
			metrics.NotificationsProcessed.WithLabelValues("error").Inc()
			result.Errors++
			continue
		}
		metrics.NotificationsProcessed.WithLabelValues("sent").Inc()
		result.Processed++
	}
	return result, nil
}

func (s *notificationService) process(ctx context.Context, userID string, n *entities.Notification, now time.Time) error {
	today := expiry.Date(now)
	until := today.AddDate(0, 0, LookaheadDays(n))

	names, err := s.foods.GetFoodNamesExpiringBetween(ctx, userID, today, until)
	if err != nil {
		return fmt.Errorf("find expiring foods: %w", err)
	}

	if names = dedupe(names); len(names) > 0 {
		suggestion, err := s.generator.Generate(ctx, names)
		if err != nil {
			log.Warnf("error generating recipe for notification %s: %v", n.ID, err)
		} else if suggestion.Title != "" {
			n.Message = fmt.Sprintf("%s. Te recomendamos: %s", n.Message, suggestion.Title)
			if suggestion.Description != "" {
				n.Message += " - " + suggestion.Description
			}
		}
	}

	n.Sent = true
	if err := s.notificationRepository.MarkSent(ctx, n); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	if s.deliverer != nil {
		if err := s.deliverer.Deliver(ctx, n); err != nil {
			log.Warnf("error delivering notification %s: %v", n.ID, err)
		}
	}
	return nil
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := names[:0:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
