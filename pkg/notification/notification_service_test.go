package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/internal/mocks"
	"frescoguard/pkg/expiry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foodFinder struct {
	names    []string
	err      error
	from, to time.Time
	calls    int
}

func (f *foodFinder) GetFoodNamesExpiringBetween(_ context.Context, _ string, from, to time.Time) ([]string, error) {
	f.calls++
	f.from, f.to = from, to
	return f.names, f.err
}

type countingGenerator struct {
	calls  int
	got    []string
	recipe domain.GeneratedRecipe
	err    error
}

func (g *countingGenerator) Generate(_ context.Context, ingredients []string) (domain.GeneratedRecipe, error) {
	g.calls++
	g.got = ingredients
	return g.recipe, g.err
}

type recordingDeliverer struct {
	delivered []string
	err       error
}

func (d *recordingDeliverer) Deliver(_ context.Context, n *entities.Notification) error {
	d.delivered = append(d.delivered, n.Message)
	return d.err
}

func dueNotification(userID uuid.UUID, message string, offset *int) *entities.Notification {
	return &entities.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      "Alimento próximo a vencer",
		Message:    message,
		Type:       domain.NotificationExpirySoon,
		Scheduled:  time.Now().Add(-time.Hour),
		DaysOffset: offset,
	}
}

func TestLookaheadDays(t *testing.T) {
	two := 2
	tests := []struct {
		name string
		n    *entities.Notification
		want int
	}{
		{name: "offset column wins", n: &entities.Notification{Message: "Leche vence hoy", DaysOffset: &two}, want: 2},
		{name: "tomorrow phrase", n: &entities.Notification{Message: "Leche vence mañana"}, want: 1},
		{name: "three days phrase", n: &entities.Notification{Message: "Leche vence en 3 días"}, want: 3},
		{name: "two days phrase", n: &entities.Notification{Message: "Leche vence en 2 días"}, want: 2},
		{name: "today phrase", n: &entities.Notification{Message: "Leche vence hoy"}, want: 0},
		{name: "unknown text", n: &entities.Notification{Message: "Hola"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LookaheadDays(tt.n))
		})
	}
}

func TestProcessDueAugmentsWithRecipe(t *testing.T) {
	userID := uuid.New()
	repo := &mocks.NotificationRepository{}
	require.NoError(t, repo.CreateNotifications(context.Background(), []*entities.Notification{
		dueNotification(userID, "Leche vence mañana", nil),
	}))

	foods := &foodFinder{names: []string{"Leche", "Leche", "Yogur"}}
	gen := &countingGenerator{recipe: domain.GeneratedRecipe{Title: "Batido", Description: "Rápido"}}
	deliverer := &recordingDeliverer{}
	svc := NewNotificationService(repo, foods, gen, deliverer)

	result, err := svc.ProcessDue(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ProcessNotificationsResult{Processed: 1, Errors: 0, Total: 1}, result)

	today := expiry.Date(time.Now())
	assert.Equal(t, today, foods.from)
	assert.Equal(t, today.AddDate(0, 0, 1), foods.to)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, []string{"Leche", "Yogur"}, gen.got)

	want := "Leche vence mañana. Te recomendamos: Batido - Rápido"
	assert.Equal(t, want, repo.Notifications[0].Message)
	assert.True(t, repo.Notifications[0].Sent)
	assert.Equal(t, []string{want}, deliverer.delivered)
}

func TestProcessDueWithoutFoodsSkipsGeneration(t *testing.T) {
	userID := uuid.New()
	zero := 0
	repo := &mocks.NotificationRepository{}
	require.NoError(t, repo.CreateNotifications(context.Background(), []*entities.Notification{
		dueNotification(userID, "Pan vence hoy", &zero),
	}))

	gen := &countingGenerator{}
	svc := NewNotificationService(repo, &foodFinder{}, gen, nil)

	result, err := svc.ProcessDue(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Zero(t, gen.calls)
	assert.Equal(t, "Pan vence hoy", repo.Notifications[0].Message)
	assert.True(t, repo.Notifications[0].Sent)
}

func TestProcessDueToleratesGeneratorAndDeliveryFailures(t *testing.T) {
	userID := uuid.New()
	repo := &mocks.NotificationRepository{}
	require.NoError(t, repo.CreateNotifications(context.Background(), []*entities.Notification{
		dueNotification(userID, "Huevos vence en 2 días", nil),
	}))

	gen := &countingGenerator{err: errors.New("unavailable")}
	deliverer := &recordingDeliverer{err: errors.New("smtp down")}
	svc := NewNotificationService(repo, &foodFinder{names: []string{"Huevos"}}, gen, deliverer)

	result, err := svc.ProcessDue(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Huevos vence en 2 días", repo.Notifications[0].Message)
	assert.True(t, repo.Notifications[0].Sent)
}

func TestProcessDueCountsErrors(t *testing.T) {
	userID := uuid.New()
	repo := &mocks.NotificationRepository{}
	require.NoError(t, repo.CreateNotifications(context.Background(), []*entities.Notification{
		dueNotification(userID, "Leche vence hoy", nil),
		dueNotification(userID, "Pan vence hoy", nil),
	}))

	svc := NewNotificationService(repo, &foodFinder{err: errors.New("timeout")}, &countingGenerator{}, nil)

	result, err := svc.ProcessDue(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ProcessNotificationsResult{Processed: 0, Errors: 2, Total: 2}, result)
	assert.False(t, repo.Notifications[0].Sent)
}

func TestProcessDueIgnoresFutureAndOtherUsers(t *testing.T) {
	userID := uuid.New()
	future := dueNotification(userID, "Leche vence hoy", nil)
	future.Scheduled = time.Now().Add(24 * time.Hour)

	repo := &mocks.NotificationRepository{}
	require.NoError(t, repo.CreateNotifications(context.Background(), []*entities.Notification{
		future,
		dueNotification(uuid.New(), "Pan vence hoy", nil),
	}))

	result, err := NewNotificationService(repo, &foodFinder{}, &countingGenerator{}, nil).
		ProcessDue(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ProcessNotificationsResult{}, result)
}

func TestPendingAndMarkRead(t *testing.T) {
	userID := uuid.New()
	repo := &mocks.NotificationRepository{}
	svc := NewNotificationService(repo, &foodFinder{}, &countingGenerator{}, nil)
	ctx := context.Background()

	pending, err := svc.GetPending(ctx, userID.String())
	require.NoError(t, err)
	assert.Empty(t, pending)

	sent, err := svc.SendTest(ctx, userID.String(), domain.TestNotificationRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTestNotificationTitle, sent.Title)
	assert.Equal(t, domain.DefaultTestNotificationMessage, sent.Message)
	assert.True(t, sent.Sent)

	pending, err = svc.GetPending(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, sent.ID, pending[0].ID)

	assert.ErrorIs(t, svc.MarkRead(ctx, "bogus", userID.String()), domain.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, sent.ID, uuid.NewString()), domain.ErrNotificationNotFound)
	require.NoError(t, svc.MarkRead(ctx, sent.ID, userID.String()))

	pending, err = svc.GetPending(ctx, userID.String())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSendTestKeepsCustomText(t *testing.T) {
	svc := NewNotificationService(&mocks.NotificationRepository{}, &foodFinder{}, &countingGenerator{}, nil)
	n, err := svc.SendTest(context.Background(), uuid.NewString(), domain.TestNotificationRequest{Title: "Hola", Message: "Mundo"})
	require.NoError(t, err)
	assert.Equal(t, "Hola", n.Title)
	assert.Equal(t, "Mundo", n.Message)
	assert.Equal(t, domain.NotificationRecipeSuggestion, n.Type)

	_, err = svc.SendTest(context.Background(), "bogus", domain.TestNotificationRequest{})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestMailDelivererSkipsDisabledUsers(t *testing.T) {
	enabled := &entities.User{ID: uuid.New(), Email: "ana@example.com", NotificationsEnabled: true}
	disabled := &entities.User{ID: uuid.New(), Email: "luis@example.com"}
	users := mocks.NewUserRepository(enabled, disabled)

	var sentTo []string
	d := NewMailDeliverer(users, func(to, subject, body string) error {
		sentTo = append(sentTo, to)
		assert.Contains(t, body, "Leche vence hoy")
		return nil
	}, "http://localhost:3000")

	require.NoError(t, d.Deliver(context.Background(), &entities.Notification{UserID: enabled.ID, Title: "Alimento vence hoy", Message: "Leche vence hoy"}))
	require.NoError(t, d.Deliver(context.Background(), &entities.Notification{UserID: disabled.ID, Title: "Alimento vence hoy", Message: "Leche vence hoy"}))
	assert.Equal(t, []string{"ana@example.com"}, sentTo)
}
