package food

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/internal/mocks"
	"frescoguard/pkg/expiry"
	"frescoguard/pkg/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc           FoodService
	foods         *mocks.FoodRepository
	users         *mocks.UserRepository
	notifications *mocks.NotificationRepository
	storage       *mocks.Storage
	user          *entities.User
}

func newFixture(plan string) *fixture {
	u := &entities.User{ID: uuid.New(), Email: "ana@example.com", Plan: plan, NotificationsEnabled: true}
	f := &fixture{
		foods:         &mocks.FoodRepository{},
		users:         mocks.NewUserRepository(u),
		notifications: &mocks.NotificationRepository{},
		storage:       mocks.NewStorage(),
		user:          u,
	}
	f.svc = NewFoodService(f.foods, f.users, notification.NewScheduler(f.notifications), f.storage)
	return f
}

func inDays(n int) string {
	return expiry.Date(time.Now()).AddDate(0, 0, n).Format(domain.DateLayout)
}

func ptr(s string) *string { return &s }

func TestAddFood(t *testing.T) {
	f := newFixture(domain.PlanFree)

	food, err := f.svc.AddFood(context.Background(), domain.FoodRequest{
		Name:       "Leche",
		ExpiryDate: inDays(3),
		Category:   ptr("Lácteos"),
		Notes:      ptr("  "),
	}, f.user.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Leche", food.Name)
	assert.Equal(t, expiry.StatusExpiringSoon, food.ExpiryStatus)
	assert.Equal(t, 3, food.DaysUntilExpiry)
	assert.Equal(t, inDays(3), food.ExpiryDate)
	assert.Equal(t, "Lácteos", *food.Category)
	assert.Nil(t, food.Notes)

	assert.Equal(t, 1, f.users.Get(f.user.ID.String()).FoodCount)
	assert.Len(t, f.notifications.Notifications, 4)
	require.Len(t, f.foods.Foods, 1)
	assert.Equal(t, expiry.StatusExpiringSoon, f.foods.Foods[0].ExpiryStatus)
}

func TestAddFoodRejectsInvalidDate(t *testing.T) {
	f := newFixture(domain.PlanFree)
	for _, date := range []string{"15/02/2025", "2025-13-01", "mañana"} {
		_, err := f.svc.AddFood(context.Background(), domain.FoodRequest{Name: "Pan", ExpiryDate: date}, f.user.ID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate, date)
	}
	assert.Empty(t, f.foods.Foods)
}

func TestBlankNameRejected(t *testing.T) {
	f := newFixture(domain.PlanFree)
	ctx := context.Background()
	userID := f.user.ID.String()

	_, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: " \t ", ExpiryDate: inDays(1)}, userID)
	assert.ErrorIs(t, err, domain.ErrFoodNameRequired)
	assert.Empty(t, f.foods.Foods)
	assert.Equal(t, 0, f.users.Get(userID).FoodCount)

	food, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "  Queso ", ExpiryDate: inDays(1)}, userID)
	require.NoError(t, err)
	assert.Equal(t, "Queso", food.Name)

	_, err = f.svc.UpdateFood(ctx, food.ID, domain.FoodRequest{Name: "   ", ExpiryDate: inDays(2)}, userID)
	assert.ErrorIs(t, err, domain.ErrFoodNameRequired)
	assert.Equal(t, "Queso", f.foods.Foods[0].Name)
}

func TestAddFoodFreePlanCap(t *testing.T) {
	ctx := context.Background()

	f := newFixture(domain.PlanFree)
	for i := 0; i < domain.FreePlanMaxFoods; i++ {
		_, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "Arroz", ExpiryDate: inDays(30)}, f.user.ID.String())
		require.NoError(t, err)
	}
	_, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "Arroz", ExpiryDate: inDays(30)}, f.user.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodLimitReached)
	assert.Len(t, f.foods.Foods, domain.FreePlanMaxFoods)

	premium := newFixture(domain.PlanPremiumMonthly)
	for i := 0; i <= domain.FreePlanMaxFoods; i++ {
		_, err := premium.svc.AddFood(ctx, domain.FoodRequest{Name: "Arroz", ExpiryDate: inDays(30)}, premium.user.ID.String())
		require.NoError(t, err)
	}
}

func TestAddFoodLapsedPremiumIsCapped(t *testing.T) {
	f := newFixture(domain.PlanPremiumYearly)
	expired := time.Now().Add(-time.Hour)
	f.user.PlanExpiresAt = &expired
	for i := 0; i < domain.FreePlanMaxFoods; i++ {
		f.foods.Foods = append(f.foods.Foods, &entities.Food{ID: uuid.New(), UserID: f.user.ID, Name: "Sal"})
	}

	_, err := f.svc.AddFood(context.Background(), domain.FoodRequest{Name: "Arroz", ExpiryDate: inDays(30)}, f.user.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodLimitReached)
}

func TestAddFoodSurvivesSchedulingFailure(t *testing.T) {
	f := newFixture(domain.PlanFree)
	f.notifications.Err = errors.New("relation notifications does not exist")

	food, err := f.svc.AddFood(context.Background(), domain.FoodRequest{Name: "Queso", ExpiryDate: inDays(1)}, f.user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, food.DaysUntilExpiry)
	assert.Empty(t, f.notifications.Notifications)
}

func TestGetFoodsFilter(t *testing.T) {
	f := newFixture(domain.PlanFree)
	ctx := context.Background()
	userID := f.user.ID.String()

	for _, days := range []int{10, -2, 0, 3, 4} {
		_, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "Food", ExpiryDate: inDays(days)}, userID)
		require.NoError(t, err)
	}
	other := newFixture(domain.PlanFree)
	f.foods.Foods = append(f.foods.Foods, &entities.Food{ID: uuid.New(), UserID: other.user.ID, ExpiryDate: expiry.Date(time.Now())})

	statuses := func(foods []domain.Food) []string {
		var res []string
		for _, food := range foods {
			res = append(res, food.ExpiryStatus)
		}
		return res
	}

	all, err := f.svc.GetFoods(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, inDays(-2), all[0].ExpiryDate)
	assert.Equal(t, inDays(10), all[4].ExpiryDate)

	expiring, err := f.svc.GetFoods(ctx, userID, domain.FilterExpiring)
	require.NoError(t, err)
	assert.Equal(t, []string{expiry.StatusExpired, expiry.StatusExpiringSoon, expiry.StatusExpiringSoon}, statuses(expiring))

	expired, err := f.svc.GetFoods(ctx, userID, domain.FilterExpired)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, 2, expired[0].DaysUntilExpiry)

	safe, err := f.svc.GetFoods(ctx, userID, domain.FilterSafe)
	require.NoError(t, err)
	assert.Equal(t, []string{expiry.StatusSafe, expiry.StatusSafe}, statuses(safe))
}

func TestGetFoodRecomputesStatus(t *testing.T) {
	f := newFixture(domain.PlanFree)
	stale := &entities.Food{
		ID:              uuid.New(),
		UserID:          f.user.ID,
		Name:            "Yogur",
		ExpiryDate:      expiry.Date(time.Now()).AddDate(0, 0, -1),
		ExpiryStatus:    expiry.StatusSafe,
		DaysUntilExpiry: 9,
	}
	f.foods.Foods = append(f.foods.Foods, stale)

	food, err := f.svc.GetFood(context.Background(), stale.ID.String(), f.user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, expiry.StatusExpired, food.ExpiryStatus)
	assert.Equal(t, 1, food.DaysUntilExpiry)
}

func TestGetFoodNotFound(t *testing.T) {
	f := newFixture(domain.PlanFree)
	food, err := f.svc.AddFood(context.Background(), domain.FoodRequest{Name: "Pan", ExpiryDate: inDays(5)}, f.user.ID.String())
	require.NoError(t, err)

	_, err = f.svc.GetFood(context.Background(), food.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	_, err = f.svc.GetFood(context.Background(), "123", f.user.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestUpdateFood(t *testing.T) {
	f := newFixture(domain.PlanFree)
	ctx := context.Background()
	userID := f.user.ID.String()

	food, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "Pan", ExpiryDate: inDays(10), Notes: ptr("integral")}, userID)
	require.NoError(t, err)

	updated, err := f.svc.UpdateFood(ctx, food.ID, domain.FoodRequest{Name: "Pan viejo", ExpiryDate: inDays(-2)}, userID)
	require.NoError(t, err)
	assert.Equal(t, "Pan viejo", updated.Name)
	assert.Equal(t, expiry.StatusExpired, updated.ExpiryStatus)
	assert.Equal(t, 2, updated.DaysUntilExpiry)
	assert.Nil(t, updated.Notes)

	stored := f.foods.Foods[0]
	assert.Equal(t, expiry.StatusExpired, stored.ExpiryStatus)
	assert.Equal(t, 2, stored.DaysUntilExpiry)

	_, err = f.svc.UpdateFood(ctx, food.ID, domain.FoodRequest{Name: "Pan", ExpiryDate: "ayer"}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = f.svc.UpdateFood(ctx, uuid.NewString(), domain.FoodRequest{Name: "Pan", ExpiryDate: inDays(1)}, userID)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestDeleteFoodDecrementsCounterWithFloor(t *testing.T) {
	f := newFixture(domain.PlanFree)
	ctx := context.Background()
	userID := f.user.ID.String()

	food, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "Leche", ExpiryDate: inDays(2), ImageURL: ptr("https://bucket.test/food-items/leche.png")}, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.users.Get(userID).FoodCount)

	require.NoError(t, f.svc.DeleteFood(ctx, food.ID, userID))
	assert.Equal(t, 0, f.users.Get(userID).FoodCount)
	assert.Equal(t, []string{"food-items/leche.png"}, f.storage.Deleted)
	assert.Empty(t, f.foods.Foods)

	assert.ErrorIs(t, f.svc.DeleteFood(ctx, food.ID, userID), domain.ErrFoodNotFound)
	assert.Equal(t, 0, f.users.Get(userID).FoodCount)

	// counter already at zero with a row left behind by an older client
	orphan := &entities.Food{ID: uuid.New(), UserID: f.user.ID, Name: "Sal", ExpiryDate: expiry.Date(time.Now())}
	f.foods.Foods = append(f.foods.Foods, orphan)
	require.NoError(t, f.svc.DeleteFood(ctx, orphan.ID.String(), userID))
	assert.Equal(t, 0, f.users.Get(userID).FoodCount)
}

func TestUploadFoodImage(t *testing.T) {
	f := newFixture(domain.PlanFree)
	ctx := context.Background()
	userID := f.user.ID.String()

	food, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "Huevos", ExpiryDate: inDays(7)}, userID)
	require.NoError(t, err)

	_, err = f.svc.UploadFoodImage(ctx, food.ID, &multipart.FileHeader{Filename: "huevos.gif"}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)

	withImage, err := f.svc.UploadFoodImage(ctx, food.ID, &multipart.FileHeader{Filename: "huevos.PNG"}, userID)
	require.NoError(t, err)
	key := "food-items/food-" + food.ID + ".png"
	assert.Equal(t, "https://bucket.test/"+key, *withImage.ImageURL)
	assert.Contains(t, f.storage.Objects, key)

	replaced, err := f.svc.UploadFoodImage(ctx, food.ID, &multipart.FileHeader{Filename: "huevos.jpg"}, userID)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.test/food-items/food-"+food.ID+".jpg", *replaced.ImageURL)

	_, err = f.svc.UploadFoodImage(ctx, uuid.NewString(), &multipart.FileHeader{Filename: "x.png"}, userID)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	f.storage.Disabled = true
	_, err = f.svc.UploadFoodImage(ctx, food.ID, &multipart.FileHeader{Filename: "x.png"}, userID)
	assert.ErrorIs(t, err, domain.ErrStorageNotAvailable)
}

func TestGetDashboard(t *testing.T) {
	f := newFixture(domain.PlanPremiumMonthly)
	ctx := context.Background()
	userID := f.user.ID.String()

	for _, days := range []int{-3, -1, 0, 1, 2, 3, 8, 20} {
		_, err := f.svc.AddFood(ctx, domain.FoodRequest{Name: "Food", ExpiryDate: inDays(days)}, userID)
		require.NoError(t, err)
	}

	dash, err := f.svc.GetDashboard(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{TotalFoods: 8, ExpiredCount: 2, ExpiringSoonCount: 4, SafeCount: 2}, dash.Stats)
	require.Len(t, dash.ExpiringFoods, DashboardExpiringLimit)
	assert.Equal(t, expiry.StatusExpired, dash.ExpiringFoods[0].Status)
	assert.Equal(t, 3, dash.ExpiringFoods[0].DaysUntilExpiry)
	assert.Equal(t, inDays(-3), dash.ExpiringFoods[0].ExpiryDate)
	assert.Equal(t, domain.PlanPremiumMonthly, dash.UserPlan)
}

func TestGetDashboardDegradesOnError(t *testing.T) {
	f := newFixture(domain.PlanFree)
	f.foods.Err = errors.New("connection reset")

	dash, err := f.svc.GetDashboard(context.Background(), f.user.ID.String())
	assert.Error(t, err)
	assert.Equal(t, domain.EmptyDashboard(), dash)
}
