package food

import (
	"context"
	"errors"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/internal/utils/storage"
	"frescoguard/pkg/expiry"
	"frescoguard/pkg/metrics"
	"frescoguard/pkg/notification"
	"frescoguard/pkg/user"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DashboardExpiringLimit = 5
	imageFolder            = "food-items"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.FoodRequest, userID string) (domain.Food, error)
		GetFoods(ctx context.Context, userID string, filter string) ([]domain.Food, error)
		GetFood(ctx context.Context, id string, userID string) (domain.Food, error)
		UpdateFood(ctx context.Context, id string, req domain.FoodRequest, userID string) (domain.Food, error)
		DeleteFood(ctx context.Context, id string, userID string) error
		UploadFoodImage(ctx context.Context, id string, image *multipart.FileHeader, userID string) (domain.Food, error)
		GetDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		userRepository user.UserRepository
		scheduler      notification.Scheduler
		s3             storage.AwsS3
	}
)

func NewFoodService(
	foodRepository FoodRepository,
	userRepository user.UserRepository,
	scheduler notification.Scheduler,
	s3 storage.AwsS3,
) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		userRepository: userRepository,
		scheduler:      scheduler,
		s3:             s3,
	}
}

func parseExpiryDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return date, nil
}

// optional turns blank strings into NULL.
func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *foodService) checkFoodLimit(ctx context.Context, userID string) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if domain.IsPremium(u.CurrentPlan(time.Now())) {
		return nil
	}

	count, err := s.foodRepository.CountFoods(ctx, userID)
	if err != nil {
		return err
	}
	if count >= domain.FreePlanMaxFoods {
		return domain.ErrFoodLimitReached
	}
	return nil
}

// foodName rejects names that are only whitespace, which "required" lets through.
func foodName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrFoodNameRequired
	}
	return name, nil
}

func (s *foodService) AddFood(ctx context.Context, req domain.FoodRequest, userID string) (domain.Food, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Food{}, domain.ErrParseUUID
	}

	name, err := foodName(req.Name)
	if err != nil {
		return domain.Food{}, err
	}
	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return domain.Food{}, err
	}

	if err := s.checkFoodLimit(ctx, userID); err != nil {
		return domain.Food{}, err
	}

	now := time.Now()
	status := expiry.Classify(expiryDate, now)

	food := &entities.Food{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            name,
		ImageURL:        optional(req.ImageURL),
		ExpiryDate:      expiryDate,
		Category:        optional(req.Category),
		Notes:           optional(req.Notes),
		ExpiryStatus:    status.Status,
		DaysUntilExpiry: status.Days,
	}
	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return domain.Food{}, fmt.Errorf("create food: %w", err)
	}
	metrics.FoodsCreated.Inc()

	if err := s.userRepository.IncrementFoodCount(ctx, userID); err != nil {
		log.Warnf("error incrementing food count for user %s: %v", userID, err)
	}

	s.scheduler.ScheduleFoodNotifications(ctx, food.ID, food.Name, expiryDate, userUUID)

	return toDomain(food, now), nil
}

func (s *foodService) GetFoods(ctx context.Context, userID string, filter string) ([]domain.Food, error) {
	now := time.Now()
	foods, err := s.foodRepository.GetFoods(ctx, userID, filter, now)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Food, 0, len(foods))
	for _, f := range foods {
		res = append(res, toDomain(f, now))
	}
	return res, nil
}

func (s *foodService) getOwned(ctx context.Context, id string, userID string) (*entities.Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrFoodNotFound
	}
	food, err := s.foodRepository.GetFoodByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) GetFood(ctx context.Context, id string, userID string) (domain.Food, error) {
	food, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return domain.Food{}, err
	}
	return toDomain(food, time.Now()), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.FoodRequest, userID string) (domain.Food, error) {
	name, err := foodName(req.Name)
	if err != nil {
		return domain.Food{}, err
	}
	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return domain.Food{}, err
	}

	food, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return domain.Food{}, err
	}

	now := time.Now()
	status := expiry.Classify(expiryDate, now)

	food.Name = name
	food.ImageURL = optional(req.ImageURL)
	food.ExpiryDate = expiryDate
	food.Category = optional(req.Category)
	food.Notes = optional(req.Notes)
	food.ExpiryStatus = status.Status
	food.DaysUntilExpiry = status.Days

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.Food{}, fmt.Errorf("update food: %w", err)
	}
	return toDomain(food, now), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, userID string) error {
	food, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.foodRepository.DeleteFood(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return fmt.Errorf("delete food: %w", err)
	}
	metrics.FoodsDeleted.Inc()

	if err := s.userRepository.DecrementFoodCount(ctx, userID); err != nil {
		log.Warnf("error decrementing food count for user %s: %v", userID, err)
	}

	if food.ImageURL != nil {
		if key := s.s3.GetObjectKeyFromLink(*food.ImageURL); key != "" {
			if err := s.s3.DeleteFile(ctx, key); err != nil {
				log.Warnf("error deleting image %s of food %s: %v", key, id, err)
			}
		}
	}
	return nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, id string, image *multipart.FileHeader, userID string) (domain.Food, error) {
	if !s.s3.Enabled() {
		return domain.Food{}, domain.ErrStorageNotAvailable
	}

	food, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return domain.Food{}, err
	}

	var objectKey string
	existingKey := ""
	if food.ImageURL != nil {
		existingKey = s.s3.GetObjectKeyFromLink(*food.ImageURL)
	}
	if existingKey != "" {
		objectKey, err = s.s3.UpdateFile(ctx, existingKey, image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(ctx, fmt.Sprintf("food-%s", food.ID), image, imageFolder, storage.AllowImage...)
	}
	if err != nil {
		return domain.Food{}, err
	}

	link := s.s3.GetPublicLinkKey(objectKey)
	food.ImageURL = &link
	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.Food{}, fmt.Errorf("update food image: %w", err)
	}
	return toDomain(food, time.Now()), nil
}

func (s *foodService) GetDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error) {
	now := time.Now()

	stats, err := s.foodRepository.GetDashboardStats(ctx, userID, now)
	if err != nil {
		return domain.EmptyDashboard(), err
	}

	foods, err := s.foodRepository.GetExpiringFoods(ctx, userID, now, DashboardExpiringLimit)
	if err != nil {
		return domain.EmptyDashboard(), err
	}

	res := domain.DashboardResponse{
		Stats:         stats,
		ExpiringFoods: make([]domain.ExpiringFood, 0, len(foods)),
		UserPlan:      domain.PlanFree,
	}
	for _, f := range foods {
		status := expiry.Classify(f.ExpiryDate, now)
		res.ExpiringFoods = append(res.ExpiringFoods, domain.ExpiringFood{
			ID:              f.ID.String(),
			Name:            f.Name,
			ExpiryDate:      f.ExpiryDate.Format(domain.DateLayout),
			DaysUntilExpiry: status.Days,
			Status:          status.Status,
			Category:        f.Category,
			ImageURL:        f.ImageURL,
		})
	}

	if u, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		res.UserPlan = u.CurrentPlan(now)
	} else {
		log.Warnf("error loading plan for user %s: %v", userID, err)
	}
	return res, nil
}

func toDomain(f *entities.Food, now time.Time) domain.Food {
	status := expiry.Classify(f.ExpiryDate, now)
	return domain.Food{
		ID:              f.ID.String(),
		UserID:          f.UserID.String(),
		Name:            f.Name,
		ImageURL:        f.ImageURL,
		ExpiryDate:      f.ExpiryDate.Format(domain.DateLayout),
		Category:        f.Category,
		Notes:           f.Notes,
		ExpiryStatus:    status.Status,
		DaysUntilExpiry: status.Days,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}
