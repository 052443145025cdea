package camera

import (
	"context"
	"errors"
	"frescoguard/domain"
	"frescoguard/pkg/user"
	"time"

	"gorm.io/gorm"
)

type (
	CameraService interface {
		GetUsage(ctx context.Context, userID string) (domain.CameraUsage, error)
		RegisterPhoto(ctx context.Context, userID string) (domain.CameraUsage, error)
		ResetPhotos(ctx context.Context, userID string) error
	}

	cameraService struct {
		userRepository user.UserRepository
		production     bool
	}
)

func NewCameraService(userRepository user.UserRepository, production bool) CameraService {
	return &cameraService{
		userRepository: userRepository,
		production:     production,
	}
}

func (s *cameraService) GetUsage(ctx context.Context, userID string) (domain.CameraUsage, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CameraUsage{}, domain.ErrUserNotFound
		}
		return domain.CameraUsage{}, err
	}
	return domain.NewCameraUsage(u.CurrentPlan(time.Now()), u.PhotosTaken), nil
}

func (s *cameraService) RegisterPhoto(ctx context.Context, userID string) (domain.CameraUsage, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CameraUsage{}, domain.ErrUserNotFound
		}
		return domain.CameraUsage{}, err
	}

	plan := u.CurrentPlan(time.Now())
	limit := 0
	if !domain.IsPremium(plan) {
		limit = domain.FreePlanPhotoLimit
		if u.PhotosTaken >= limit {
			return domain.CameraUsage{}, domain.ErrPhotoLimitReached
		}
	}

	incremented, err := s.userRepository.IncrementPhotosTaken(ctx, userID, limit)
	if err != nil {
		return domain.CameraUsage{}, err
	}
	// a concurrent request took the last free photo
	if !incremented {
		return domain.CameraUsage{}, domain.ErrPhotoLimitReached
	}

	usage := domain.NewCameraUsage(plan, u.PhotosTaken+1)
	usage.Plan = ""
	return usage, nil
}

func (s *cameraService) ResetPhotos(ctx context.Context, userID string) error {
	if s.production {
		return domain.ErrDevelopmentOnly
	}
	return s.userRepository.ResetPhotosTaken(ctx, userID)
}
