package user

import (
	"context"
	"errors"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/internal/utils"
	"frescoguard/pkg/jwt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.SignUpRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.SignInRequest) (domain.AuthResponse, error)
		LoginWithOAuth(ctx context.Context, profile domain.OAuthProfile) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfile, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfile, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req domain.SignUpRequest) (domain.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, domain.ErrHashPasswordFailure
	}

	user := &entities.User{
		ID:                   uuid.New(),
		Email:                email,
		Password:             string(hashed),
		Name:                 req.Name,
		Role:                 domain.RoleUser,
		Plan:                 domain.PlanFree,
		NotificationsEnabled: true,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

func (s *userService) Login(ctx context.Context, req domain.SignInRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrEmailNotFound
		}
		return domain.AuthResponse{}, err
	}

	// accounts created through Google have no password
	if user.Password == "" {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *userService) LoginWithOAuth(ctx context.Context, profile domain.OAuthProfile) (domain.AuthResponse, error) {
	email := normalizeEmail(profile.Email)
	if email == "" {
		return domain.AuthResponse{}, domain.ErrOAuthEmailMissing
	}

	user, err := s.userRepository.GetUserByGoogleID(ctx, profile.Subject)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}
	if user == nil {
		user, err = s.userRepository.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, err
		}
	}

	if user == nil {
		user = &entities.User{
			ID:                   uuid.New(),
			Email:                email,
			Role:                 domain.RoleUser,
			Plan:                 domain.PlanFree,
			NotificationsEnabled: true,
		}
		fillFromProfile(user, profile)
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.AuthResponse{}, fmt.Errorf("create oauth user: %w", err)
		}
		return s.issue(user)
	}

	fillFromProfile(user, profile)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, fmt.Errorf("link oauth user: %w", err)
	}
	return s.issue(user)
}

// fillFromProfile links the Google account and fills only fields the user
// has not set themselves.
func fillFromProfile(user *entities.User, profile domain.OAuthProfile) {
	if profile.Subject != "" {
		subject := profile.Subject
		user.GoogleID = &subject
	}
	if user.Name == nil && profile.Name != "" {
		name := profile.Name
		user.Name = &name
	}
	if user.Image == nil && profile.Picture != "" {
		picture := profile.Picture
		user.Image = &picture
	}
}

func (s *userService) issue(user *entities.User) (domain.AuthResponse, error) {
	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}
	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), role)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("sign session: %w", err)
	}

	return domain.AuthResponse{
		Token: token,
		User: domain.AuthUser{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}
	return toUserProfile(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfile, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.NotificationsEnabled != nil {
		fields["notifications_enabled"] = *req.NotificationsEnabled
	}

	if err := s.userRepository.UpdateProfile(ctx, userID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	return s.Me(ctx, userID)
}

func toUserProfile(user *entities.User) domain.UserProfile {
	return domain.UserProfile{
		ID:                   user.ID.String(),
		Email:                user.Email,
		Name:                 user.Name,
		Plan:                 user.CurrentPlan(time.Now()),
		NotificationsEnabled: user.NotificationsEnabled,
		Image:                user.Image,
	}
}
