package user

import (
	"context"
	"testing"
	"time"

	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/internal/mocks"
	"frescoguard/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(users ...*entities.User) (UserService, *mocks.UserRepository, jwt.JWTService) {
	repo := mocks.NewUserRepository(users...)
	jwtService := jwt.NewJWTService("test-secret")
	return NewUserService(repo, jwtService), repo, jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo, jwtService := newTestService()
	ctx := context.Background()
	name := "Ana"

	res, err := svc.Register(ctx, domain.SignUpRequest{Email: "  Ana@Example.com ", Password: "secreto123", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, "Ana", *res.User.Name)

	userID, _, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)

	stored := repo.Get(res.User.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.Password)
	assert.Equal(t, domain.PlanFree, stored.Plan)
	assert.True(t, stored.NotificationsEnabled)

	login, err := svc.Login(ctx, domain.SignInRequest{Email: "ANA@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.SignUpRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.SignUpRequest{Email: "ana@example.com", Password: "otraclave1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginErrors(t *testing.T) {
	googleID := "google-1"
	oauthOnly := &entities.User{ID: uuid.New(), Email: "oauth@example.com", GoogleID: &googleID}
	svc, _, _ := newTestService(oauthOnly)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.SignUpRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.SignInRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrEmailNotFound)

	_, err = svc.Login(ctx, domain.SignInRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.SignInRequest{Email: "oauth@example.com", Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginWithOAuthLinksExistingAccount(t *testing.T) {
	existing := &entities.User{ID: uuid.New(), Email: "ana@example.com", Plan: domain.PlanFree}
	svc, repo, _ := newTestService(existing)

	res, err := svc.LoginWithOAuth(context.Background(), domain.OAuthProfile{
		Subject: "google-42",
		Email:   "Ana@example.com",
		Name:    "Ana Pérez",
		Picture: "https://example.com/ana.png",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID.String(), res.User.ID)

	stored := repo.Get(existing.ID.String())
	require.NotNil(t, stored.GoogleID)
	assert.Equal(t, "google-42", *stored.GoogleID)
	assert.Equal(t, "Ana Pérez", *stored.Name)
	assert.Equal(t, "https://example.com/ana.png", *stored.Image)
}

func TestLoginWithOAuthCreatesAccount(t *testing.T) {
	svc, repo, _ := newTestService()

	res, err := svc.LoginWithOAuth(context.Background(), domain.OAuthProfile{Subject: "google-7", Email: "luis@example.com"})
	require.NoError(t, err)

	stored := repo.Get(res.User.ID)
	require.NotNil(t, stored)
	assert.Empty(t, stored.Password)
	assert.Equal(t, domain.PlanFree, stored.Plan)

	_, err = svc.LoginWithOAuth(context.Background(), domain.OAuthProfile{Subject: "google-8"})
	assert.ErrorIs(t, err, domain.ErrOAuthEmailMissing)
}

func TestMeAndUpdateProfile(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	u := &entities.User{
		ID:                   uuid.New(),
		Email:                "ana@example.com",
		Plan:                 domain.PlanPremiumMonthly,
		PlanExpiresAt:        &expired,
		NotificationsEnabled: true,
	}
	svc, _, _ := newTestService(u)
	ctx := context.Background()

	profile, err := svc.Me(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.PlanFree, profile.Plan, "lapsed premium falls back to FREE")

	name := "Ana María"
	off := false
	profile, err = svc.UpdateProfile(ctx, u.ID.String(), domain.UpdateProfileRequest{Name: &name, NotificationsEnabled: &off})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", *profile.Name)
	assert.False(t, profile.NotificationsEnabled)

	_, err = svc.Me(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
