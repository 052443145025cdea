package handlers

import (
	"errors"
	"frescoguard/domain"
	"frescoguard/internal/api/presenters"
	"frescoguard/internal/utils"
	"frescoguard/pkg/jwt"
	"frescoguard/pkg/oauth"
	"frescoguard/pkg/user"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const OAuthStateCookie = "frescoguard_oauth_state"

type (
	UserHandler interface {
		SignUp(c *fiber.Ctx) error
		SignIn(c *fiber.Ctx) error
		SignOut(c *fiber.Ctx) error
		CurrentUser(c *fiber.Ctx) error
		GoogleLogin(c *fiber.Ctx) error
		GoogleCallback(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
	}

	// SessionConfig controls the session cookie and the post-login redirect.
	SessionConfig struct {
		CookieName string
		Secure     bool
		AppURL     string
	}

	userHandler struct {
		userService user.UserService
		jwtService  jwt.JWTService
		google      oauth.Provider
		session     SessionConfig
		validator   *validator.Validate
	}
)

func NewUserHandler(
	userService user.UserService,
	jwtService jwt.JWTService,
	google oauth.Provider,
	session SessionConfig,
	validator *validator.Validate,
) UserHandler {
	return &userHandler{
		userService: userService,
		jwtService:  jwtService,
		google:      google,
		session:     session,
		validator:   validator,
	}
}

func (h *userHandler) cookie(name, value string, ttl time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (h *userHandler) setSession(c *fiber.Ctx, token string) {
	c.Cookie(h.cookie(h.session.CookieName, token, jwt.SessionTTL))
}

func (h *userHandler) clearCookie(c *fiber.Ctx, name string) {
	cookie := h.cookie(name, "", 0)
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.Cookie(cookie)
}

func (h *userHandler) SignUp(c *fiber.Ctx) error {
	req := new(domain.SignUpRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err, req, domain.MessageInvalidData), err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists), utils.IsUniqueViolation(err):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageEmailAlreadyExists, err)
		case utils.PgErrorCode(err) == utils.PgUndefinedTable:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageUserDatabaseNotReady, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSignUp, err)
		}
	}

	h.setSession(c, res.Token)
	return presenters.SuccessResponse(c, fiber.Map{"user": res.User}, fiber.StatusOK, "")
}

func (h *userHandler) SignIn(c *fiber.Ctx) error {
	req := new(domain.SignInRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err, req, domain.MessageInvalidData), err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailNotFound):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageEmailNotFound, err)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageInvalidCredentials, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSignIn, err)
		}
	}

	h.setSession(c, res.Token)
	return presenters.SuccessResponse(c, fiber.Map{"user": res.User}, fiber.StatusOK, "")
}

func (h *userHandler) SignOut(c *fiber.Ctx) error {
	h.clearCookie(c, h.session.CookieName)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSignOut)
}

// CurrentUser reports the session state. A token for a deleted account is
// treated as signed out.
func (h *userHandler) CurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(fiber.Map{"authenticated": false, "user": nil})
	}

	profile, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			log.Errorf("error loading session user %s: %v", userID, err)
		}
		return c.JSON(fiber.Map{"authenticated": false, "user": nil})
	}
	return c.JSON(fiber.Map{"authenticated": true, "user": profile})
}

func (h *userHandler) GoogleLogin(c *fiber.Ctx) error {
	nonce := uuid.NewString()
	state, err := h.jwtService.GenerateTokenOAuthState(nonce)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGoogleURL, err)
	}

	url, err := h.google.AuthCodeURL(state)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGoogleURL, err)
	}

	c.Cookie(h.cookie(OAuthStateCookie, nonce, jwt.OAuthStateTTL))
	return c.Redirect(url, fiber.StatusFound)
}

// GoogleCallback never renders an error page: failures land on "/" without a
// session.
func (h *userHandler) GoogleCallback(c *fiber.Ctx) error {
	code, state := c.Query("code"), c.Query("state")
	nonce := c.Cookies(OAuthStateCookie)
	h.clearCookie(c, OAuthStateCookie)

	if code == "" || state == "" || nonce == "" {
		log.Warnf("google callback without code or state")
		return c.Redirect("/", fiber.StatusFound)
	}

	signed, err := h.jwtService.ValidateTokenOAuthState(state)
	if err != nil || signed != nonce {
		log.Warnf("google callback state rejected: %v", errors.Join(err, domain.ErrOAuthStateMismatch))
		return c.Redirect("/", fiber.StatusFound)
	}

	profile, err := h.google.Exchange(c.Context(), code)
	if err != nil {
		log.Errorf("error exchanging google code: %v", err)
		return c.Redirect("/", fiber.StatusFound)
	}

	res, err := h.userService.LoginWithOAuth(c.Context(), profile)
	if err != nil {
		log.Errorf("error signing in google user %s: %v", profile.Email, err)
		return c.Redirect("/", fiber.StatusFound)
	}

	h.setSession(c, res.Token)
	target := h.session.AppURL
	if target == "" {
		target = "/"
	}
	return c.Redirect(target, fiber.StatusFound)
}

func (h *userHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	profile, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProfile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}

	return c.JSON(fiber.Map{"user": profile})
}

func (h *userHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err, req, domain.MessageInvalidData), err)
	}

	profile, err := h.userService.UpdateProfile(c.Context(), userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateProfile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"user": fiber.Map{
			"id":                   profile.ID,
			"email":                profile.Email,
			"name":                 profile.Name,
			"plan":                 profile.Plan,
			"notificationsEnabled": profile.NotificationsEnabled,
		},
	}, fiber.StatusOK, "")
}
