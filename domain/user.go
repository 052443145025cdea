package domain

import (
	"errors"
)

var (
	MessageSuccessSignOut = "Sesión cerrada correctamente"

	MessageFailedSignUp         = "Error al registrar usuario"
	MessageFailedSignIn         = "Error al iniciar sesión"
	MessageFailedGetProfile     = "Error al obtener perfil"
	MessageFailedUpdateProfile  = "Error al actualizar perfil"
	MessageEmailAlreadyExists   = "Este correo electrónico ya está registrado"
	MessageEmailNotFound        = "No existe una cuenta con ese correo electrónico"
	MessageInvalidCredentials   = "Correo electrónico o contraseña incorrectos"
	MessageFailedGoogleURL      = "No se pudo generar la URL de autenticación"
	MessageFailedGoogleSignIn   = "Error al iniciar sesión con Google"
	MessageUserDatabaseNotReady = "Error al crear usuario. Verifica que la base de datos esté configurada correctamente."

	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrEmailNotFound       = errors.New("no account with that email")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrOAuthNotConfigured  = errors.New("google oauth not configured")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrOAuthEmailMissing   = errors.New("oauth profile has no verified email")
	ErrHashPasswordFailure = errors.New("failed to hash password")
)

type (
	SignUpRequest struct {
		Email    string  `json:"email" validate:"required,email" msg:"Email inválido"`
		Password string  `json:"password" validate:"required,min=7" msg:"La contraseña debe tener al menos 7 caracteres"`
		Name     *string `json:"name" validate:"omitempty,min=2" msg:"El nombre debe tener al menos 2 caracteres"`
	}

	SignInRequest struct {
		Email    string `json:"email" validate:"required,email" msg:"Email inválido"`
		Password string `json:"password" validate:"required,min=7" msg:"La contraseña debe tener al menos 7 caracteres"`
	}

	UpdateProfileRequest struct {
		Name                 *string `json:"name" validate:"omitempty,min=2" msg:"El nombre debe tener al menos 2 caracteres"`
		NotificationsEnabled *bool   `json:"notificationsEnabled"`
	}

	// OAuthProfile is the identity a third-party provider vouches for.
	OAuthProfile struct {
		Subject string
		Email   string
		Name    string
		Picture string
	}

	AuthUser struct {
		ID    string  `json:"id"`
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}

	AuthResponse struct {
		Token string
		User  AuthUser
	}

	UserProfile struct {
		ID                   string  `json:"id"`
		Email                string  `json:"email"`
		Name                 *string `json:"name"`
		Plan                 string  `json:"plan"`
		NotificationsEnabled bool    `json:"notificationsEnabled"`
		Image                *string `json:"image"`
	}
)
