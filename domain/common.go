package domain

import (
	"errors"
)

const (
	RoleUser = "user"

	PlanFree           = "FREE"
	PlanPremiumMonthly = "PREMIUM_MONTHLY"
	PlanPremiumYearly  = "PREMIUM_YEARLY"

	FreePlanMaxFoods   = 10
	FreePlanPhotoLimit = 3

	DateLayout = "2006-01-02"
)

var (
	MessageUnauthenticated      = "No autenticado. Por favor inicia sesión"
	MessageFailedBodyRequest    = "Datos inválidos en el request"
	MessageInvalidData          = "Datos inválidos"
	MessageFailedProcessRequest = "Error al procesar la solicitud"
	MessageTooManyRequests      = "Demasiadas solicitudes. Intenta de nuevo en un momento"
	MessageDevelopmentOnly      = "Esta ruta solo está disponible en desarrollo"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)

// IsPremium reports whether plan lifts the free-tier caps.
func IsPremium(plan string) bool {
	return plan == PlanPremiumMonthly || plan == PlanPremiumYearly
}
