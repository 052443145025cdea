package domain

import "errors"

var (
	MessageSuccessResetPhotos  = "Contador de fotos reiniciado correctamente"
	MessagePhotoLimitReached   = "Has alcanzado el límite de fotos para el plan gratuito"
	MessageFailedGetPhotoCount = "Error al obtener el conteo de fotos"
	MessageFailedUpdatePhotos  = "Error al actualizar el conteo de fotos"

	ErrPhotoLimitReached = errors.New("free plan photo limit reached")
	ErrDevelopmentOnly   = errors.New("route disabled in production")
)

type (
	// CameraUsage leaves Limit and Remaining nil for unlimited plans so they
	// encode as JSON null.
	CameraUsage struct {
		PhotosTaken  int    `json:"photosTaken"`
		Limit        *int   `json:"limit"`
		Remaining    *int   `json:"remaining"`
		CanTakePhoto bool   `json:"canTakePhoto"`
		Plan         string `json:"plan,omitempty"`
	}
)

// NewCameraUsage derives the usage view for a plan and a photo count.
func NewCameraUsage(plan string, photosTaken int) CameraUsage {
	usage := CameraUsage{
		PhotosTaken:  photosTaken,
		CanTakePhoto: true,
		Plan:         plan,
	}
	if IsPremium(plan) {
		return usage
	}

	limit := FreePlanPhotoLimit
	remaining := max(0, limit-photosTaken)
	usage.Limit = &limit
	usage.Remaining = &remaining
	usage.CanTakePhoto = photosTaken < limit
	return usage
}
