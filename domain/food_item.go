package domain

import (
	"errors"
	"time"
)

const (
	FilterExpiring = "expiring"
	FilterExpired  = "expired"
	FilterSafe     = "safe"
)

var (
	MessageSuccessDeleteFood = "Alimento eliminado correctamente"

	MessageFailedAddFood       = "Error al guardar el alimento"
	MessageFailedGetFoods      = "Error al obtener los alimentos"
	MessageFailedGetFood       = "Error al obtener el alimento"
	MessageFailedUpdateFood    = "Error al actualizar el alimento"
	MessageFailedDeleteFood    = "Error al eliminar el alimento"
	MessageFailedUploadImage   = "Error al subir la imagen"
	MessageFoodNotFound        = "Alimento no encontrado"
	MessageFoodNameRequired    = "El nombre es requerido"
	MessageInvalidExpiryDate   = "Fecha de vencimiento inválida"
	MessageFoodLimitReached    = "Has alcanzado el límite de alimentos para el plan gratuito"
	MessageDuplicateFood       = "Este alimento ya existe."
	MessageStorageNotAvailable = "Almacenamiento no configurado"
	MessageImageRequired       = "La imagen es requerida"
	MessageInvalidImageFormat  = "Formato de imagen no permitido. Usa jpg, jpeg, png o webp"

	ErrFoodNotFound        = errors.New("food not found")
	ErrFoodNameRequired    = errors.New("food name is blank")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrFoodLimitReached    = errors.New("free plan food limit reached")
	ErrInvalidImageFormat  = errors.New("invalid image format")
	ErrStorageNotAvailable = errors.New("object storage not configured")
)

type (
	FoodRequest struct {
		Name       string  `json:"name" validate:"required" msg:"El nombre es requerido"`
		ExpiryDate string  `json:"expiryDate" validate:"required" msg:"La fecha de vencimiento es requerida"`
		Category   *string `json:"category" validate:"omitempty"`
		Notes      *string `json:"notes" validate:"omitempty,max=500" msg:"Las notas no pueden exceder 500 caracteres"`
		ImageURL   *string `json:"imageUrl" validate:"omitempty"`
	}

	Food struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		Name            string    `json:"name"`
		ImageURL        *string   `json:"image_url"`
		ExpiryDate      string    `json:"expiry_date"`
		Category        *string   `json:"category"`
		Notes           *string   `json:"notes"`
		ExpiryStatus    string    `json:"expiry_status"`
		DaysUntilExpiry int       `json:"days_until_expiry"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
