package domain

import "errors"

var (
	MessageImageNotProvided = "Imagen no proporcionada"
	MessageFailedScanImage  = "Error al procesar la imagen"

	ErrImageNotProvided = errors.New("image not provided")
)

type (
	OCRRequest struct {
		Image string `json:"image"`
	}

	// OCRResult carries the expiry date as DD/MM/YYYY, or nil when none was read.
	OCRResult struct {
		FoodName   string  `json:"foodName"`
		ExpiryDate *string `json:"expiryDate"`
		Confidence string  `json:"confidence"`
	}
)
