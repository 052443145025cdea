package domain

import (
	"errors"
	"time"
)

const (
	NotificationExpirySoon          = "EXPIRY_SOON"
	NotificationExpiryToday         = "EXPIRY_TODAY"
	NotificationRecipeSuggestion    = "RECIPE_SUGGESTION"
	NotificationSubscriptionRenewal = "SUBSCRIPTION_RENEWAL"
)

var (
	MessageNoPendingNotifications     = "No hay notificaciones pendientes"
	MessageFailedGetNotifications     = "Error al obtener notificaciones pendientes"
	MessageFailedProcessNotifications = "Error al procesar notificaciones"
	MessageFailedMarkRead             = "Error al actualizar la notificación"
	MessageNotificationNotFound       = "Notificación no encontrada"
	MessageFailedTestNotification     = "Error al probar notificación"

	DefaultTestNotificationTitle   = "Notificación de prueba"
	DefaultTestNotificationMessage = "Esta es una notificación de prueba de VenAi"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	Notification struct {
		ID         string    `json:"id"`
		UserID     string    `json:"user_id"`
		FoodID     *string   `json:"food_id"`
		Title      string    `json:"title"`
		Message    string    `json:"message"`
		Type       string    `json:"type"`
		Scheduled  time.Time `json:"scheduled"`
		DaysOffset *int      `json:"days_offset"`
		Sent       bool      `json:"sent"`
		Read       bool      `json:"read"`
		CreatedAt  time.Time `json:"created_at"`
	}

	ProcessNotificationsResult struct {
		Processed int `json:"processed"`
		Errors    int `json:"errors"`
		Total     int `json:"total"`
	}

	TestNotificationRequest struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
)
