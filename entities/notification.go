package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_scheduled,priority:1" json:"user_id"`
	FoodID     *uuid.UUID `gorm:"type:uuid" json:"food_id"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	Type       string     `gorm:"type:varchar(30);not null" json:"type"`
	Scheduled  time.Time  `gorm:"type:timestamp with time zone;index:idx_notifications_user_scheduled,priority:2" json:"scheduled"`
	DaysOffset *int       `json:"days_offset"`
	Sent       bool       `gorm:"default:false" json:"sent"`
	Read       bool       `gorm:"default:false" json:"read"`
	CreatedAt  time.Time  `gorm:"type:timestamp with time zone" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
