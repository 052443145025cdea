package entities

import (
	"time"

	"github.com/google/uuid"
)

type Food struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_foods_user_expiry,priority:1" json:"user_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	ImageURL        *string   `gorm:"type:text" json:"image_url"`
	ExpiryDate      time.Time `gorm:"type:date;not null;index:idx_foods_user_expiry,priority:2" json:"expiry_date"`
	Category        *string   `gorm:"type:varchar(100)" json:"category"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	ExpiryStatus    string    `gorm:"type:varchar(20)" json:"expiry_status"` // "expired", "expiring-soon", "safe"
	DaysUntilExpiry int       `json:"days_until_expiry"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
