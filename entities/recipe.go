package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Ingredients datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"ingredients"`
	Steps       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"steps"`
	CookingTime int            `json:"cooking_time"`
	Difficulty  string         `gorm:"type:varchar(30)" json:"difficulty"`
	FoodIDs     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"food_ids"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
