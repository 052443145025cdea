package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_id"`
	PlanID      string    `gorm:"type:varchar(30);not null" json:"plan_id"`
	GrossAmount int64     `json:"gross_amount"`
	Status      string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	RedirectURL string    `gorm:"type:text" json:"redirect_url"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
