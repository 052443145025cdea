package entities

import (
	"frescoguard/domain"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email                string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password             string     `gorm:"type:varchar(255)" json:"-"`
	Name                 *string    `gorm:"type:varchar(255)" json:"name"`
	Image                *string    `gorm:"type:text" json:"image"`
	GoogleID             *string    `gorm:"type:varchar(255);uniqueIndex" json:"-"`
	Role                 string     `gorm:"type:varchar(20);default:'user'" json:"role"`
	Plan                 string     `gorm:"type:varchar(20);default:'FREE'" json:"plan"`
	PlanExpiresAt        *time.Time `gorm:"type:timestamp with time zone" json:"plan_expires_at"`
	NotificationsEnabled bool       `gorm:"default:true" json:"notifications_enabled"`
	PhotosTaken          int        `gorm:"default:0" json:"photos_taken"`
	FoodCount            int        `gorm:"default:0" json:"food_count"`

	Timestamp
}

// CurrentPlan falls back to FREE once a paid period has lapsed.
func (u *User) CurrentPlan(now time.Time) string {
	if u.Plan == "" {
		return domain.PlanFree
	}
	if domain.IsPremium(u.Plan) && u.PlanExpiresAt != nil && u.PlanExpiresAt.Before(now) {
		return domain.PlanFree
	}
	return u.Plan
}
