package entity

import (
	"time"
)

// MenuItem est en lecture seule côté API; le seed s'en occupe.
type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`

	Reviews []Review `gorm:"foreignKey:MenuItemID" json:"-"`
}
