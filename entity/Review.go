package entity

import (
	"time"
)

type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:500;not null" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// un seul avis par (utilisateur, plat): l'index ferme la course
	// entre deux POST concurrents, pas seulement le pré-check applicatif
	UserID     string `gorm:"size:36;not null;uniqueIndex:idx_reviews_user_menu_item" json:"-"`
	User       User   `json:"-"`
	MenuItemID uint   `gorm:"not null;uniqueIndex:idx_reviews_user_menu_item" json:"-"`
	MenuItem   MenuItem `json:"-"`
}
