package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID    string  `gorm:"primaryKey;size:36" json:"id"`
	Email string  `gorm:"uniqueIndex;not null" json:"email"`
	Name  *string `gorm:"size:50" json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations: preload seulement quand nécessaire
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}

// L'ID est opaque et posé une seule fois; il ne change jamais ensuite.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
