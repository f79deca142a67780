package controllers

import (
	"time"

	"github.com/sumtl/restaurant-reviews-app/entity"
	"github.com/sumtl/restaurant-reviews-app/services"

	"github.com/gin-gonic/gin"
)

// En-tête porteur de l'identité de l'appelant.
const userEmailHeader = "X-User-Email"

func callerEmail(c *gin.Context) string {
	return services.NormalizeEmail(c.GetHeader(userEmailHeader))
}

// Instantanés dénormalisés attachés à chaque avis: l'appelant peut
// afficher sans refaire de lookup.

type UserSnapshot struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email,omitempty"`
}

type MenuItemSnapshot struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type ReviewDTO struct {
	ID        uint             `json:"id"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	User      UserSnapshot     `json:"user"`
	MenuItem  MenuItemSnapshot `json:"menuItem"`
}

// toReviewDTO projette un avis préchargé; chaque endpoint choisit
// d'exposer ou non l'email de l'auteur et le détail du plat.
func toReviewDTO(r entity.Review, withEmail, withItemDetails bool) ReviewDTO {
	dto := ReviewDTO{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		User:      UserSnapshot{ID: r.User.ID, Name: r.User.Name},
		MenuItem:  MenuItemSnapshot{ID: r.MenuItem.ID, Name: r.MenuItem.Name},
	}
	if withEmail {
		dto.User.Email = r.User.Email
	}
	if withItemDetails {
		dto.MenuItem.Description = r.MenuItem.Description
		dto.MenuItem.ImageURL = r.MenuItem.ImageURL
	}
	return dto
}

func toReviewDTOs(reviews []entity.Review, withEmail, withItemDetails bool) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewDTO(r, withEmail, withItemDetails))
	}
	return out
}
