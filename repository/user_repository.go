package repository

import (
	"time"

	"github.com/sumtl/restaurant-reviews-app/entity"

	"gorm.io/gorm"
)

// UserRepository ne parle qu'à la table users.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Ligne de liste: user + nombre d'avis, sans second aller-retour.
type UserWithCount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	ReviewsCount int64     `json:"reviewsCount"`
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// Met à jour le nom (nil = redevenir anonyme).
func (r *UserRepository) UpdateName(email string, name *string) (*entity.User, error) {
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).
		Update("name", name).Error; err != nil {
		return nil, err
	}
	return r.FindByEmail(email)
}

func (r *UserRepository) CountReviews(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Tous les utilisateurs, plus récents d'abord, avec leur nombre d'avis.
func (r *UserRepository) ListWithReviewCounts() ([]UserWithCount, error) {
	rows := []UserWithCount{}
	err := r.DB.Model(&entity.User{}).
		Select("users.id, users.email, users.name, users.created_at, " +
			"(SELECT COUNT(*) FROM reviews WHERE reviews.user_id = users.id) AS reviews_count").
		Order("users.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
