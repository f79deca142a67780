package repository

import (
	"github.com/sumtl/restaurant-reviews-app/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

// Avis + auteur + plat en une requête (les listes n'ont pas à re-chercher).
func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.Preload("User").Preload("MenuItem").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindAll() ([]entity.Review, error) {
	reviews := []entity.Review{}
	err := r.DB.Preload("User").Preload("MenuItem").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByMenuItem(menuItemID uint) ([]entity.Review, error) {
	reviews := []entity.Review{}
	err := r.DB.Preload("User").Preload("MenuItem").
		Where("menu_item_id = ?", menuItemID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByUser(userID string) ([]entity.Review, error) {
	reviews := []entity.Review{}
	err := r.DB.Preload("User").Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Pré-check du doublon (user, plat); l'index unique reste le juge final.
func (r *ReviewRepository) ExistsForUserAndMenuItem(userID string, menuItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&count).Error
	return count > 0, err
}

// Omit: les associations préchargées par FindByID ne doivent pas
// écraser menu_item_id quand l'avis change de plat.
func (r *ReviewRepository) Update(review *entity.Review) error {
	return r.DB.Omit(clause.Associations).Save(review).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}
