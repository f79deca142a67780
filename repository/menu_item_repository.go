package repository

import (
	"github.com/sumtl/restaurant-reviews-app/entity"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// Tout le menu, trié par nom.
func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	items := []entity.MenuItem{}
	err := r.DB.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}

// Utilisé par le seed uniquement; pas d'endpoint d'écriture sur le menu.
func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}
