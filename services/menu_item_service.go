package services

import (
	"errors"

	"github.com/sumtl/restaurant-reviews-app/entity"
	"github.com/sumtl/restaurant-reviews-app/repository"

	"gorm.io/gorm"
)

type MenuItemService struct {
	Repo *repository.MenuItemRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository) *MenuItemService {
	return &MenuItemService{Repo: repo}
}

func (s *MenuItemService) ListAll() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuItemService) GetByID(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}
