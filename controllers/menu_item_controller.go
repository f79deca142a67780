package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sumtl/restaurant-reviews-app/pkg/resp"
	"github.com/sumtl/restaurant-reviews-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuItemController struct {
	Menu *services.MenuItemService
	Log  *zap.Logger
}

func NewMenuItemController(menu *services.MenuItemService, log *zap.Logger) *MenuItemController {
	return &MenuItemController{Menu: menu, Log: log}
}

// GET /api/menu-items
func (m *MenuItemController) List(c *gin.Context) {
	items, err := m.Menu.ListAll()
	if err != nil {
		m.Log.Error("list menu items failed", zap.Error(err))
		resp.ServerError(c, "Erreur serveur")
		return
	}
	resp.OK(c, items, fmt.Sprintf("%d menu item(s) trouvé(s)", len(items)))
}

// GET /api/menu-items/:id
func (m *MenuItemController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Menu item non trouvé")
		return
	}

	item, err := m.Menu.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, "Menu item non trouvé")
			return
		}
		m.Log.Error("get menu item failed", zap.Uint64("id", id), zap.Error(err))
		resp.ServerError(c, "Erreur lors de la récupération du menu item")
		return
	}
	resp.OK(c, item, "Menu item récupéré avec succès")
}
