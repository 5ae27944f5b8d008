package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/utils"
)

// MenuController serves the static catalog.
type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

// GetAllMenus returns the catalog, optionally filtered by ?category=.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		utils.RespondJSON(c, http.StatusOK, "List of menus", models.MenuItems)
		return
	}

	filtered := make([]models.MenuItem, 0)
	for _, item := range models.MenuItems {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", filtered)
}

// GetMenuByID returns one catalog item.
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	item, ok := models.FindMenuItem(c.Param("menu_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

// GetAllCategories returns the category list in display order.
func (mc *MenuController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", models.MenuCategories)
}
