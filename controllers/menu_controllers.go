package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus lists available catalog items. Soft-deleted items are
// excluded by gorm automatically.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.MenuItem
	if err := mc.DB.Preload("Category").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByCategory lists items of one category (?category_id=N).
func (mc *MenuController) GetMenuByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Query("category_id"))
	if err != nil {
		utils.RespondWithError(c, utils.InvalidInputf("category_id %q", c.Query("category_id")))
		return
	}

	var menus []models.MenuItem
	if err := mc.DB.Where("category_id = ?", categoryID).Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByID returns one catalog item.
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id := c.Param("menu_id")

	var menu models.MenuItem
	if err := mc.DB.Preload("Category").First(&menu, id).Error; err != nil {
		utils.RespondWithError(c, utils.NotFoundf("menu item", id))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu adds a catalog item (admin only, enforced in the router).
func (mc *MenuController) CreateMenu(c *gin.Context) {
	type request struct {
		CategoryID  uint    `json:"category_id" binding:"required"`
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		TaxRate     float64 `json:"tax_rate"`
		Available   *bool   `json:"available"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Price < 0 {
		utils.RespondWithError(c, utils.InvalidInputf("price %.2f", req.Price))
		return
	}
	if req.TaxRate < 0 || req.TaxRate > 100 {
		utils.RespondWithError(c, utils.InvalidInputf("tax rate %.2f", req.TaxRate))
		return
	}

	var category models.MenuCategory
	if err := mc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondWithError(c, utils.NotFoundf("category", req.CategoryID))
		return
	}

	menu := models.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		TaxRate:     req.TaxRate,
		Available:   true,
	}
	if req.Available != nil {
		menu.Available = *req.Available
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu edits a catalog item. Existing order lines keep the
// price and tax they captured at creation.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id := c.Param("menu_id")

	var menu models.MenuItem
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondWithError(c, utils.NotFoundf("menu item", id))
		return
	}

	type request struct {
		CategoryID  *uint    `json:"category_id"`
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		TaxRate     *float64 `json:"tax_rate"`
		Available   *bool    `json:"available"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CategoryID != nil {
		menu.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		menu.Name = *req.Name
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondWithError(c, utils.InvalidInputf("price %.2f", *req.Price))
			return
		}
		menu.Price = *req.Price
	}
	if req.TaxRate != nil {
		if *req.TaxRate < 0 || *req.TaxRate > 100 {
			utils.RespondWithError(c, utils.InvalidInputf("tax rate %.2f", *req.TaxRate))
			return
		}
		menu.TaxRate = *req.TaxRate
	}
	if req.Available != nil {
		menu.Available = *req.Available
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu soft-deletes a catalog item; historical lines are
// untouched.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id := c.Param("menu_id")

	if err := mc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}
