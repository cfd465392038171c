package Controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/controllers"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
)

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	menuCtrl := controllers.NewMenuController(db)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.GET("/menus/by-category", menuCtrl.GetMenuByCategory)
	router.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	router.POST("/menus", menuCtrl.CreateMenu)
	router.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	return router
}

func TestCreateAndGetMenu(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.MenuCategory{Name: "Drinks"})
	router := setupMenuRouter(db)

	w := doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"category_id": 1,
		"name":        "Lemonade",
		"price":       3.50,
		"tax_rate":    10,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	menuID := int(data["id"].(float64))
	assert.Equal(t, 3.50, data["price"])
	assert.Equal(t, true, data["available"])

	w = doJSON(t, router, "GET", "/menus/"+strconv.Itoa(menuID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lemonade", decodeData(t, w)["name"])
}

func TestCreateMenuUnavailable(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.MenuCategory{Name: "Drinks"})
	router := setupMenuRouter(db)

	// An explicit false must survive the insert and keep the item
	// off the orderable set.
	w := doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"category_id": 1,
		"name":        "Seasonal Special",
		"price":       8.00,
		"available":   false,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	menuID := int(decodeData(t, w)["id"].(float64))

	var stored models.MenuItem
	assert.NoError(t, db.First(&stored, menuID).Error)
	assert.False(t, stored.Available)

	w = doJSON(t, router, "GET", "/menus/"+strconv.Itoa(menuID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeData(t, w)["available"])
}

func TestCreateMenuValidation(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.MenuCategory{Name: "Drinks"})
	router := setupMenuRouter(db)

	w := doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"category_id": 1,
		"name":        "Bad Tax",
		"price":       3.50,
		"tax_rate":    120,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"category_id": 99,
		"name":        "Orphan",
		"price":       3.50,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMenuKeepsHistoricalLines(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	router := setupMenuRouter(db)

	// Freeze a line, then raise the catalog price.
	item := models.PartOrderItem{
		PartOrderID: 1,
		MenuItemID:  1,
		Name:        "Burger",
		Quantity:    1,
		UnitPrice:   10.00,
		TaxRate:     20,
	}
	db.Create(&item)

	w := doJSON(t, router, "PATCH", "/menus/1", map[string]interface{}{
		"price": 12.00,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12.00, decodeData(t, w)["price"])

	var got models.PartOrderItem
	assert.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 10.00, got.UnitPrice)
}

func TestDeleteMenuIsSoft(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	router := setupMenuRouter(db)

	w := doJSON(t, router, "DELETE", "/menus/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/menus/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The row survives for historical joins.
	var count int64
	db.Unscoped().Model(&models.MenuItem{}).Where("id = ?", 1).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetMenuByCategory(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	db.Create(&models.MenuCategory{Name: "Drinks"})
	db.Create(&models.MenuItem{CategoryID: 2, Name: "Cola", Price: 2.50, Available: true})
	router := setupMenuRouter(db)

	w := doJSON(t, router, "GET", "/menus/by-category?category_id=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeDataList(t, w)
	assert.Len(t, list, 1)

	w = doJSON(t, router, "GET", "/menus/by-category?category_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
