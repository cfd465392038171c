package Controllers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// newTestDB opens a per-test SQLite in-memory database and migrates
// every model. Each test gets its own database so tests stay
// independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.TableSession{},
		&models.PartOrder{},
		&models.PartOrderItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Receipt{},
		&models.ReceiptItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedCatalog inserts the fixture data the session and payment tests
// order against.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	db.Create(&models.User{Name: "Sam", Email: "sam@example.com", Password: "x", Role: models.RoleServer})
	db.Create(&models.Table{TableNumber: 7, Status: models.TableAvailable})
	db.Create(&models.MenuCategory{Name: "Mains"})
	db.Create(&models.MenuItem{CategoryID: 1, Name: "Burger", Price: 10.00, TaxRate: 20, Available: true})
	db.Create(&models.MenuItem{CategoryID: 1, Name: "Fries", Price: 5.00, TaxRate: 10, Available: true})
}

// authAs fakes the auth middleware by planting the identity the
// handlers read out of the context.
func authAs(userID uint, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}
