package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/pricing"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// OrderService handles whole orders on the takeaway/delivery path.
// These run their own state machine and are not part of any table
// session.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// OrderLine is a requested line of a whole order.
type OrderLine struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Notes      string `json:"notes"`
}

// Create inserts an order with its lines and total in one
// transaction. Lines snapshot the catalog like part-order lines do.
func (s *OrderService) Create(customerName string, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, utils.InvalidInputf("order needs at least one line")
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("create order", tx.Error)
	}

	order := models.Order{
		CustomerName: customerName,
		Status:       models.OrderPending,
		CreatedAt:    time.Now(),
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("create order", err)
	}

	var inputs []pricing.LineInput
	for _, line := range lines {
		if line.Quantity <= 0 {
			tx.Rollback()
			return nil, utils.InvalidInputf("menu item %d: quantity %d", line.MenuItemID, line.Quantity)
		}

		var menu models.MenuItem
		if err := tx.First(&menu, line.MenuItemID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NotFoundf("menu item", line.MenuItemID)
			}
			return nil, err
		}
		if !menu.Available {
			tx.Rollback()
			return nil, utils.InvalidStatef("menu item %d is not available", menu.ID)
		}

		item := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menu.ID,
			Name:       menu.Name,
			Quantity:   line.Quantity,
			UnitPrice:  menu.Price,
			TaxRate:    menu.TaxRate,
			Notes:      line.Notes,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return nil, utils.TransactionFailuref("create order item", err)
		}
		order.Items = append(order.Items, item)
		inputs = append(inputs, pricing.LineInput{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			TaxRate:   item.TaxRate,
		})
	}

	totals, err := pricing.ComputeTotals(inputs, nil)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	order.TotalAmount = totals.Total
	if err := tx.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("total_amount", order.TotalAmount).Error; err != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("save order total", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("create order", err)
	}
	return &order, nil
}

// Get fetches one order with its lines.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("order", orderID)
		}
		return nil, err
	}
	return &order, nil
}

// List returns all orders, newest first.
func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Items").Order("created_at desc").Find(&orders).Error
	return orders, err
}

// UpdateStatus advances a whole order. Cancellation is only reachable
// from pending; otherwise the machine is strictly forward.
func (s *OrderService) UpdateStatus(orderID uint, target models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(target) {
		return nil, utils.InvalidInputf("unknown order status %q", target)
	}

	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransitionOrder(order.Status, target) {
		return nil, utils.InvalidTransitionf(string(order.Status), string(target))
	}

	order.Status = target
	order.UpdatedAt = time.Now()
	if err := s.DB.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{"status": order.Status, "updated_at": order.UpdatedAt}).Error; err != nil {
		return nil, err
	}
	return order, nil
}
