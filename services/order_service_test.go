package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

func TestCreateOrderSnapshotsCatalog(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(db)

	order, err := svc.Create("Walk-in", []OrderLine{
		{MenuItemID: 1, Quantity: 2},
		{MenuItemID: 2, Quantity: 1, Notes: "no salt"},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	// 2x10.00 +20% tax = 24.00, 1x5.00 +10% tax = 5.50
	assert.Equal(t, 29.50, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Burger", order.Items[0].Name)
	assert.Equal(t, 10.00, order.Items[0].UnitPrice)

	// Raising the catalog price does not move the stored lines.
	db.Model(&models.MenuItem{}).Where("id = ?", 1).Update("price", 99.00)
	got, err := svc.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, 10.00, got.Items[0].UnitPrice)
	assert.Equal(t, 29.50, got.TotalAmount)
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(db)

	_, err := svc.Create("Walk-in", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Create("Walk-in", []OrderLine{{MenuItemID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Create("Walk-in", []OrderLine{{MenuItemID: 999, Quantity: 1}})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// Item 3 is seeded unavailable.
	_, err = svc.Create("Walk-in", []OrderLine{{MenuItemID: 3, Quantity: 1}})
	assert.ErrorIs(t, err, utils.ErrInvalidState)
}

func TestOrderStatusMachine(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(db)

	order, err := svc.Create("Walk-in", []OrderLine{{MenuItemID: 1, Quantity: 1}})
	assert.NoError(t, err)

	for _, target := range []models.OrderStatus{
		models.OrderConfirmed,
		models.OrderPreparing,
		models.OrderReady,
		models.OrderDelivered,
	} {
		order, err = svc.UpdateStatus(order.ID, target)
		assert.NoError(t, err)
		assert.Equal(t, target, order.Status)
	}

	// Delivered is terminal.
	_, err = svc.UpdateStatus(order.ID, models.OrderCancelled)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestOrderCancelOnlyFromPending(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(db)

	order, err := svc.Create("Walk-in", []OrderLine{{MenuItemID: 1, Quantity: 1}})
	assert.NoError(t, err)

	order, err = svc.UpdateStatus(order.ID, models.OrderCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)

	other, err := svc.Create("Second", []OrderLine{{MenuItemID: 1, Quantity: 1}})
	assert.NoError(t, err)
	other, err = svc.UpdateStatus(other.ID, models.OrderConfirmed)
	assert.NoError(t, err)
	_, err = svc.UpdateStatus(other.ID, models.OrderCancelled)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}
