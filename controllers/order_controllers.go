package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/services"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// OrderController handles whole orders (takeaway/delivery). Distinct
// from part orders: different lifecycle, no table session.
type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Orders: services.NewOrderService(db),
	}
}

// GetAllOrders lists orders with their items.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder creates a whole order in pending status.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type request struct {
		CustomerName string               `json:"customer_name"`
		Items        []services.OrderLine `json:"items" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Create(req.CustomerName, req.Items)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID returns one order with its items.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("order_id"), 10, 32)

	order, err := oc.Orders.Get(uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus advances the whole-order machine; cancelled is
// only reachable from pending.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("order_id"), 10, 32)

	type request struct {
		Status string `json:"status" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(uint(id), models.OrderStatus(req.Status))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}
