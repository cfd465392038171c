package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/middlewares"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/services"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

type PartOrderController struct {
	DB         *gorm.DB
	PartOrders *services.PartOrderService
}

func NewPartOrderController(db *gorm.DB) *PartOrderController {
	return &PartOrderController{
		DB:         db,
		PartOrders: services.NewPartOrderService(db),
	}
}

// GetPartOrder returns one kitchen round with its lines.
func (pc *PartOrderController) GetPartOrder(c *gin.Context) {
	po, err := pc.PartOrders.Get(partOrderID(c))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Part order detail", po)
}

// GetKitchenQueue lists sent and in-preparation rounds for the
// kitchen display.
func (pc *PartOrderController) GetKitchenQueue(c *gin.Context) {
	orders, err := pc.PartOrders.KitchenQueue()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", orders)
}

// UpdateStatus moves a round through its lifecycle on behalf of the
// authenticated role.
func (pc *PartOrderController) UpdateStatus(c *gin.Context) {
	type request struct {
		Status string `json:"status" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role, ok := middlewares.ActorRole(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("role not found in context"))
		return
	}

	po, err := pc.PartOrders.UpdateStatus(partOrderID(c), models.PartOrderStatus(req.Status), role)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Part order updated", po)
}

// MarkPrinted stamps the ticket print and sends a draft round to the
// kitchen.
func (pc *PartOrderController) MarkPrinted(c *gin.Context) {
	po, err := pc.PartOrders.MarkPrinted(partOrderID(c))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Part order printed", po)
}

func partOrderID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("part_order_id"), 10, 32)
	return uint(id)
}
