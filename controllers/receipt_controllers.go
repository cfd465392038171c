package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/services"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

type ReceiptController struct {
	DB       *gorm.DB
	Receipts *services.ReceiptService
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{
		DB:       db,
		Receipts: services.NewReceiptService(db),
	}
}

// GetReceipt returns one receipt with its items.
func (rc *ReceiptController) GetReceipt(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("receipt_id"), 10, 32)

	receipt, err := rc.Receipts.Get(uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Receipt detail", receipt)
}

// GetSessionReceipt returns the receipt of a paid session.
func (rc *ReceiptController) GetSessionReceipt(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("session_id"), 10, 32)

	receipt, err := rc.Receipts.GetBySession(uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Receipt detail", receipt)
}
