package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/services"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

type PaymentController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:       db,
		Payments: services.NewPaymentService(db, services.DefaultGateway()),
	}
}

// ChargeSession settles a session. The amount charged is always the
// stored session total; the request only picks the method.
func (pc *PaymentController) ChargeSession(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("session_id"), 10, 32)

	var req services.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.Charge(uint(id), req)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Charge processed", payment)
}

// RefundSession flips a paid session to refunded.
func (pc *PaymentController) RefundSession(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("session_id"), 10, 32)

	session, err := pc.Payments.Refund(uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session refunded", session)
}

// GetSessionPayments lists the charge attempts against a session.
func (pc *PaymentController) GetSessionPayments(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("session_id"), 10, 32)

	payments, err := pc.Payments.ListForSession(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}
