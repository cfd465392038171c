package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/middlewares"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/pricing"
	"github.com/sreekln/HotelOrderingSystem-sub000/services"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

type SessionController struct {
	DB       *gorm.DB
	Sessions *services.SessionService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{
		DB:       db,
		Sessions: services.NewSessionService(db),
	}
}

// OpenSession opens (or re-joins) the active session for a table.
// Opening an already-occupied table returns the existing session.
func (sc *SessionController) OpenSession(c *gin.Context) {
	type request struct {
		TableNumber  int    `json:"table_number" binding:"required"`
		CustomerName string `json:"customer_name"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	serverID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	session, err := sc.Sessions.Open(req.TableNumber, serverID, req.CustomerName)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session open", session)
}

// GetAllSessions lists sessions, optionally filtered by ?status=.
func (sc *SessionController) GetAllSessions(c *gin.Context) {
	q := sc.DB.Preload("PartOrders.Items").Order("opened_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var sessions []models.TableSession
	if err := q.Find(&sessions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of sessions", sessions)
}

// GetSession returns one session with its part orders and lines.
func (sc *SessionController) GetSession(c *gin.Context) {
	id := sessionID(c)

	session, err := sc.Sessions.Get(id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session detail", session)
}

// GetSessionTotals returns the full pricing breakdown.
func (sc *SessionController) GetSessionTotals(c *gin.Context) {
	id := sessionID(c)

	totals, err := sc.Sessions.SessionTotals(id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session totals", totals)
}

// AttachPartOrder adds a new round of items to the session.
func (sc *SessionController) AttachPartOrder(c *gin.Context) {
	id := sessionID(c)

	type request struct {
		Lines []services.PartOrderLine `json:"lines" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	serverID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	po, err := sc.Sessions.AttachPartOrder(id, serverID, req.Lines)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Part order created", po)
}

// EditLineItem updates one stored line; the session total is
// recomputed in the same transaction.
func (sc *SessionController) EditLineItem(c *gin.Context) {
	id := sessionID(c)
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, utils.InvalidInputf("item id %q", c.Param("item_id")))
		return
	}

	var upd services.LineItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := sc.Sessions.EditLineItem(id, uint(itemID), upd)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Line item updated", item)
}

// SetDiscount sets or clears the session-level discount.
func (sc *SessionController) SetDiscount(c *gin.Context) {
	id := sessionID(c)

	type request struct {
		Discount *pricing.Discount `json:"discount"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := sc.Sessions.SetSessionDiscount(id, req.Discount)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session discount updated", session)
}

// MarkReadyToClose flags the session as awaiting its bill.
func (sc *SessionController) MarkReadyToClose(c *gin.Context) {
	session, err := sc.Sessions.MarkReadyToClose(sessionID(c))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session ready to close", session)
}

// CloseSession closes the session and freezes its lines.
func (sc *SessionController) CloseSession(c *gin.Context) {
	session, err := sc.Sessions.Close(sessionID(c))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session closed", session)
}

// SetPaymentStatus overrides the payment status (admin flows like
// manual reconciliation).
func (sc *SessionController) SetPaymentStatus(c *gin.Context) {
	type request struct {
		Status string `json:"status" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := sc.Sessions.SetPaymentStatus(sessionID(c), models.PaymentStatus(req.Status))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment status updated", session)
}

func sessionID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("session_id"), 10, 32)
	return uint(id)
}
