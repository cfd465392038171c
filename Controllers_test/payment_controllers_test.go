package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/controllers"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/services"
)

func setupPaymentRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(authAs(1, models.RoleServer))

	paymentCtrl := controllers.NewPaymentController(db)
	receiptCtrl := controllers.NewReceiptController(db)
	router.POST("/sessions/:session_id/charge", paymentCtrl.ChargeSession)
	router.POST("/sessions/:session_id/refund", paymentCtrl.RefundSession)
	router.GET("/sessions/:session_id/payments", paymentCtrl.GetSessionPayments)
	router.GET("/sessions/:session_id/receipt", receiptCtrl.GetSessionReceipt)
	return router
}

// billableSession seeds a session holding 2x Burger (24.00 with tax).
func billableSession(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	sessions := services.NewSessionService(db)
	session, err := sessions.Open(7, 1, "")
	assert.NoError(t, err)
	_, err = sessions.AttachPartOrder(session.ID, 1, []services.PartOrderLine{
		{MenuItemID: 1, Quantity: 2},
	})
	assert.NoError(t, err)
	return session.ID
}

func TestChargeAndReceiptOverHTTP(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	router := setupPaymentRouter(db)
	sessionID := billableSession(t, db)

	w := doJSON(t, router, "POST", fmt.Sprintf("/sessions/%d/charge", sessionID), map[string]interface{}{
		"method": "card",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	payment := decodeData(t, w)
	assert.Equal(t, "success", payment["status"])
	assert.Equal(t, 24.00, payment["amount"])

	// The session is now closed and paid.
	var session models.TableSession
	assert.NoError(t, db.First(&session, sessionID).Error)
	assert.Equal(t, models.SessionClosed, session.Status)
	assert.Equal(t, models.PaymentPaid, session.PayStatus)

	// Charging again conflicts.
	w = doJSON(t, router, "POST", fmt.Sprintf("/sessions/%d/charge", sessionID), map[string]interface{}{
		"method": "card",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The receipt carries the full breakdown.
	w = doJSON(t, router, "GET", fmt.Sprintf("/sessions/%d/receipt", sessionID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	receipt := decodeData(t, w)
	assert.Equal(t, 20.00, receipt["subtotal"])
	assert.Equal(t, 4.00, receipt["tax"])
	assert.Equal(t, 24.00, receipt["total"])
	assert.NotEmpty(t, receipt["receipt_number"])

	w = doJSON(t, router, "GET", fmt.Sprintf("/sessions/%d/payments", sessionID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeDataList(t, w), 1)
}

func TestCashChargeValidationOverHTTP(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	router := setupPaymentRouter(db)
	sessionID := billableSession(t, db)

	// Cash below the total is a bad request, not a failed payment.
	w := doJSON(t, router, "POST", fmt.Sprintf("/sessions/%d/charge", sessionID), map[string]interface{}{
		"method":        "cash",
		"cash_received": 10.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", fmt.Sprintf("/sessions/%d/charge", sessionID), map[string]interface{}{
		"method":        "cash",
		"cash_received": 25.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	payment := decodeData(t, w)
	assert.Equal(t, "success", payment["status"])
	assert.Equal(t, 1.00, payment["change"])
}

func TestRefundOverHTTP(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	router := setupPaymentRouter(db)
	sessionID := billableSession(t, db)

	// Refunding an unpaid session conflicts.
	w := doJSON(t, router, "POST", fmt.Sprintf("/sessions/%d/refund", sessionID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, "POST", fmt.Sprintf("/sessions/%d/charge", sessionID), map[string]interface{}{
		"method": "card",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", fmt.Sprintf("/sessions/%d/refund", sessionID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "refunded", decodeData(t, w)["payment_status"])
}

func TestChargeUnknownSessionOverHTTP(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	router := setupPaymentRouter(db)

	w := doJSON(t, router, "POST", "/sessions/999/charge", map[string]interface{}{
		"method": "card",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
