package services

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/kds"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/pricing"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// PaymentService closes out sessions against the payment gateway.
// The gateway never computes pricing; the amount charged is the
// session total maintained by SessionService.
type PaymentService struct {
	DB       *gorm.DB
	Gateway  Gateway
	Receipts *ReceiptService
	Currency string
}

func NewPaymentService(db *gorm.DB, gateway Gateway) *PaymentService {
	currency := os.Getenv("PAYMENT_CURRENCY")
	if currency == "" {
		currency = "USD"
	}
	return &PaymentService{
		DB:       db,
		Gateway:  gateway,
		Receipts: NewReceiptService(db),
		Currency: currency,
	}
}

// ChargeRequest describes one charge attempt.
type ChargeRequest struct {
	Method       string  `json:"method" binding:"required"`
	CashReceived float64 `json:"cash_received,omitempty"`
}

// Charge settles a session: closes it if still open, authorizes the
// session total, records the payment attempt and flips the session's
// payment status. A successful charge also produces the receipt, all
// inside the same transaction as the status writes.
func (s *PaymentService) Charge(sessionID uint, req ChargeRequest) (*models.Payment, error) {
	switch req.Method {
	case models.PayMethodCash, models.PayMethodCard, models.PayMethodOnline:
	default:
		return nil, utils.InvalidInputf("payment method %q", req.Method)
	}

	var probe models.TableSession
	if err := s.DB.First(&probe, sessionID).Error; err != nil {
		return nil, utils.NotFoundf("session", sessionID)
	}
	if probe.PayStatus == models.PaymentPaid {
		return nil, utils.InvalidStatef("session %d is already paid", sessionID)
	}

	amount := utils.RoundCurrency(probe.TotalAmount)

	// Authorize before opening the write transaction; the gateway is
	// synchronous and the result is recorded whatever it says.
	var result AuthResult
	var change float64
	switch req.Method {
	case models.PayMethodCash:
		if req.CashReceived < amount {
			return nil, utils.InvalidInputf("cash received %.2f below total %.2f", req.CashReceived, amount)
		}
		change = utils.RoundCurrency(req.CashReceived - amount)
		result = AuthResult{Approved: true, Reference: "CASH-" + uuid.New().String()}
	default:
		var err error
		result, err = s.Gateway.Authorize(sessionID, utils.ToMinorUnits(amount), s.Currency)
		if err != nil {
			return nil, err
		}
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("charge", tx.Error)
	}

	session, err := loadSession(tx, sessionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// Normal flow closes before charging; a session already closed
	// with an earlier failed attempt is charged as-is.
	if session.Status != models.SessionClosed {
		session, err = closeInTx(tx, sessionID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	now := time.Now()
	payment := models.Payment{
		SessionID:    session.ID,
		Amount:       amount,
		Currency:     s.Currency,
		Method:       req.Method,
		Reference:    result.Reference,
		CashReceived: req.CashReceived,
		Change:       change,
		CreatedAt:    now,
	}
	if result.Approved {
		payment.Status = models.PayAttemptSuccess
		payment.PaidAt = &now
		session.PayStatus = models.PaymentPaid
	} else {
		payment.Status = models.PayAttemptFailed
		payment.FailReason = result.Reason
		session.PayStatus = models.PaymentFailed
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("create payment", err)
	}
	// Guard against a racing charge that already flipped the session
	// to paid between the pre-check read and this write.
	res := tx.Model(&models.TableSession{}).
		Where("id = ? AND pay_status <> ?", session.ID, models.PaymentPaid).
		Updates(map[string]interface{}{"pay_status": session.PayStatus, "updated_at": now})
	if res.Error != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("save session", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, utils.InvalidStatef("session %d is already paid", sessionID)
	}

	var receipt *models.Receipt
	if result.Approved {
		receipt, err = s.Receipts.createInTx(tx, session, &payment)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("charge", err)
	}

	utils.InfoLogger.Printf("Payment %s for session %d: %s %.2f %s",
		payment.Status, session.ID, payment.Method, payment.Amount, payment.Currency)

	kds.BroadcastPaymentUpdate(payment)
	kds.BroadcastSessionUpdate(*session)
	if receipt != nil {
		kds.BroadcastReceipt(*receipt)
		kds.BroadcastStaffNotification(settlementNote(session, &payment))
	}
	return &payment, nil
}

// settlementNote is the floor-staff line announced when a bill is
// settled, e.g. "Table 5 settled USD 1.240,00 by card".
func settlementNote(session *models.TableSession, payment *models.Payment) string {
	return fmt.Sprintf("Table %d settled %s %s by %s",
		session.TableNumber, payment.Currency, utils.FormatCurrency(payment.Amount), payment.Method)
}

// Refund flips a paid session to refunded and records the reversal
// against the successful payment. The money movement itself is the
// gateway's problem.
func (s *PaymentService) Refund(sessionID uint) (*models.TableSession, error) {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("refund", tx.Error)
	}

	session, err := loadSession(tx, sessionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if session.PayStatus != models.PaymentPaid {
		tx.Rollback()
		return nil, utils.InvalidStatef("session %d is %s, not paid", sessionID, session.PayStatus)
	}

	session.PayStatus = models.PaymentRefunded
	res := tx.Model(&models.TableSession{}).
		Where("id = ? AND pay_status = ?", session.ID, models.PaymentPaid).
		Update("pay_status", models.PaymentRefunded)
	if res.Error != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("save session", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, utils.InvalidStatef("session %d is no longer paid", sessionID)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("refund", err)
	}

	kds.BroadcastSessionUpdate(*session)
	return session, nil
}

// ListForSession returns the charge attempts against a session,
// oldest first.
func (s *PaymentService) ListForSession(sessionID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("session_id = ?", sessionID).Order("created_at asc").Find(&payments).Error
	return payments, err
}

// sessionTotalsInTx recomputes the full breakdown inside a
// transaction, for receipt generation.
func sessionTotalsInTx(tx *gorm.DB, session *models.TableSession) (pricing.Totals, error) {
	lines, err := sessionLineInputs(tx, session.ID)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.ComputeTotals(lines, sessionDiscountOf(session))
}
