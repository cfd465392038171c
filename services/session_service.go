package services

import (
	"errors"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/kds"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/pricing"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// SessionService owns the table-session aggregate: opening tables,
// attaching kitchen rounds, discount edits and close-out. Every write
// runs in one transaction and ends with a full recompute of the
// session total from its lines; the total is never adjusted
// incrementally, so concurrent rounds against the same table cannot
// drift it.
type SessionService struct {
	DB *gorm.DB

	// Whether session discounts may still be corrected on a closed
	// but not yet paid session. Source systems disagree on this, so
	// it is a deployment decision (ALLOW_DISCOUNT_AFTER_CLOSE).
	AllowDiscountAfterClose bool
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{
		DB:                      db,
		AllowDiscountAfterClose: os.Getenv("ALLOW_DISCOUNT_AFTER_CLOSE") != "false",
	}
}

// PartOrderLine is one requested line of a new part order.
type PartOrderLine struct {
	MenuItemID uint              `json:"menu_item_id" binding:"required"`
	Quantity   int               `json:"quantity" binding:"required"`
	Notes      string            `json:"notes"`
	Discount   *pricing.Discount `json:"discount,omitempty"`
}

// LineItemUpdate mutates an existing line. Nil fields are untouched;
// ClearDiscount removes the line discount.
type LineItemUpdate struct {
	Quantity      *int              `json:"quantity,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	Discount      *pricing.Discount `json:"discount,omitempty"`
	ClearDiscount bool              `json:"clear_discount,omitempty"`
}

// Open returns the active session for the table if one exists,
// otherwise creates a fresh one. Two opens in a row for the same
// table yield the same session; a table never has two active
// sessions.
func (s *SessionService) Open(tableNumber int, serverID uint, customerName string) (*models.TableSession, error) {
	if tableNumber <= 0 {
		return nil, utils.InvalidInputf("table number %d", tableNumber)
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("open session", tx.Error)
	}

	var existing models.TableSession
	err := tx.Where("table_number = ? AND status = ?", tableNumber, models.SessionActive).
		Preload("PartOrders.Items").
		First(&existing).Error
	if err == nil {
		tx.Rollback()
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, err
	}

	var table models.Table
	if err := tx.Where("table_number = ?", tableNumber).First(&table).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("table", tableNumber)
		}
		return nil, err
	}

	now := time.Now()
	session := models.TableSession{
		TableNumber:  tableNumber,
		ServerID:     serverID,
		CustomerName: customerName,
		Status:       models.SessionActive,
		PayStatus:    models.PaymentPending,
		TotalAmount:  0,
		OpenedAt:     now,
	}
	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("create session", err)
	}

	// Mark the physical table occupied when it is registered.
	if err := tx.Model(&models.Table{}).
		Where("table_number = ?", tableNumber).
		Update("status", models.TableOccupied).Error; err != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("occupy table", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("open session", err)
	}
	return &session, nil
}

// Get fetches a session with its part orders and lines in one call.
func (s *SessionService) Get(sessionID uint) (*models.TableSession, error) {
	var session models.TableSession
	if err := s.DB.Preload("PartOrders.Items").First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("session", sessionID)
		}
		return nil, err
	}
	return &session, nil
}

// AttachPartOrder inserts a new draft part order with its lines and
// recomputes the session total, all in one transaction. Prices, tax
// rates and names are captured from the catalog at this moment and
// never re-read.
func (s *SessionService) AttachPartOrder(sessionID, serverID uint, lines []PartOrderLine) (*models.PartOrder, error) {
	if len(lines) == 0 {
		return nil, utils.InvalidInputf("part order needs at least one line")
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("attach part order", tx.Error)
	}

	session, err := loadSession(tx, sessionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if session.Status == models.SessionClosed {
		tx.Rollback()
		return nil, utils.InvalidStatef("session %d is closed", sessionID)
	}

	now := time.Now()
	po := models.PartOrder{
		SessionID:   session.ID,
		ServerID:    serverID,
		TableNumber: session.TableNumber,
		Status:      models.PartOrderDraft,
		CreatedAt:   now,
	}
	if err := tx.Create(&po).Error; err != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("create part order", err)
	}

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

		item := models.PartOrderItem{
			PartOrderID: po.ID,
			MenuItemID:  menu.ID,
			Name:        menu.Name,
			Quantity:    line.Quantity,
			UnitPrice:   menu.Price,
			TaxRate:     menu.TaxRate,
			Notes:       line.Notes,
		}
		if line.Discount != nil {
			if line.Discount.Value < 0 {
				tx.Rollback()
				return nil, utils.InvalidInputf("menu item %d: negative discount", menu.ID)
			}
			item.DiscountType = line.Discount.Kind
			item.DiscountValue = line.Discount.Value
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return nil, utils.TransactionFailuref("create part order item", err)
		}
		po.Items = append(po.Items, item)
	}

	if err := s.recomputeTotal(tx, session); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("attach part order", err)
	}

	kds.BroadcastSessionUpdate(*session)
	return &po, nil
}

// EditLineItem mutates one stored line and recomputes the session
// total in the same transaction. Rejected once the session is closed.
func (s *SessionService) EditLineItem(sessionID, itemID uint, upd LineItemUpdate) (*models.PartOrderItem, error) {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("edit line item", tx.Error)
	}

	session, err := loadSession(tx, sessionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if session.Status == models.SessionClosed {
		tx.Rollback()
		return nil, utils.InvalidStatef("session %d is closed", sessionID)
	}

	var item models.PartOrderItem
	err = tx.Joins("JOIN part_orders ON part_orders.id = part_order_items.part_order_id").
		Where("part_order_items.id = ? AND part_orders.session_id = ?", itemID, sessionID).
		First(&item).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("line item", itemID)
		}
		return nil, err
	}

	if upd.Quantity != nil {
		if *upd.Quantity <= 0 {
			tx.Rollback()
			return nil, utils.InvalidInputf("quantity %d", *upd.Quantity)
		}
		item.Quantity = *upd.Quantity
	}
	if upd.Notes != nil {
		item.Notes = *upd.Notes
	}
	if upd.ClearDiscount {
		item.DiscountType = models.DiscountNone
		item.DiscountValue = 0
	} else if upd.Discount != nil {
		if upd.Discount.Value < 0 {
			tx.Rollback()
			return nil, utils.InvalidInputf("negative discount")
		}
		item.DiscountType = upd.Discount.Kind
		item.DiscountValue = upd.Discount.Value
	}

	if err := tx.Save(&item).Error; err != nil {
		tx.Rollback()
		return nil, utils.TransactionFailuref("save line item", err)
	}

	if err := s.recomputeTotal(tx, session); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("edit line item", err)
	}
	return &item, nil
}

// SetSessionDiscount sets or clears the session-level discount and
// recomputes the total. On a closed session this is only permitted
// while payment is still outstanding, and only if the deployment
// allows post-close corrections.
func (s *SessionService) SetSessionDiscount(sessionID uint, discount *pricing.Discount) (*models.TableSession, error) {
	if discount != nil && discount.Value < 0 {
		return nil, utils.InvalidInputf("negative discount")
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("set session discount", tx.Error)
	}

	session, err := loadSession(tx, sessionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if session.Status == models.SessionClosed {
		if !s.AllowDiscountAfterClose || session.PayStatus == models.PaymentPaid {
			tx.Rollback()
			return nil, utils.InvalidStatef("session %d is closed", sessionID)
		}
	}

	if discount == nil {
		session.DiscountType = models.DiscountNone
		session.DiscountValue = 0
	} else {
		session.DiscountType = discount.Kind
		session.DiscountValue = discount.Value
	}

	if err := s.recomputeTotal(tx, session); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("set session discount", err)
	}

	kds.BroadcastSessionUpdate(*session)
	return session, nil
}

// MarkReadyToClose moves an active session to ready_to_close (the
// "asked for the bill" state).
func (s *SessionService) MarkReadyToClose(sessionID uint) (*models.TableSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionActive {
		return nil, utils.InvalidStatef("session %d is %s", sessionID, session.Status)
	}
	session.Status = models.SessionReadyToClose
	res := s.DB.Model(&models.TableSession{}).
		Where("id = ? AND status = ?", session.ID, models.SessionActive).
		Update("status", models.SessionReadyToClose)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.InvalidStatef("session %d is no longer active", sessionID)
	}
	return session, nil
}

// Close finalizes a session: status closed, close timestamp stamped,
// lines frozen, table released. Valid from active or ready_to_close.
func (s *SessionService) Close(sessionID uint) (*models.TableSession, error) {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("close session", tx.Error)
	}

	session, err := closeInTx(tx, sessionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("close session", err)
	}
	return session, nil
}

// closeInTx performs the close inside an existing transaction so the
// payment flow can close-and-charge atomically. The status write is
// conditional on the session still being open, so two racing closers
// cannot both succeed.
func closeInTx(tx *gorm.DB, sessionID uint) (*models.TableSession, error) {
	session, err := loadSession(tx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionActive && session.Status != models.SessionReadyToClose {
		return nil, utils.InvalidStatef("session %d is %s", sessionID, session.Status)
	}

	now := time.Now()
	res := tx.Model(&models.TableSession{}).
		Where("id = ? AND status IN ?", session.ID,
			[]models.SessionStatus{models.SessionActive, models.SessionReadyToClose}).
		Updates(map[string]interface{}{"status": models.SessionClosed, "closed_at": now})
	if res.Error != nil {
		return nil, utils.TransactionFailuref("close session", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, utils.InvalidStatef("session %d is already closed", sessionID)
	}
	session.Status = models.SessionClosed
	session.ClosedAt = &now

	if err := tx.Model(&models.Table{}).
		Where("table_number = ?", session.TableNumber).
		Update("status", models.TableAvailable).Error; err != nil {
		return nil, utils.TransactionFailuref("release table", err)
	}

	return session, nil
}

// SetPaymentStatus updates the payment status independently of the
// session's open/closed state.
func (s *SessionService) SetPaymentStatus(sessionID uint, status models.PaymentStatus) (*models.TableSession, error) {
	switch status {
	case models.PaymentPending, models.PaymentPaid, models.PaymentFailed, models.PaymentRefunded:
	default:
		return nil, utils.InvalidInputf("payment status %q", status)
	}

	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	previous := session.PayStatus
	session.PayStatus = status
	res := s.DB.Model(&models.TableSession{}).
		Where("id = ? AND pay_status = ?", session.ID, previous).
		Updates(map[string]interface{}{"pay_status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.InvalidStatef("session %d payment status moved past %s", sessionID, previous)
	}
	return session, nil
}

// RecomputeTotal re-derives the stored total from the full set of
// lines plus the session discount. Exposed for reconciliation; the
// write paths already do this inside their own transactions.
func (s *SessionService) RecomputeTotal(sessionID uint) (*models.TableSession, error) {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, utils.TransactionFailuref("recompute total", tx.Error)
	}

	session, err := loadSession(tx, sessionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := s.recomputeTotal(tx, session); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.TransactionFailuref("recompute total", err)
	}
	return session, nil
}

// recomputeTotal is the single place the stored total is written.
func (s *SessionService) recomputeTotal(tx *gorm.DB, session *models.TableSession) error {
	lines, err := sessionLineInputs(tx, session.ID)
	if err != nil {
		return err
	}

	totals, err := pricing.ComputeTotals(lines, sessionDiscountOf(session))
	if err != nil {
		return err
	}

	session.TotalAmount = totals.Total
	if err := tx.Save(session).Error; err != nil {
		return utils.TransactionFailuref("save session total", err)
	}
	return nil
}

// SessionTotals computes the full breakdown for display or receipts.
func (s *SessionService) SessionTotals(sessionID uint) (pricing.Totals, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return pricing.Totals{}, err
	}
	lines, err := sessionLineInputs(s.DB, session.ID)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.ComputeTotals(lines, sessionDiscountOf(session))
}

func loadSession(tx *gorm.DB, sessionID uint) (*models.TableSession, error) {
	var session models.TableSession
	if err := tx.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("session", sessionID)
		}
		return nil, err
	}
	return &session, nil
}

// sessionLineInputs loads every line of every part order of a session
// as pricing input.
func sessionLineInputs(tx *gorm.DB, sessionID uint) ([]pricing.LineInput, error) {
	var items []models.PartOrderItem
	err := tx.Joins("JOIN part_orders ON part_orders.id = part_order_items.part_order_id").
		Where("part_orders.session_id = ?", sessionID).
		Order("part_order_items.id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.LineInput, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.LineInput{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			TaxRate:   item.TaxRate,
			Discount:  itemDiscountOf(&item),
		})
	}
	return lines, nil
}

func itemDiscountOf(item *models.PartOrderItem) *pricing.Discount {
	if item.DiscountType == models.DiscountNone {
		return nil
	}
	return &pricing.Discount{Kind: item.DiscountType, Value: item.DiscountValue}
}

func sessionDiscountOf(session *models.TableSession) *pricing.Discount {
	if session.DiscountType == models.DiscountNone {
		return nil
	}
	return &pricing.Discount{Kind: session.DiscountType, Value: session.DiscountValue}
}
