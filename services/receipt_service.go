package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// ReceiptService materializes the final, itemized breakdown of a paid
// session. Receipts are write-once: the data is correct and frozen at
// the moment it is handed to the printing boundary.
type ReceiptService struct {
	DB *gorm.DB
}

func NewReceiptService(db *gorm.DB) *ReceiptService {
	return &ReceiptService{DB: db}
}

// createInTx builds the receipt inside the charge transaction so a
// paid session without a receipt can never be observed.
func (s *ReceiptService) createInTx(tx *gorm.DB, session *models.TableSession, payment *models.Payment) (*models.Receipt, error) {
	totals, err := sessionTotalsInTx(tx, session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	receipt := models.Receipt{
		SessionID:        session.ID,
		PaymentID:        payment.ID,
		ReceiptNumber:    fmt.Sprintf("RCP/%s/%06d", now.Format("20060102"), payment.ID),
		TableNumber:      session.TableNumber,
		Subtotal:         totals.Subtotal,
		ItemDiscount:     totals.ItemDiscount,
		SessionDiscount:  totals.SessionDiscount,
		Tax:              totals.Tax,
		Total:            totals.Total,
		PaymentMethod:    payment.Method,
		PaymentReference: payment.Reference,
		CreatedAt:        now,
	}
	if err := tx.Create(&receipt).Error; err != nil {
		return nil, utils.TransactionFailuref("create receipt", err)
	}

	var items []models.PartOrderItem
	err = tx.Joins("JOIN part_orders ON part_orders.id = part_order_items.part_order_id").
		Where("part_orders.session_id = ?", session.ID).
		Order("part_order_items.id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for i, item := range items {
		var lineDiscount float64
		if i < len(totals.Lines) {
			lineDiscount = totals.Lines[i].Discount
		}
		ri := models.ReceiptItem{
			ReceiptID: receipt.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  lineDiscount,
			Subtotal:  utils.RoundCurrency(float64(item.Quantity)*item.UnitPrice - lineDiscount),
			Notes:     item.Notes,
			CreatedAt: now,
		}
		if err := tx.Create(&ri).Error; err != nil {
			return nil, utils.TransactionFailuref("create receipt item", err)
		}
		receipt.Items = append(receipt.Items, ri)
	}

	return &receipt, nil
}

// Get fetches one receipt with its items.
func (s *ReceiptService) Get(receiptID uint) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := s.DB.Preload("Items").First(&receipt, receiptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("receipt", receiptID)
		}
		return nil, err
	}
	return &receipt, nil
}

// GetBySession fetches the receipt of a paid session.
func (s *ReceiptService) GetBySession(sessionID uint) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := s.DB.Preload("Items").Where("session_id = ?", sessionID).First(&receipt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("receipt for session", sessionID)
		}
		return nil, err
	}
	return &receipt, nil
}
