package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/kds"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// PartOrderService advances kitchen rounds through their lifecycle.
// The permission table is checked before the state machine: a role
// that may not set the target status is rejected even when the edge
// itself would be legal.
type PartOrderService struct {
	DB *gorm.DB
}

func NewPartOrderService(db *gorm.DB) *PartOrderService {
	return &PartOrderService{DB: db}
}

// Get fetches one part order with its lines.
func (s *PartOrderService) Get(partOrderID uint) (*models.PartOrder, error) {
	var po models.PartOrder
	if err := s.DB.Preload("Items").First(&po, partOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("part order", partOrderID)
		}
		return nil, err
	}
	return &po, nil
}

// KitchenQueue lists the rounds the kitchen currently cares about,
// oldest first.
func (s *PartOrderService) KitchenQueue() ([]models.PartOrder, error) {
	var orders []models.PartOrder
	err := s.DB.Preload("Items").
		Where("status IN ?", []models.PartOrderStatus{models.PartOrderSentToKitchen, models.PartOrderPreparing}).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus moves a part order to the target status on behalf of a
// role. Checks, in order: the target is a known status, the role may
// set it at all, and the edge is one step forward. Backward or
// skipping moves are rejected for every role, admin included.
func (s *PartOrderService) UpdateStatus(partOrderID uint, target models.PartOrderStatus, role models.Role) (*models.PartOrder, error) {
	if !models.ValidPartOrderStatus(target) {
		return nil, utils.InvalidInputf("unknown part order status %q", target)
	}
	if !models.IsAllowed(role, target) {
		return nil, utils.Forbiddenf("role %s may not set status %s", role, target)
	}

	po, err := s.Get(partOrderID)
	if err != nil {
		return nil, err
	}
	from := po.Status
	if !models.CanTransitionPartOrder(from, target) {
		return nil, utils.InvalidTransitionf(string(from), string(target))
	}

	po.Status = target
	po.UpdatedAt = time.Now()
	// Compare-and-set on the status we read: a concurrent transition
	// that slipped in first leaves zero rows, never a backward move.
	res := s.DB.Model(&models.PartOrder{}).
		Where("id = ? AND status = ?", po.ID, from).
		Updates(map[string]interface{}{"status": po.Status, "updated_at": po.UpdatedAt})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.InvalidTransitionf(string(from), string(target))
	}

	kds.BroadcastPartOrderUpdate(*po)
	return po, nil
}

// MarkPrinted stamps the printed-at timestamp and, if the round is
// still a draft, sends it to the kitchen. Printing an already-sent
// round is a no-op on status and never clears the first timestamp.
func (s *PartOrderService) MarkPrinted(partOrderID uint) (*models.PartOrder, error) {
	po, err := s.Get(partOrderID)
	if err != nil {
		return nil, err
	}
	from := po.Status

	if po.PrintedAt == nil {
		now := time.Now()
		po.PrintedAt = &now
	}
	advanced := false
	if po.Status == models.PartOrderDraft {
		po.Status = models.PartOrderSentToKitchen
		advanced = true
	}

	// updated_at always changes so the row counts as affected even
	// when a re-print writes the same status and timestamp back.
	res := s.DB.Model(&models.PartOrder{}).
		Where("id = ? AND status = ?", po.ID, from).
		Updates(map[string]interface{}{"status": po.Status, "printed_at": po.PrintedAt, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.InvalidStatef("part order %d changed while printing", po.ID)
	}

	if advanced {
		kds.BroadcastPartOrderCreate(*po)
	}
	return po, nil
}
