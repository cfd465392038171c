package models

// PartOrderStatus is the kitchen-bound lifecycle of a part order.
// Strictly linear: no skips forward, no moves backward.
type PartOrderStatus string

const (
	PartOrderDraft         PartOrderStatus = "draft"
	PartOrderSentToKitchen PartOrderStatus = "sent_to_kitchen"
	PartOrderPreparing     PartOrderStatus = "preparing"
	PartOrderReady         PartOrderStatus = "ready"
	PartOrderServed        PartOrderStatus = "served"
)

var partOrderNext = map[PartOrderStatus]map[PartOrderStatus]bool{
	PartOrderDraft:         {PartOrderSentToKitchen: true},
	PartOrderSentToKitchen: {PartOrderPreparing: true},
	PartOrderPreparing:     {PartOrderReady: true},
	PartOrderReady:         {PartOrderServed: true},
	PartOrderServed:        {},
}

// CanTransitionPartOrder reports whether from -> to is a legal edge.
func CanTransitionPartOrder(from, to PartOrderStatus) bool {
	return partOrderNext[from][to]
}

// ValidPartOrderStatus reports whether the string names a known status.
func ValidPartOrderStatus(s PartOrderStatus) bool {
	_, ok := partOrderNext[s]
	return ok
}
