package models

// OrderStatus is the lifecycle of a whole order (takeaway/delivery
// path). A separate machine from PartOrderStatus on purpose: it has a
// cancel branch and different stations, and the two vocabularies must
// not be merged.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderNext = map[OrderStatus]map[OrderStatus]bool{
	OrderPending:   {OrderConfirmed: true, OrderCancelled: true},
	OrderConfirmed: {OrderPreparing: true},
	OrderPreparing: {OrderReady: true},
	OrderReady:     {OrderDelivered: true},
	OrderDelivered: {},
	OrderCancelled: {},
}

// CanTransitionOrder reports whether from -> to is a legal edge.
// Cancellation is only reachable from pending.
func CanTransitionOrder(from, to OrderStatus) bool {
	return orderNext[from][to]
}

// ValidOrderStatus reports whether the string names a known status.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderNext[s]
	return ok
}
