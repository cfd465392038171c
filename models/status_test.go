package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartOrderForwardEdges(t *testing.T) {
	assert.True(t, CanTransitionPartOrder(PartOrderDraft, PartOrderSentToKitchen))
	assert.True(t, CanTransitionPartOrder(PartOrderSentToKitchen, PartOrderPreparing))
	assert.True(t, CanTransitionPartOrder(PartOrderPreparing, PartOrderReady))
	assert.True(t, CanTransitionPartOrder(PartOrderReady, PartOrderServed))
}

func TestPartOrderNoSkipsOrBackwardMoves(t *testing.T) {
	// Skipping forward.
	assert.False(t, CanTransitionPartOrder(PartOrderDraft, PartOrderPreparing))
	assert.False(t, CanTransitionPartOrder(PartOrderDraft, PartOrderServed))
	assert.False(t, CanTransitionPartOrder(PartOrderSentToKitchen, PartOrderReady))

	// Backward.
	assert.False(t, CanTransitionPartOrder(PartOrderPreparing, PartOrderSentToKitchen))
	assert.False(t, CanTransitionPartOrder(PartOrderServed, PartOrderReady))

	// Self loop and terminal state.
	assert.False(t, CanTransitionPartOrder(PartOrderDraft, PartOrderDraft))
	assert.False(t, CanTransitionPartOrder(PartOrderServed, PartOrderServed))
}

func TestPartOrderPermissionTable(t *testing.T) {
	cases := []struct {
		role    Role
		target  PartOrderStatus
		allowed bool
	}{
		{RoleServer, PartOrderDraft, true},
		{RoleServer, PartOrderSentToKitchen, true},
		{RoleServer, PartOrderPreparing, false},
		{RoleServer, PartOrderReady, false},
		{RoleServer, PartOrderServed, false},

		{RoleKitchen, PartOrderDraft, false},
		{RoleKitchen, PartOrderSentToKitchen, true},
		{RoleKitchen, PartOrderPreparing, true},
		{RoleKitchen, PartOrderReady, true},
		{RoleKitchen, PartOrderServed, false},

		{RoleAdmin, PartOrderDraft, true},
		{RoleAdmin, PartOrderSentToKitchen, true},
		{RoleAdmin, PartOrderPreparing, true},
		{RoleAdmin, PartOrderReady, true},
		{RoleAdmin, PartOrderServed, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, IsAllowed(tc.role, tc.target),
			"role %s target %s", tc.role, tc.target)
	}
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	assert.False(t, IsAllowed(Role("cleaner"), PartOrderDraft))
	assert.False(t, ValidRole(Role("cleaner")))
}

func TestOrderMachineForwardAndCancel(t *testing.T) {
	assert.True(t, CanTransitionOrder(OrderPending, OrderConfirmed))
	assert.True(t, CanTransitionOrder(OrderConfirmed, OrderPreparing))
	assert.True(t, CanTransitionOrder(OrderPreparing, OrderReady))
	assert.True(t, CanTransitionOrder(OrderReady, OrderDelivered))

	// Cancelled only from pending.
	assert.True(t, CanTransitionOrder(OrderPending, OrderCancelled))
	assert.False(t, CanTransitionOrder(OrderConfirmed, OrderCancelled))
	assert.False(t, CanTransitionOrder(OrderPreparing, OrderCancelled))

	// Terminal states.
	assert.False(t, CanTransitionOrder(OrderDelivered, OrderPending))
	assert.False(t, CanTransitionOrder(OrderCancelled, OrderConfirmed))
}

func TestStatusValidators(t *testing.T) {
	assert.True(t, ValidPartOrderStatus(PartOrderDraft))
	assert.False(t, ValidPartOrderStatus(PartOrderStatus("cooked")))

	assert.True(t, ValidOrderStatus(OrderCancelled))
	assert.False(t, ValidOrderStatus(OrderStatus("sent_to_kitchen")))
}
