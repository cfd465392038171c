package models

// Role of an authenticated actor. The set is closed: a new role means
// touching the permission tables below, which is intentional.
type Role string

const (
	RoleServer  Role = "server"
	RoleKitchen Role = "kitchen"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether the string names a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleServer, RoleKitchen, RoleAdmin:
		return true
	}
	return false
}

// partOrderPermissions lists, per role, the part-order statuses that
// role may set. A transition whose target is absent here fails before
// the state machine is even consulted.
var partOrderPermissions = map[Role]map[PartOrderStatus]bool{
	RoleServer: {
		PartOrderDraft:         true,
		PartOrderSentToKitchen: true,
	},
	RoleKitchen: {
		PartOrderSentToKitchen: true,
		PartOrderPreparing:     true,
		PartOrderReady:         true,
	},
	RoleAdmin: {
		PartOrderDraft:         true,
		PartOrderSentToKitchen: true,
		PartOrderPreparing:     true,
		PartOrderReady:         true,
		PartOrderServed:        true,
	},
}

// IsAllowed is the sole authorization check for status-mutating
// part-order operations: may this role set this target status at all.
func IsAllowed(role Role, target PartOrderStatus) bool {
	return partOrderPermissions[role][target]
}
