package services

import (
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// AuthResult is the gateway's answer to a charge attempt. A declined
// charge is a normal result, not an error; errors mean the gateway
// could not be reached at all.
type AuthResult struct {
	Approved  bool
	Reference string
	Reason    string
}

// Gateway authorizes a charge for a session. Synchronous and opaque:
// the core hands over an amount in minor units and gets back a yes or
// no with a reference.
type Gateway interface {
	Authorize(sessionID uint, amountMinorUnits int64, currency string) (AuthResult, error)
}

// mockGateway is the built-in gateway. Mode "decline" refuses
// everything, anything else approves; either way the answer is
// deterministic so charge flows can be exercised end to end without a
// provider account.
type mockGateway struct {
	declineAll bool
}

func (g *mockGateway) Authorize(sessionID uint, amountMinorUnits int64, currency string) (AuthResult, error) {
	if g.declineAll {
		return AuthResult{
			Approved: false,
			Reason:   "declined by gateway",
		}, nil
	}
	return AuthResult{
		Approved:  true,
		Reference: uuid.New().String(),
	}, nil
}

var (
	defaultGateway     Gateway
	defaultGatewayOnce sync.Once
)

// DefaultGateway returns the process-wide gateway, selected by
// PAYMENT_GATEWAY_MODE (approve by default, "decline" to refuse all).
func DefaultGateway() Gateway {
	defaultGatewayOnce.Do(func() {
		mode := strings.ToLower(os.Getenv("PAYMENT_GATEWAY_MODE"))
		defaultGateway = &mockGateway{declineAll: mode == "decline"}
	})
	return defaultGateway
}
