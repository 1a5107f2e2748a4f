// Package mockpay simulates a payment provider. There is no real payment
// integration; charges succeed after a short artificial delay, which keeps
// the checkout flow honest about being asynchronous.
package mockpay

import (
	"context"
	"fmt"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

// Option configures a Gateway.
type Option func(*Gateway)

// WithDecline installs a predicate that declines matching charges.
// Used by tests and demo environments to exercise the failure path.
func WithDecline(decline func(customerID string, amount float64) bool) Option {
	return func(g *Gateway) {
		g.decline = decline
	}
}

// Gateway is a simulated ports.PaymentGateway.
type Gateway struct {
	delay   time.Duration
	decline func(customerID string, amount float64) bool
}

// NewGateway creates a gateway that settles charges after delay.
func NewGateway(delay time.Duration, opts ...Option) *Gateway {
	g := &Gateway{delay: delay}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Charge settles a payment after the configured delay. The transaction ID
// mirrors a real provider's receipt reference.
func (g *Gateway) Charge(ctx context.Context, customerID string, amount float64) (ports.Payment, error) {
	if customerID == "" {
		return ports.Payment{}, errs.NewValueIsRequiredError("customerID")
	}
	if amount <= 0 {
		return ports.Payment{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a chargeable amount", amount))
	}

	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return ports.Payment{}, ctx.Err()
		}
	}

	if g.decline != nil && g.decline(customerID, amount) {
		return ports.Payment{}, ports.ErrPaymentDeclined
	}

	return ports.Payment{
		TransactionID: fmt.Sprintf("TXN%d", time.Now().UnixMilli()),
		Amount:        amount,
	}, nil
}
