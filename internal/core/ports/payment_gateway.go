package ports

import (
	"context"
	"errors"
)

// ErrPaymentDeclined is returned by a PaymentGateway when the provider
// rejects the charge. Callers treat it as a business failure, not an
// infrastructure one.
var ErrPaymentDeclined = errors.New("payment declined")

// Payment is the provider's receipt for a successful charge.
type Payment struct {
	// TransactionID is the provider-assigned reference for the charge.
	TransactionID string

	// Amount is the amount actually charged, in Ksh.
	Amount float64
}

// PaymentGateway charges the customer for a delivery before the parcel
// is created. Implementations wrap an external payment provider.
type PaymentGateway interface {
	// Charge attempts to collect amount (in Ksh) from the customer
	// identified by customerID. Returns ErrPaymentDeclined when the
	// provider rejects the charge.
	Charge(ctx context.Context, customerID string, amount float64) (Payment, error)
}
