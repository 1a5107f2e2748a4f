package wizard

import (
	"math"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
)

// User-facing validation copy. The web client renders these verbatim.
const (
	MsgSenderName         = "Sender name must be 2-50 characters, letters only"
	MsgReceiverName       = "Receiver name must be 2-50 characters, letters only"
	MsgSenderPhone        = "Please enter a valid sender phone number"
	MsgReceiverPhone      = "Please enter a valid receiver phone number"
	MsgPickupAddress      = "Please enter a complete pickup address (minimum 10 characters)"
	MsgDestinationAddress = "Please enter a complete destination address (minimum 10 characters)"
	MsgAddressesEqual     = "Pickup and destination addresses cannot be the same"
	MsgWeightInvalid      = "Please enter a valid weight"
	MsgWeightNotPositive  = "Weight must be greater than 0"
	MsgWeightTooHeavy     = "Weight cannot exceed 100kg. Please contact support for heavier items."
	MsgPriceUnavailable   = "Unable to calculate price. Please check weight and try again."
)

// FieldError is a recoverable, user-facing validation failure. It blocks
// step advancement without discarding any form state.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateParties checks the step 1 contact fields. Names are 2-50 letters
// and spaces; phones need at least ten digit-like characters. Returns the
// first failing field, mirroring how the form walks its inputs top down.
func ValidateParties(f Form) *FieldError {
	if _, err := kernel.NewPersonName(f.SenderName); err != nil {
		return &FieldError{Field: "senderName", Message: MsgSenderName}
	}
	if _, err := kernel.NewPersonName(f.ReceiverName); err != nil {
		return &FieldError{Field: "receiverName", Message: MsgReceiverName}
	}
	if _, err := kernel.NewPhone(f.SenderPhone); err != nil {
		return &FieldError{Field: "senderPhone", Message: MsgSenderPhone}
	}
	if _, err := kernel.NewPhone(f.ReceiverPhone); err != nil {
		return &FieldError{Field: "receiverPhone", Message: MsgReceiverPhone}
	}
	return nil
}

// ValidateRoute checks the step 2 address fields. Both addresses need at
// least ten characters and must differ by exact string comparison.
func ValidateRoute(f Form) *FieldError {
	if _, err := kernel.NewAddress(f.PickupAddress); err != nil {
		return &FieldError{Field: "pickupAddress", Message: MsgPickupAddress}
	}
	if _, err := kernel.NewAddress(f.DestinationAddress); err != nil {
		return &FieldError{Field: "destinationAddress", Message: MsgDestinationAddress}
	}
	if f.PickupAddress == f.DestinationAddress {
		return &FieldError{Field: "destinationAddress", Message: MsgAddressesEqual}
	}
	return nil
}

// ValidateWeight checks the step 3 weight field against the accepted range.
// The price check happens separately because it needs the tariff.
func ValidateWeight(f Form) *FieldError {
	if math.IsNaN(f.WeightKg) || math.IsInf(f.WeightKg, 0) || f.WeightKg == 0 {
		return &FieldError{Field: "weightKg", Message: MsgWeightInvalid}
	}
	if f.WeightKg < 0 {
		return &FieldError{Field: "weightKg", Message: MsgWeightNotPositive}
	}
	if f.WeightKg > parcel.WeightMaxKg {
		return &FieldError{Field: "weightKg", Message: MsgWeightTooHeavy}
	}
	return nil
}
