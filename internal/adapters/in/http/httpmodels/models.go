// Package httpmodels contains the request and response types of the REST
// API. They are kept separate from the domain and read models so the wire
// format can evolve without touching the core.
package httpmodels

import "time"

// Error is the uniform error payload.
type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// CreateParcelRequest is the direct creation path. The wizard flow posts
// the same fields step by step instead.
type CreateParcelRequest struct {
	SenderName         string   `json:"senderName"`
	SenderPhone        string   `json:"senderPhone"`
	ReceiverName       string   `json:"receiverName"`
	ReceiverPhone      string   `json:"receiverPhone"`
	PickupAddress      string   `json:"pickupAddress"`
	DestinationAddress string   `json:"destinationAddress"`
	PickupLat          *float64 `json:"pickupLat,omitempty"`
	PickupLng          *float64 `json:"pickupLng,omitempty"`
	DestinationLat     *float64 `json:"destinationLat,omitempty"`
	DestinationLng     *float64 `json:"destinationLng,omitempty"`
	WeightKg           float64  `json:"weightKg"`
}

// CreateParcelResponse returns the identifier of the created parcel.
type CreateParcelResponse struct {
	ID string `json:"id"`
}

// EditParcelRequest updates receiver and destination details on a parcel
// that is still editable.
type EditParcelRequest struct {
	ReceiverName       string   `json:"receiverName"`
	ReceiverPhone      string   `json:"receiverPhone"`
	DestinationAddress string   `json:"destinationAddress"`
	DestinationLat     *float64 `json:"destinationLat,omitempty"`
	DestinationLng     *float64 `json:"destinationLng,omitempty"`
}

// UpdateStatusRequest moves a parcel through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLocationRequest records the parcel's current position.
type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreateCourierRequest registers a new courier.
type CreateCourierRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicleType"`
}

// ParcelSummary is one row of a parcel listing.
type ParcelSummary struct {
	ID                 string    `json:"id"`
	TrackingNumber     string    `json:"trackingNumber"`
	OwnerID            string    `json:"ownerId"`
	Status             string    `json:"status"`
	SenderName         string    `json:"senderName"`
	ReceiverName       string    `json:"receiverName"`
	PickupAddress      string    `json:"pickupAddress"`
	DestinationAddress string    `json:"destinationAddress"`
	WeightKg           float64   `json:"weightKg"`
	Price              float64   `json:"price"`
	CourierName        *string   `json:"courierName,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	DeliveryDeadline   time.Time `json:"deliveryDeadline"`
}

// TimelineEntry is one event of a parcel's history.
type TimelineEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
}

// CourierInfo describes the courier assigned to a parcel.
type CourierInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ParcelDetail is the full view of one parcel.
type ParcelDetail struct {
	ID                 string          `json:"id"`
	TrackingNumber     string          `json:"trackingNumber"`
	OwnerID            string          `json:"ownerId"`
	Status             string          `json:"status"`
	SenderName         string          `json:"senderName"`
	SenderPhone        string          `json:"senderPhone"`
	ReceiverName       string          `json:"receiverName"`
	ReceiverPhone      string          `json:"receiverPhone"`
	PickupAddress      string          `json:"pickupAddress"`
	DestinationAddress string          `json:"destinationAddress"`
	PickupLat          *float64        `json:"pickupLat,omitempty"`
	PickupLng          *float64        `json:"pickupLng,omitempty"`
	DestinationLat     *float64        `json:"destinationLat,omitempty"`
	DestinationLng     *float64        `json:"destinationLng,omitempty"`
	CurrentLat         *float64        `json:"currentLat,omitempty"`
	CurrentLng         *float64        `json:"currentLng,omitempty"`
	WeightKg           float64         `json:"weightKg"`
	Price              float64         `json:"price"`
	Courier            *CourierInfo    `json:"courier,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	DeliveryDeadline   time.Time       `json:"deliveryDeadline"`
	Timeline           []TimelineEntry `json:"timeline"`
}

// Courier is one row of the courier roster.
type Courier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	VehicleType  string   `json:"vehicleType"`
	Availability string   `json:"availability"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// PriceQuote is the price breakdown shown at the wizard's weight step.
type PriceQuote struct {
	WeightKg  float64 `json:"weightKg"`
	TierLabel string  `json:"tierLabel"`
	RatePerKg float64 `json:"ratePerKg"`
	BasePrice float64 `json:"basePrice"`
	Fees      Fees    `json:"fees"`
	FeesTotal float64 `json:"feesTotal"`
	Total     float64 `json:"total"`
}

// Fees is the flat fee schedule applied on top of the weight price.
type Fees struct {
	Base      float64 `json:"base"`
	Insurance float64 `json:"insurance"`
	Handling  float64 `json:"handling"`
	Fuel      float64 `json:"fuel"`
}

// WizardState is the client's view of an in-flight creation wizard.
type WizardState struct {
	Step  int         `json:"step"`
	Form  WizardForm  `json:"form"`
	Quote *PriceQuote `json:"quote,omitempty"`
}

// WizardForm mirrors the transient form state across the wizard steps.
type WizardForm struct {
	SenderName         string   `json:"senderName"`
	SenderPhone        string   `json:"senderPhone"`
	ReceiverName       string   `json:"receiverName"`
	ReceiverPhone      string   `json:"receiverPhone"`
	PickupAddress      string   `json:"pickupAddress"`
	DestinationAddress string   `json:"destinationAddress"`
	PickupLat          *float64 `json:"pickupLat,omitempty"`
	PickupLng          *float64 `json:"pickupLng,omitempty"`
	DestinationLat     *float64 `json:"destinationLat,omitempty"`
	DestinationLng     *float64 `json:"destinationLng,omitempty"`
	WeightKg           float64  `json:"weightKg"`
}

// ConfirmResponse is returned by a successful wizard confirmation.
type ConfirmResponse struct {
	ParcelID      string  `json:"parcelId"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}
