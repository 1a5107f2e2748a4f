// Package wizard implements the four step parcel creation flow: contacts,
// route, weight and pricing, then review and confirmation. A wizard holds
// transient form state only; nothing is persisted until Confirm succeeds.
package wizard

// Form is the transient state accumulated across the wizard steps. Fields
// are plain values because nothing here is trusted yet; the step validators
// and the create command re-check everything.
type Form struct {
	SenderName    string `json:"senderName"`
	SenderPhone   string `json:"senderPhone"`
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`

	PickupAddress      string `json:"pickupAddress"`
	DestinationAddress string `json:"destinationAddress"`

	PickupLat      *float64 `json:"pickupLat,omitempty"`
	PickupLng      *float64 `json:"pickupLng,omitempty"`
	DestinationLat *float64 `json:"destinationLat,omitempty"`
	DestinationLng *float64 `json:"destinationLng,omitempty"`

	WeightKg float64 `json:"weightKg"`
}

// merge overlays the non-zero fields of in onto f, so a step submission
// only has to carry the fields that step edits.
func (f Form) merge(in Form) Form {
	if in.SenderName != "" {
		f.SenderName = in.SenderName
	}
	if in.SenderPhone != "" {
		f.SenderPhone = in.SenderPhone
	}
	if in.ReceiverName != "" {
		f.ReceiverName = in.ReceiverName
	}
	if in.ReceiverPhone != "" {
		f.ReceiverPhone = in.ReceiverPhone
	}
	if in.PickupAddress != "" {
		f.PickupAddress = in.PickupAddress
	}
	if in.DestinationAddress != "" {
		f.DestinationAddress = in.DestinationAddress
	}
	if in.PickupLat != nil {
		f.PickupLat = in.PickupLat
	}
	if in.PickupLng != nil {
		f.PickupLng = in.PickupLng
	}
	if in.DestinationLat != nil {
		f.DestinationLat = in.DestinationLat
	}
	if in.DestinationLng != nil {
		f.DestinationLng = in.DestinationLng
	}
	if in.WeightKg != 0 {
		f.WeightKg = in.WeightKg
	}
	return f
}
