package http

import (
	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/in/http/httpmodels"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/queries"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/wizard"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"
)

func parcelSummaries(parcels []queries.GetParcelsQueryResponse) []httpmodels.ParcelSummary {
	response := make([]httpmodels.ParcelSummary, len(parcels))
	for i, p := range parcels {
		response[i] = httpmodels.ParcelSummary{
			ID:                 p.ID.String(),
			TrackingNumber:     p.TrackingNumber,
			OwnerID:            p.OwnerID.String(),
			Status:             p.Status,
			SenderName:         p.SenderName,
			ReceiverName:       p.ReceiverName,
			PickupAddress:      p.PickupAddress,
			DestinationAddress: p.DestinationAddress,
			WeightKg:           p.WeightKg,
			Price:              p.Price,
			CourierName:        p.CourierName,
			CreatedAt:          p.CreatedAt,
			DeliveryDeadline:   p.DeliveryDeadline,
		}
	}
	return response
}

func parcelDetail(p queries.GetParcelByIDQueryResponse) httpmodels.ParcelDetail {
	detail := httpmodels.ParcelDetail{
		ID:                 p.ID.String(),
		TrackingNumber:     p.TrackingNumber,
		OwnerID:            p.OwnerID.String(),
		Status:             p.Status,
		SenderName:         p.SenderName,
		SenderPhone:        p.SenderPhone,
		ReceiverName:       p.ReceiverName,
		ReceiverPhone:      p.ReceiverPhone,
		PickupAddress:      p.PickupAddress,
		DestinationAddress: p.DestinationAddress,
		PickupLat:          p.PickupLat,
		PickupLng:          p.PickupLng,
		DestinationLat:     p.DestinationLat,
		DestinationLng:     p.DestinationLng,
		CurrentLat:         p.CurrentLat,
		CurrentLng:         p.CurrentLng,
		WeightKg:           p.WeightKg,
		Price:              p.Price,
		CreatedAt:          p.CreatedAt,
		DeliveryDeadline:   p.DeliveryDeadline,
		Timeline:           make([]httpmodels.TimelineEntry, len(p.Timeline)),
	}

	if p.Courier != nil {
		detail.Courier = &httpmodels.CourierInfo{
			ID:    p.Courier.ID.String(),
			Name:  p.Courier.Name,
			Phone: p.Courier.Phone,
		}
	}
	for i, entry := range p.Timeline {
		detail.Timeline[i] = httpmodels.TimelineEntry{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Location:  entry.Location,
		}
	}

	return detail
}

func wizardState(w *wizard.Wizard) httpmodels.WizardState {
	form := w.Form()
	state := httpmodels.WizardState{
		Step: w.Step(),
		Form: httpmodels.WizardForm{
			SenderName:         form.SenderName,
			SenderPhone:        form.SenderPhone,
			ReceiverName:       form.ReceiverName,
			ReceiverPhone:      form.ReceiverPhone,
			PickupAddress:      form.PickupAddress,
			DestinationAddress: form.DestinationAddress,
			PickupLat:          form.PickupLat,
			PickupLng:          form.PickupLng,
			DestinationLat:     form.DestinationLat,
			DestinationLng:     form.DestinationLng,
			WeightKg:           form.WeightKg,
		},
	}
	if quote := w.Quote(); quote != nil {
		state.Quote = priceQuote(*quote)
	}
	return state
}

func priceQuote(q services.PriceQuote) *httpmodels.PriceQuote {
	return &httpmodels.PriceQuote{
		WeightKg:  q.WeightKg,
		TierLabel: q.TierLabel,
		RatePerKg: q.RatePerKg,
		BasePrice: q.BasePrice,
		Fees: httpmodels.Fees{
			Base:      q.Fees.Base,
			Insurance: q.Fees.Insurance,
			Handling:  q.Fees.Handling,
			Fuel:      q.Fees.Fuel,
		},
		FeesTotal: q.FeesTotal,
		Total:     q.Total,
	}
}
