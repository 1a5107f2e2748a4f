package wizard

import (
	"context"
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// ErrWizardNotFound is returned when a user acts on a wizard they never
// opened or that already expired.
var ErrWizardNotFound = errors.New("no active wizard for user")

// ParcelCreator is the slice of the create command handler the wizard
// needs. Satisfied by commands.CreateParcelCommandHandler.
type ParcelCreator interface {
	Handle(ctx context.Context, cmd commands.CreateParcelCommand) error
}

// ConfirmResult is what a successful confirmation returns to the client.
type ConfirmResult struct {
	ParcelID      kernel.UUID
	TransactionID string
	Amount        float64
}

// Service orchestrates wizards across their full life: open, step
// submission, navigation, and the payment-then-persist confirmation.
type Service struct {
	sessions *Sessions
	tariff   services.Tariff
	gateway  ports.PaymentGateway
	creator  ParcelCreator
}

// NewService wires the wizard flow to its collaborators.
func NewService(
	sessions *Sessions,
	tariff services.Tariff,
	gateway ports.PaymentGateway,
	creator ParcelCreator,
) *Service {
	return &Service{
		sessions: sessions,
		tariff:   tariff,
		gateway:  gateway,
		creator:  creator,
	}
}

// Open starts a fresh wizard for ownerID, replacing any previous one.
func (s *Service) Open(ownerID kernel.UUID) *Wizard {
	return s.sessions.Open(ownerID)
}

// Get returns the active wizard for ownerID.
// Returns ErrWizardNotFound when none exists.
func (s *Service) Get(ownerID kernel.UUID) (*Wizard, error) {
	w, ok := s.sessions.Get(ownerID)
	if !ok {
		return nil, ErrWizardNotFound
	}
	return w, nil
}

// Submit merges the step data into the wizard and tries to advance.
// A non-nil FieldError means the wizard stayed on its step with state
// intact.
func (s *Service) Submit(ownerID kernel.UUID, form Form) (*Wizard, *FieldError, error) {
	w, ok := s.sessions.Get(ownerID)
	if !ok {
		return nil, nil, ErrWizardNotFound
	}

	w.Update(form)
	if fieldErr := w.Next(s.tariff); fieldErr != nil {
		return w, fieldErr, nil
	}
	return w, nil, nil
}

// Back moves the wizard one step towards the start.
func (s *Service) Back(ownerID kernel.UUID) (*Wizard, error) {
	w, ok := s.sessions.Get(ownerID)
	if !ok {
		return nil, ErrWizardNotFound
	}
	w.Back()
	return w, nil
}

// Discard drops the wizard and all its transient state.
func (s *Service) Discard(ownerID kernel.UUID) {
	s.sessions.Discard(ownerID)
}

// Confirm charges the pinned quote through the payment gateway and then
// creates the parcel. On any failure the wizard state is preserved so the
// user can retry without re-entering data; only a fully successful
// confirmation resets the wizard.
func (s *Service) Confirm(ctx context.Context, ownerID kernel.UUID) (ConfirmResult, error) {
	w, ok := s.sessions.Get(ownerID)
	if !ok {
		return ConfirmResult{}, ErrWizardNotFound
	}

	if err := w.ReadyToConfirm(); err != nil {
		return ConfirmResult{}, err
	}

	quote := w.Quote()
	payment, err := s.gateway.Charge(ctx, ownerID.String(), quote.Total)
	if err != nil {
		return ConfirmResult{}, err
	}

	form := w.Form()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		ownerID,
		form.SenderName,
		form.SenderPhone,
		form.ReceiverName,
		form.ReceiverPhone,
		form.PickupAddress,
		form.DestinationAddress,
		form.WeightKg,
	)
	if err != nil {
		return ConfirmResult{}, err
	}

	cmd, err = cmd.WithCoords(formPoint(form.PickupLat, form.PickupLng), formPoint(form.DestinationLat, form.DestinationLng))
	if err != nil {
		return ConfirmResult{}, err
	}

	if err = s.creator.Handle(ctx, cmd); err != nil {
		return ConfirmResult{}, err
	}

	w.Reset()
	return ConfirmResult{
		ParcelID:      cmd.ParcelID(),
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
	}, nil
}

func formPoint(lat, lng *float64) *kernel.GeoPoint {
	if lat == nil || lng == nil {
		return nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil
	}
	return &point
}
