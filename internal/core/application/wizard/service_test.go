package wizard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/wizard"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(ctx context.Context, customerID string, amount float64) (ports.Payment, error) {
	args := m.Called(ctx, customerID, amount)
	return args.Get(0).(ports.Payment), args.Error(1)
}

type MockParcelCreator struct{ mock.Mock }

func (m *MockParcelCreator) Handle(ctx context.Context, cmd commands.CreateParcelCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func newService(gateway ports.PaymentGateway, creator wizard.ParcelCreator) *wizard.Service {
	return wizard.NewService(wizard.NewSessions(time.Hour), services.DefaultTariff(), gateway, creator)
}

func readyWizard(t *testing.T, svc *wizard.Service, ownerID kernel.UUID) {
	t.Helper()

	svc.Open(ownerID)
	for range 3 {
		_, fieldErr, err := svc.Submit(ownerID, validForm())
		require.NoError(t, err)
		require.Nil(t, fieldErr)
	}
	w, err := svc.Get(ownerID)
	require.NoError(t, err)
	require.Equal(t, wizard.StepReview, w.Step())
}

func TestService_Confirm_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	gateway := new(MockPaymentGateway)
	gateway.On("Charge", mock.Anything, ownerID.String(), 615.0).
		Return(ports.Payment{TransactionID: "TXN1748772000000", Amount: 615}, nil).Once()

	creator := new(MockParcelCreator)
	creator.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateParcelCommand")).
		Return(nil).Once()

	svc := newService(gateway, creator)
	readyWizard(t, svc, ownerID)

	result, err := svc.Confirm(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "TXN1748772000000", result.TransactionID)
	assert.InDelta(t, 615.0, result.Amount, 0)
	assert.NoError(t, result.ParcelID.Validate())

	// a successful confirmation resets the wizard
	w, err := svc.Get(ownerID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepParties, w.Step())
	assert.Equal(t, wizard.Form{}, w.Form())

	gateway.AssertExpectations(t)
	creator.AssertExpectations(t)
}

func TestService_Confirm_PaymentDeclined(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	gateway := new(MockPaymentGateway)
	gateway.On("Charge", mock.Anything, ownerID.String(), 615.0).
		Return(ports.Payment{}, ports.ErrPaymentDeclined).Once()

	creator := new(MockParcelCreator)

	svc := newService(gateway, creator)
	readyWizard(t, svc, ownerID)

	_, err := svc.Confirm(ctx, ownerID)
	assert.ErrorIs(t, err, ports.ErrPaymentDeclined)

	// state is preserved for retry
	w, getErr := svc.Get(ownerID)
	require.NoError(t, getErr)
	assert.Equal(t, wizard.StepReview, w.Step())
	assert.Equal(t, validForm(), w.Form())
	creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestService_Confirm_PersistenceFailureIsRetryable(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	gateway := new(MockPaymentGateway)
	gateway.On("Charge", mock.Anything, ownerID.String(), 615.0).
		Return(ports.Payment{TransactionID: "TXN1", Amount: 615}, nil).Twice()

	creator := new(MockParcelCreator)
	creator.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateParcelCommand")).
		Return(errors.New("db down")).Once()
	creator.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateParcelCommand")).
		Return(nil).Once()

	svc := newService(gateway, creator)
	readyWizard(t, svc, ownerID)

	_, err := svc.Confirm(ctx, ownerID)
	require.Error(t, err)

	w, getErr := svc.Get(ownerID)
	require.NoError(t, getErr)
	assert.Equal(t, wizard.StepReview, w.Step())

	// retry without re-entering anything
	_, err = svc.Confirm(ctx, ownerID)
	require.NoError(t, err)
	creator.AssertExpectations(t)
}

func TestService_Confirm_BeforeReview(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	svc := newService(new(MockPaymentGateway), new(MockParcelCreator))
	svc.Open(ownerID)

	_, err := svc.Confirm(ctx, ownerID)
	assert.ErrorIs(t, err, wizard.ErrWizardNotReady)
}

func TestService_Confirm_NoWizard(t *testing.T) {
	ctx := t.Context()

	svc := newService(new(MockPaymentGateway), new(MockParcelCreator))
	_, err := svc.Confirm(ctx, kernel.NewUUID())
	assert.ErrorIs(t, err, wizard.ErrWizardNotFound)
}

func TestService_Submit_NoWizard(t *testing.T) {
	svc := newService(new(MockPaymentGateway), new(MockParcelCreator))
	_, _, err := svc.Submit(kernel.NewUUID(), validForm())
	assert.ErrorIs(t, err, wizard.ErrWizardNotFound)
}
