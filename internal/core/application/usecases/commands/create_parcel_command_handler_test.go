package commands_test

import (
	"errors"
	"testing"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	var created *parcel.Parcel
	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(p *parcel.Parcel) bool {
			created = p
			return true
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishParcelCreated", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).
		Return(nil).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.DefaultTariff(), publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, parcel.Pending, created.Status())
	assert.InDelta(t, 615.0, created.Price(), 0.001)
	assert.Len(t, created.Timeline(), 1)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateParcelCommand{} // not constructed properly
	factory := new(MockParcelUoWFactory)
	publisher := new(MockEventPublisher)
	h := commands.NewCreateParcelCommandHandler(factory, services.DefaultTariff(), publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCreateParcelCommandHandler(factory, services.DefaultTariff(), publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	publisher.AssertNotCalled(t, "PublishParcelCreated", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_PublishErrorIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishParcelCreated", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).
		Return(errors.New("broker down")).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.DefaultTariff(), publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
