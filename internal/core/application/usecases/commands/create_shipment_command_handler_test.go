package commands_test

import (
	"testing"
	"time"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testClock = kernel.NewFixedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand("Alice", "Bob", "123 Main St", 2.5, "", nil, "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				// The real repository assigns the storage identifier on insert.
				require.NoError(t, args.Get(1).(*shipment.Shipment).AssignID(1))
			}).
			Return(nil).Once(),
		uow.On("TrackingEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.TrackingEvent")).
			Run(func(args mock.Arguments) {
				event := args.Get(1).(*shipment.TrackingEvent)
				assert.EqualValues(t, 1, event.ShipmentID())
				assert.Equal(t, shipment.Pending, event.Status())
				assert.Equal(t, "Shipment created", event.Message())
				assert.Equal(t, testClock.Now(), event.Timestamp())
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	generator := NewStubTrackingNumberGenerator(t, "BR7F3K9Q2MX1")

	h := commands.NewCreateShipmentCommandHandler(factory, generator, testClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "BR7F3K9Q2MX1", created.TrackingNumber().String())
	assert.Equal(t, shipment.Pending, created.Status())
	assert.EqualValues(t, 1, created.ID())
	assert.Equal(t, testClock.Now(), created.CreatedAt())
	shipmentRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnDuplicateTrackingNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand("Alice", "Bob", "123 Main St", 1, "", nil, "")
	require.NoError(t, err)

	duplicate := errs.NewDuplicateIdentifierError("trackingNumber", "BRAAAAAAAAAA")

	// First attempt collides and rolls back.
	firstRepo := new(MockShipmentRepository)
	firstUoW := new(MockUoW)
	mock.InOrder(
		firstUoW.On("Begin", ctx).Return(nil).Once(),
		firstUoW.On("ShipmentRepository").Return(firstRepo).Once(),
		firstRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Return(duplicate).Once(),
		firstUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	// Second attempt succeeds with a fresh number.
	secondRepo := new(MockShipmentRepository)
	secondEventRepo := new(MockTrackingEventRepository)
	secondUoW := new(MockUoW)
	mock.InOrder(
		secondUoW.On("Begin", ctx).Return(nil).Once(),
		secondUoW.On("ShipmentRepository").Return(secondRepo).Once(),
		secondRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*shipment.Shipment).AssignID(2))
			}).
			Return(nil).Once(),
		secondUoW.On("TrackingEventRepository").Return(secondEventRepo).Once(),
		secondEventRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.TrackingEvent")).
			Return(nil).Once(),
		secondUoW.On("Commit", ctx).Return(nil).Once(),
		secondUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	generator := NewStubTrackingNumberGenerator(t, "BRAAAAAAAAAA", "BRBBBBBBBBBB")

	h := commands.NewCreateShipmentCommandHandler(factory, generator, testClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "BRBBBBBBBBBB", created.TrackingNumber().String())
	firstUoW.AssertExpectations(t)
	secondUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_EscalatesAfterBoundedRetries(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand("Alice", "Bob", "123 Main St", 1, "", nil, "")
	require.NoError(t, err)

	duplicate := errs.NewDuplicateIdentifierError("trackingNumber", "BRAAAAAAAAAA")

	repo := new(MockShipmentRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(duplicate)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ShipmentRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Times(5)

	generator := NewStubTrackingNumberGenerator(t, "BRAAAAAAAAAA")

	h := commands.NewCreateShipmentCommandHandler(factory, generator, testClock)
	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrDuplicateIdentifier)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	generator := NewStubTrackingNumberGenerator(t, "BRAAAAAAAAAA")

	h := commands.NewCreateShipmentCommandHandler(factory, generator, testClock)
	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.Equal(t, commands.ErrCreateShipmentCommandIsNotConstructed, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand("Alice", "Bob", "123 Main St", 1, "", nil, "")
	require.NoError(t, err)

	beginErr := errs.NewPersistenceError("begin transaction", assert.AnError)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(beginErr).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	generator := NewStubTrackingNumberGenerator(t, "BRAAAAAAAAAA")

	h := commands.NewCreateShipmentCommandHandler(factory, generator, testClock)
	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrPersistence)
	uow.AssertExpectations(t)
}
