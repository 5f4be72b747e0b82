package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rep"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddRepresentativeCommand_EmptyName(t *testing.T) {
	_, err := commands.NewAddRepresentativeCommand(kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRepNameIsRequired)
}

func TestAddRepresentativeCommandHandler_Handle_AppendsAtTail(t *testing.T) {
	ctx := t.Context()
	repID := kernel.NewUUID()
	cmd, err := commands.NewAddRepresentativeCommand(repID, "Dave")
	require.NoError(t, err)

	reps := testRotation(t, "Alice", "Bob", "Carol")

	repRepo := new(MockRepRepository)
	uow := new(MockRepUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepRepository").Return(repRepo).Once(),
		repRepo.On("GetAllActiveOrdered", ctx).Return(reps, nil).Once(),
		repRepo.On("Add", ctx, mock.AnythingOfType("*rep.Representative")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddRepresentativeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := repRepo.Calls[1].Arguments[1].(*rep.Representative)
	assert.Equal(t, repID, added.ID())
	assert.Equal(t, "Dave", added.Name())
	assert.Equal(t, 3, added.SequencePosition())
	assert.True(t, added.IsActive())
	assert.False(t, added.IsExcluded())
	uow.AssertExpectations(t)
}

func TestAddRepresentativeCommandHandler_Handle_FirstRep(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddRepresentativeCommand(kernel.NewUUID(), "Alice")
	require.NoError(t, err)

	repRepo := new(MockRepRepository)
	uow := new(MockRepUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepRepository").Return(repRepo).Once(),
		repRepo.On("GetAllActiveOrdered", ctx).Return([]*rep.Representative{}, nil).Once(),
		repRepo.On("Add", ctx, mock.AnythingOfType("*rep.Representative")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddRepresentativeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := repRepo.Calls[1].Arguments[1].(*rep.Representative)
	assert.Equal(t, 0, added.SequencePosition())
}
