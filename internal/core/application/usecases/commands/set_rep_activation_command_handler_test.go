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

func TestSetRepActivationCommandHandler_Handle_Deactivate(t *testing.T) {
	ctx := t.Context()

	representative, err := rep.NewRepresentative(kernel.NewUUID(), "Alice", 0)
	require.NoError(t, err)
	representative.Exclude()

	cmd, err := commands.NewSetRepActivationCommand(representative.ID(), false)
	require.NoError(t, err)

	repRepo := new(MockRepRepository)
	uow := new(MockRepUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepRepository").Return(repRepo).Once(),
		repRepo.On("Get", ctx, representative.ID()).Return(representative, nil).Once(),
		repRepo.On("Update", ctx, mock.AnythingOfType("*rep.Representative")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRepActivationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, representative.IsActive())
	assert.False(t, representative.IsExcluded(), "deactivation clears exclusion")
	uow.AssertExpectations(t)
}

func TestSetRepActivationCommandHandler_Handle_ReactivateAppendsAtTail(t *testing.T) {
	ctx := t.Context()

	returning, err := rep.NewRepresentative(kernel.NewUUID(), "Dave", 0)
	require.NoError(t, err)
	returning.Deactivate()

	active := testRotation(t, "Alice", "Bob")

	cmd, err := commands.NewSetRepActivationCommand(returning.ID(), true)
	require.NoError(t, err)

	repRepo := new(MockRepRepository)
	uow := new(MockRepUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RepRepository").Return(repRepo).Once(),
		repRepo.On("Get", ctx, returning.ID()).Return(returning, nil).Once(),
		repRepo.On("GetAllActiveOrdered", ctx).Return(active, nil).Once(),
		repRepo.On("Update", ctx, mock.AnythingOfType("*rep.Representative")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRepActivationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, returning.IsActive())
	assert.Equal(t, 2, returning.SequencePosition())
}
