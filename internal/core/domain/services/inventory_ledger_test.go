package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrderWithItems(t *testing.T, quantities ...int) *order.Order {
	t.Helper()
	items := make([]order.LineItem, 0, len(quantities))
	for _, qty := range quantities {
		item, err := order.NewLineItem(kernel.NewUUID(), qty,
			decimal.NewFromInt(100), decimal.NewFromInt(40))
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "USD", items)
	require.NoError(t, err)
	return o
}

func TestInventoryLedger_Deduct(t *testing.T) {
	ledger := services.NewInventoryLedger(true)

	t.Run("plans one negative adjustment per line item", func(t *testing.T) {
		o := createOrderWithItems(t, 2, 1)

		adjustments, err := ledger.Deduct(o)
		require.NoError(t, err)
		require.Len(t, adjustments, 2)
		assert.Equal(t, -2, adjustments[0].Delta)
		assert.Equal(t, -1, adjustments[1].Delta)
		assert.True(t, o.StockApplied())
	})

	t.Run("fails loudly on double deduction", func(t *testing.T) {
		o := createOrderWithItems(t, 2)

		_, err := ledger.Deduct(o)
		require.NoError(t, err)

		_, err = ledger.Deduct(o)
		require.ErrorIs(t, err, services.ErrDoubleDeduction)
	})

	t.Run("rejects unconstructed orders", func(t *testing.T) {
		_, err := ledger.Deduct(&order.Order{})
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestInventoryLedger_Restore(t *testing.T) {
	ledger := services.NewInventoryLedger(true)

	t.Run("plans symmetric positive adjustments", func(t *testing.T) {
		o := createOrderWithItems(t, 3)

		deductions, err := ledger.Deduct(o)
		require.NoError(t, err)

		restores, err := ledger.Restore(o)
		require.NoError(t, err)
		require.Len(t, restores, 1)
		assert.Equal(t, -deductions[0].Delta, restores[0].Delta)
		assert.False(t, o.StockApplied())
	})

	t.Run("fails when stock was never deducted", func(t *testing.T) {
		o := createOrderWithItems(t, 1)

		_, err := ledger.Restore(o)
		require.ErrorIs(t, err, services.ErrInvalidReversal)
	})
}

func TestInventoryLedger_Plan(t *testing.T) {
	ledger := services.NewInventoryLedger(true)
	now := time.Now().UTC()

	t.Run("follows the delivery edge through a full round trip", func(t *testing.T) {
		o := createOrderWithItems(t, 2, 1)

		effect, err := o.TransitionTo(order.Delivered, "", now)
		require.NoError(t, err)
		deductions, err := ledger.Plan(o, effect)
		require.NoError(t, err)
		assert.Equal(t, []int{-2, -1}, deltas(deductions))

		effect, err = o.TransitionTo(order.Cancelled, "wrong address", now)
		require.NoError(t, err)
		restores, err := ledger.Plan(o, effect)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, deltas(restores))

		// net effect of the round trip is zero for every product
		for i := range deductions {
			assert.Zero(t, deductions[i].Delta+restores[i].Delta)
		}
	})

	t.Run("plans nothing for edges without inventory effect", func(t *testing.T) {
		o := createOrderWithItems(t, 2)

		effect, err := o.TransitionTo(order.Confirmed, "", now)
		require.NoError(t, err)
		adjustments, err := ledger.Plan(o, effect)
		require.NoError(t, err)
		assert.Empty(t, adjustments)
		assert.False(t, o.StockApplied())
	})
}

func TestInventoryLedger_AllowOversell(t *testing.T) {
	assert.True(t, services.NewInventoryLedger(true).AllowOversell())
	assert.False(t, services.NewInventoryLedger(false).AllowOversell())
}

func deltas(adjustments []services.StockAdjustment) []int {
	out := make([]int, len(adjustments))
	for i, a := range adjustments {
		out[i] = a.Delta
	}
	return out
}
