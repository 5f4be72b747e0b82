package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rep"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRep(t *testing.T, name string, position int) *rep.Representative {
	t.Helper()
	r, err := rep.NewRepresentative(kernel.NewUUID(), name, position)
	require.NoError(t, err)
	return r
}

func createRotation(t *testing.T, names ...string) []*rep.Representative {
	t.Helper()
	reps := make([]*rep.Representative, 0, len(names))
	for i, name := range names {
		reps = append(reps, createRep(t, name, i))
	}
	return reps
}

func TestRotationPicker_Next(t *testing.T) {
	picker := services.NewRotationPicker()

	t.Run("serves each rep exactly once per full cycle", func(t *testing.T) {
		reps := createRotation(t, "Alice", "Bob", "Carol")

		cursor := 0
		var served []string
		for range 3 {
			chosen, next, err := picker.Next(reps, cursor)
			require.NoError(t, err)
			served = append(served, chosen.Name())
			cursor = next
		}

		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, served)

		// the fourth call wraps back to the first rep
		chosen, _, err := picker.Next(reps, cursor)
		require.NoError(t, err)
		assert.Equal(t, "Alice", chosen.Name())
	})

	t.Run("skips excluded reps without freeing their slot", func(t *testing.T) {
		reps := createRotation(t, "Alice", "Bob", "Carol")
		reps[1].Exclude()

		cursor := 0
		var served []string
		for range 3 {
			chosen, next, err := picker.Next(reps, cursor)
			require.NoError(t, err)
			served = append(served, chosen.Name())
			cursor = next
		}

		// B is never served while excluded; A and C alternate
		assert.Equal(t, []string{"Alice", "Carol", "Alice"}, served)

		// re-including B restores their original slot
		reps[1].Include()
		chosen, _, err := picker.Next(reps, cursor)
		require.NoError(t, err)
		assert.Equal(t, "Bob", chosen.Name())
	})

	t.Run("clamps a stale cursor after the set shrank", func(t *testing.T) {
		reps := createRotation(t, "Alice", "Bob")

		chosen, next, err := picker.Next(reps, 5)
		require.NoError(t, err)
		assert.Equal(t, "Bob", chosen.Name())
		assert.Equal(t, 0, next)
	})

	t.Run("breaks sequence ties by id", func(t *testing.T) {
		a := createRep(t, "Alice", 1)
		b := createRep(t, "Bob", 1)

		first, _, err := picker.Next([]*rep.Representative{a, b}, 0)
		require.NoError(t, err)
		second, _, err := picker.Next([]*rep.Representative{b, a}, 0)
		require.NoError(t, err)
		assert.True(t, first.IsEqual(second))
	})

	t.Run("returns ErrNoEligibleRep for empty rotation", func(t *testing.T) {
		_, _, err := picker.Next(nil, 0)
		require.ErrorIs(t, err, services.ErrNoEligibleRep)
	})

	t.Run("returns ErrNoEligibleRep when everyone is excluded", func(t *testing.T) {
		reps := createRotation(t, "Alice", "Bob")
		reps[0].Exclude()
		reps[1].Exclude()

		_, _, err := picker.Next(reps, 0)
		require.ErrorIs(t, err, services.ErrNoEligibleRep)
	})

	t.Run("rejects unconstructed reps", func(t *testing.T) {
		_, _, err := picker.Next([]*rep.Representative{{}}, 0)
		require.Error(t, err)
	})
}

func TestRotationPicker_Skip(t *testing.T) {
	picker := services.NewRotationPicker()

	t.Run("advances the cursor by one slot", func(t *testing.T) {
		reps := createRotation(t, "Alice", "Bob", "Carol")

		next, err := picker.Skip(reps, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, next)

		// the skipped rep loses this turn but not their slot
		chosen, _, err := picker.Next(reps, next)
		require.NoError(t, err)
		assert.Equal(t, "Bob", chosen.Name())
	})

	t.Run("wraps at the end of the ordering", func(t *testing.T) {
		reps := createRotation(t, "Alice", "Bob")

		next, err := picker.Skip(reps, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, next)
	})

	t.Run("fails fast on an empty rotation instead of spinning", func(t *testing.T) {
		_, err := picker.Skip(nil, 0)
		require.ErrorIs(t, err, services.ErrNoEligibleRep)
	})
}

func TestRotationPicker_Reorder(t *testing.T) {
	picker := services.NewRotationPicker()

	t.Run("repositions alphabetically and clears exclusions", func(t *testing.T) {
		carol := createRep(t, "Carol", 0)
		alice := createRep(t, "Alice", 1)
		bob := createRep(t, "Bob", 2)
		bob.Exclude()

		require.NoError(t, picker.Reorder([]*rep.Representative{carol, alice, bob}))

		assert.Equal(t, 0, alice.SequencePosition())
		assert.Equal(t, 1, bob.SequencePosition())
		assert.Equal(t, 2, carol.SequencePosition())
		assert.False(t, bob.IsExcluded())

		// after a reset, next() serves reps in strict alphabetical order
		reps := []*rep.Representative{carol, alice, bob}
		cursor := 0
		var served []string
		for range 3 {
			chosen, next, err := picker.Next(reps, cursor)
			require.NoError(t, err)
			served = append(served, chosen.Name())
			cursor = next
		}
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, served)
	})

	t.Run("rejects unconstructed reps", func(t *testing.T) {
		require.Error(t, picker.Reorder([]*rep.Representative{{}}))
	})
}
