package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/growbuf/resource"
)

func TestAcquire(t *testing.T) {
	t.Run("zero capacity has no storage", func(t *testing.T) {
		b, err := Acquire[int32](0)
		require.NoError(t, err)
		defer b.Release()

		assert.Zero(t, b.Cap())
		assert.Zero(t, b.ByteCap())
		assert.Nil(t, b.Items())
	})

	t.Run("storage is zeroed", func(t *testing.T) {
		b, err := Acquire[int32](16)
		require.NoError(t, err)
		defer b.Release()

		assert.Equal(t, 16, b.Cap())
		assert.Equal(t, 64, b.ByteCap())
		for i, v := range b.Items() {
			require.Zerof(t, v, "element %d should be zero", i)
		}
	})

	t.Run("byte capacity is a multiple of element size", func(t *testing.T) {
		type record struct {
			ID    uint64
			Score float32
		}
		b, err := Acquire[record](7)
		require.NoError(t, err)
		defer b.Release()

		assert.Equal(t, 7*b.ElemSize(), b.ByteCap())
		assert.Zero(t, b.ByteCap()%b.ElemSize())
	})

	t.Run("pointerful element types use GC storage", func(t *testing.T) {
		b, err := Acquire[string](4)
		require.NoError(t, err)
		defer b.Release()

		b.Items()[0] = "hello"
		assert.Equal(t, "hello", b.Items()[0])
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := Acquire[int32](-1)
		assert.ErrorIs(t, err, ErrInvalidCount)
	})
}

func TestAcquire_Budget(t *testing.T) {
	t.Run("denied reservation fails cleanly", func(t *testing.T) {
		ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 16})

		_, err := Acquire[int64](100, WithBudget(ctrl))
		require.ErrorIs(t, err, ErrAllocationFailed)
		assert.Zero(t, ctrl.MemoryUsage())
	})

	t.Run("release returns the reservation", func(t *testing.T) {
		ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 1024})

		b, err := Acquire[int64](16, WithBudget(ctrl))
		require.NoError(t, err)
		assert.Equal(t, int64(128), ctrl.MemoryUsage())

		b.Release()
		assert.Zero(t, ctrl.MemoryUsage())
	})
}

func TestBlock_Resize(t *testing.T) {
	t.Run("grow preserves contents", func(t *testing.T) {
		b, err := Acquire[int32](4)
		require.NoError(t, err)
		defer b.Release()

		for i := range b.Items() {
			b.Items()[i] = int32(i + 1)
		}

		require.NoError(t, b.Resize(8))
		assert.Equal(t, 8, b.Cap())
		assert.Equal(t, []int32{1, 2, 3, 4, 0, 0, 0, 0}, b.Items())
	})

	t.Run("shrink truncates", func(t *testing.T) {
		b, err := Acquire[int32](8)
		require.NoError(t, err)
		defer b.Release()

		for i := range b.Items() {
			b.Items()[i] = int32(i + 1)
		}

		require.NoError(t, b.Resize(2))
		assert.Equal(t, []int32{1, 2}, b.Items())
	})

	t.Run("failure leaves block unchanged", func(t *testing.T) {
		// Budget covers the initial storage but not old+new during a grow.
		ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 40})

		b, err := Acquire[int64](4, WithBudget(ctrl))
		require.NoError(t, err)
		defer b.Release()

		b.Items()[0] = 42

		err = b.Resize(8)
		require.ErrorIs(t, err, ErrAllocationFailed)

		assert.Equal(t, 4, b.Cap())
		assert.Equal(t, int64(42), b.Items()[0])
		assert.Equal(t, int64(32), ctrl.MemoryUsage())
	})

	t.Run("same capacity is a no-op", func(t *testing.T) {
		b, err := Acquire[int32](4)
		require.NoError(t, err)
		defer b.Release()

		view := b.Items()
		require.NoError(t, b.Resize(4))
		assert.Same(t, &view[0], &b.Items()[0])
	})

	t.Run("resize after release", func(t *testing.T) {
		b, err := Acquire[int32](4)
		require.NoError(t, err)

		b.Release()
		assert.ErrorIs(t, b.Resize(8), ErrReleased)
	})

	t.Run("negative count", func(t *testing.T) {
		b, err := Acquire[int32](4)
		require.NoError(t, err)
		defer b.Release()

		assert.ErrorIs(t, b.Resize(-1), ErrInvalidCount)
	})
}

func TestBlock_Release(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 1024})

		b, err := Acquire[int32](16, WithBudget(ctrl))
		require.NoError(t, err)

		b.Release()
		b.Release()
		b.Release()

		assert.True(t, b.Released())
		assert.Zero(t, b.Cap())
		// The reservation is returned exactly once.
		assert.Zero(t, ctrl.MemoryUsage())
	})

	t.Run("nil block", func(t *testing.T) {
		var b *Block[int32]
		b.Release()
		assert.False(t, b.Released())
		assert.Zero(t, b.Cap())
	})

	t.Run("poison marks stale borrows", func(t *testing.T) {
		b, err := Acquire[uint8](32, WithPoison(0xDD))
		require.NoError(t, err)

		stale := b.Items()
		b.Release()

		// The heap-backed buffer is kept alive by the stale borrow, so the
		// pattern is observable instead of a fault.
		for i, v := range stale {
			require.Equalf(t, uint8(0xDD), v, "stale element %d should carry the poison pattern", i)
		}
	})
}

func TestBlock_OffHeap(t *testing.T) {
	t.Run("pointer-free elements", func(t *testing.T) {
		b, err := Acquire[float32](128, WithOffHeap())
		require.NoError(t, err)
		defer b.Release()

		items := b.Items()
		require.Len(t, items, 128)
		for i := range items {
			items[i] = float32(i)
		}
		assert.Equal(t, float32(127), b.Items()[127])
	})

	t.Run("pointerful elements are rejected", func(t *testing.T) {
		_, err := Acquire[string](8, WithOffHeap())
		assert.ErrorIs(t, err, ErrPointerElem)

		type node struct {
			next *node
		}
		_, err = Acquire[node](8, WithOffHeap())
		assert.ErrorIs(t, err, ErrPointerElem)
	})

	t.Run("rejection returns the budget reservation", func(t *testing.T) {
		ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 1024})

		_, err := Acquire[string](8, WithOffHeap(), WithBudget(ctrl))
		require.ErrorIs(t, err, ErrPointerElem)
		assert.Zero(t, ctrl.MemoryUsage())
	})
}
