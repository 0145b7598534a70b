package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/service"
)

type fakeCartStorage struct {
	lines     []domain.CartLine
	loadErr   error
	saveCalls int
	cleared   bool
}

func (s *fakeCartStorage) Load() ([]domain.CartLine, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

func (s *fakeCartStorage) Save(lines []domain.CartLine) error {
	s.lines = make([]domain.CartLine, len(lines))
	copy(s.lines, lines)
	s.saveCalls++
	return nil
}

func (s *fakeCartStorage) Clear() error {
	s.lines = nil
	s.cleared = true
	return nil
}

var (
	tee = domain.Product{
		ID: "1", Name: "Neon Dream Tee", Price: 39.99, Image: "img1",
	}
	hoodie = domain.Product{
		ID: "5", Name: "Abstract Print Hoodie", Price: 65.99, Image: "img5",
	}
)

func TestCartAdd(t *testing.T) {
	t.Run("NewLine", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})

		require.NoError(t, cart.Add(tee, "M", 1))

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "1_M", lines[0].VariantID)
		assert.Equal(t, tee.ID, lines[0].ProductID)
		assert.Equal(t, tee.Price, lines[0].Price)
		assert.Equal(t, 1, lines[0].Quantity)
		assert.Equal(t, "M", lines[0].Size)
	})

	t.Run("SameVariantMergesQuantities", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})

		require.NoError(t, cart.Add(tee, "M", 1))
		require.NoError(t, cart.Add(tee, "M", 2))
		require.NoError(t, cart.Add(tee, "M", 3))

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 6, lines[0].Quantity)
	})

	t.Run("DifferentSizeIsSeparateLine", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})

		require.NoError(t, cart.Add(tee, "M", 1))
		require.NoError(t, cart.Add(tee, "L", 1))

		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "1_M", lines[0].VariantID)
		assert.Equal(t, "1_L", lines[1].VariantID)
	})

	t.Run("KeepsInsertionOrder", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})

		require.NoError(t, cart.Add(hoodie, "S", 1))
		require.NoError(t, cart.Add(tee, "M", 1))
		require.NoError(t, cart.Add(hoodie, "S", 1))

		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "5_S", lines[0].VariantID)
		assert.Equal(t, "1_M", lines[1].VariantID)
	})

	t.Run("NoPriceResnapshotOnMerge", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})

		require.NoError(t, cart.Add(tee, "M", 1))

		repriced := tee
		repriced.Price = 99.99
		require.NoError(t, cart.Add(repriced, "M", 1))

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 39.99, lines[0].Price)
	})

	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})

		err := cart.Add(tee, "M", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)

		err = cart.Add(tee, "M", -3)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)

		assert.Empty(t, cart.Lines())
	})

	t.Run("OpensCartSurface", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})
		require.False(t, cart.IsOpen())

		require.NoError(t, cart.Add(tee, "M", 1))
		assert.True(t, cart.IsOpen())

		cart.SetOpen(false)
		assert.False(t, cart.IsOpen())
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("SetsInPlace", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})
		require.NoError(t, cart.Add(tee, "M", 1))
		require.NoError(t, cart.Add(hoodie, "L", 1))

		cart.UpdateQuantity("1_M", 5)

		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "1_M", lines[0].VariantID)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})
		require.NoError(t, cart.Add(tee, "M", 2))

		cart.UpdateQuantity("1_M", 0)

		assert.Empty(t, cart.Lines())
	})

	t.Run("NegativeRemovesLine", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})
		require.NoError(t, cart.Add(tee, "M", 2))

		cart.UpdateQuantity("1_M", -5)

		assert.Empty(t, cart.Lines())
	})

	t.Run("UnknownVariantIsNoOp", func(t *testing.T) {
		cart := service.NewCart(&fakeCartStorage{})
		require.NoError(t, cart.Add(tee, "M", 1))

		cart.UpdateQuantity("nope_XL", 7)

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestCartRemove(t *testing.T) {
	cart := service.NewCart(&fakeCartStorage{})
	require.NoError(t, cart.Add(tee, "M", 1))
	require.NoError(t, cart.Add(hoodie, "L", 1))

	cart.Remove("1_M")
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "5_L", lines[0].VariantID)

	// Absent variant: no-op, not an error.
	cart.Remove("1_M")
	assert.Len(t, cart.Lines(), 1)
}

func TestCartTotals(t *testing.T) {
	cart := service.NewCart(&fakeCartStorage{})
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())

	require.NoError(t, cart.Add(tee, "M", 2))
	require.NoError(t, cart.Add(hoodie, "L", 1))

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 2*39.99+65.99, cart.TotalPrice(), 1e-9)

	cart.UpdateQuantity("1_M", 1)
	assert.Equal(t, 2, cart.TotalItems())
	assert.InDelta(t, 39.99+65.99, cart.TotalPrice(), 1e-9)

	cart.Remove("1_M")
	cart.Remove("5_L")
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartClear(t *testing.T) {
	st := &fakeCartStorage{}
	cart := service.NewCart(st)
	require.NoError(t, cart.Add(tee, "M", 2))

	cart.Clear()

	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, st.cleared)
}

func TestCartPersistence(t *testing.T) {
	t.Run("SavesOnEveryMutation", func(t *testing.T) {
		st := &fakeCartStorage{}
		cart := service.NewCart(st)

		require.NoError(t, cart.Add(tee, "M", 1))
		cart.UpdateQuantity("1_M", 3)
		cart.Remove("1_M")

		assert.Equal(t, 3, st.saveCalls)
	})

	t.Run("HydratesFromStorage", func(t *testing.T) {
		st := &fakeCartStorage{}
		first := service.NewCart(st)
		require.NoError(t, first.Add(tee, "M", 2))
		require.NoError(t, first.Add(hoodie, "L", 1))

		second := service.NewCart(st)
		assert.Equal(t, first.Lines(), second.Lines())
		assert.Equal(t, 3, second.TotalItems())
	})

	t.Run("UnreadableStorageStartsEmpty", func(t *testing.T) {
		st := &fakeCartStorage{loadErr: errors.New("corrupt snapshot")}
		cart := service.NewCart(st)

		assert.Empty(t, cart.Lines())
		assert.Equal(t, 0, cart.TotalItems())
	})
}

func TestVariantIDDeterministic(t *testing.T) {
	assert.Equal(t, "1_M", domain.VariantID("1", "M"))
	assert.Equal(t, domain.VariantID("42", "XL"), domain.VariantID("42", "XL"))
	assert.NotEqual(t, domain.VariantID("1", "M"), domain.VariantID("1", "L"))
}
