package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alostudio/internal/shared/apperrors"
)

func TestDeposit(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		rate      float64
		expected  float64
	}{
		{"indoor session", 180, 0.25, 45},
		{"outdoor session", 320, 0.60, 192},
		{"editing work", 100, 0.50, 50},
		{"zero price", 0, 0.25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Deposit(tt.basePrice, tt.rate), 0.0001)
		})
	}
}

func TestComboFinalPrice(t *testing.T) {
	assert.InDelta(t, 216.75, ComboFinalPrice(255, 0.15), 0.0001)
	assert.InDelta(t, 100, ComboFinalPrice(100, 0), 0.0001)
}

func TestFrameOrderTotal(t *testing.T) {
	tests := []struct {
		name        string
		size        string
		quantity    int
		deliveryFee float64
		expected    float64
	}{
		{"two 8x10 no delivery", "8x10", 2, 0, 90},
		{"single 5x7", "5x7", 1, 0, 25},
		{"11x14 with delivery", "11x14", 1, 10, 85},
		{"three 16x20", "16x20", 3, 15, 375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := FrameOrderTotal(tt.size, tt.quantity, tt.deliveryFee)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, total, 0.0001)
		})
	}
}

func TestFrameOrderTotalRejectsBadInput(t *testing.T) {
	_, err := FrameOrderTotal("9x12", 1, 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = FrameOrderTotal("8x10", 0, 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = FrameOrderTotal("8x10", 1, -5)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBalanceDue(t *testing.T) {
	assert.InDelta(t, 135, BalanceDue(180, 45), 0.0001)
	assert.InDelta(t, 0, BalanceDue(45, 45), 0.0001)
	// Overpaid deposits never produce a negative balance record
	assert.InDelta(t, 0, BalanceDue(45, 60), 0.0001)
}

func TestFrameSizes(t *testing.T) {
	sizes := FrameSizes()
	assert.ElementsMatch(t, []string{"5x7", "8x10", "11x14", "16x20"}, sizes)
}
