package pricing

import (
	"fmt"

	"alostudio/internal/shared/apperrors"
)

// Frame unit prices by size. The table is fixed; an unknown size is a
// validation failure, never a silent default.
var frameUnitPrices = map[string]float64{
	"5x7":   25,
	"8x10":  45,
	"11x14": 75,
	"16x20": 120,
}

// Deposit computes the deposit owed at booking time. rate is a fraction
// (0.25 for indoor sessions, 0.60 for outdoor, 0.50 for editing, design
// and frame work).
func Deposit(basePrice, rate float64) float64 {
	return basePrice * rate
}

// ComboFinalPrice computes a combo's discounted price from the sum of its
// component base prices. discount is a fraction.
func ComboFinalPrice(totalPrice, discount float64) float64 {
	return totalPrice * (1 - discount)
}

// FrameOrderTotal computes the price of a frame order: unit price for the
// size times quantity, plus an optional delivery fee.
func FrameOrderTotal(size string, quantity int, deliveryFee float64) (float64, error) {
	unit, ok := frameUnitPrices[size]
	if !ok {
		return 0, apperrors.NewValidation("frame_size", fmt.Sprintf("unknown frame size %q", size))
	}
	if quantity <= 0 {
		return 0, apperrors.NewValidation("quantity", "must be at least 1")
	}
	if deliveryFee < 0 {
		return 0, apperrors.NewValidation("delivery_fee", "must not be negative")
	}
	return unit*float64(quantity) + deliveryFee, nil
}

// FrameSizes returns the sizes the studio offers, for display.
func FrameSizes() map[string]float64 {
	sizes := make(map[string]float64, len(frameUnitPrices))
	for size, price := range frameUnitPrices {
		sizes[size] = price
	}
	return sizes
}

// BalanceDue computes the remainder owed at completion given the declared
// full payment and the amount already recognized as earnings. Floors at
// zero: a full payment at or below the recognized amount leaves nothing due.
func BalanceDue(fullAmount, recognized float64) float64 {
	balance := fullAmount - recognized
	if balance < 0 {
		return 0
	}
	return balance
}
