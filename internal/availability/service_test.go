package availability

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alostudio/internal/shared/apperrors"
)

type fakeHeldSlots struct {
	held map[string][]string
	err  error
}

func (f *fakeHeldSlots) HeldSlots(_ context.Context, date string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.held[date], nil
}

func TestAllSlots(t *testing.T) {
	slots := AllSlots()

	// 09:00 through 17:30 on the half hour
	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])
	assert.True(t, sort.StringsAreSorted(slots))
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot("09:00"))
	assert.True(t, IsValidSlot("17:30"))
	assert.False(t, IsValidSlot("18:00"))
	assert.False(t, IsValidSlot("08:30"))
	assert.False(t, IsValidSlot("09:15"))
	assert.False(t, IsValidSlot("9:00"))
}

func TestAvailableSlotsDropsHeld(t *testing.T) {
	svc := NewService(&fakeHeldSlots{held: map[string][]string{
		"2025-07-01": {"10:00", "14:30"},
	}})

	slots, err := svc.AvailableSlots(context.Background(), "2025-07-01")
	require.NoError(t, err)

	assert.Len(t, slots, 16)
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "14:30")
	assert.Contains(t, slots, "09:00")
	assert.True(t, sort.StringsAreSorted(slots))
}

func TestAvailableSlotsEmptyDate(t *testing.T) {
	svc := NewService(&fakeHeldSlots{})

	slots, err := svc.AvailableSlots(context.Background(), "2025-07-02")
	require.NoError(t, err)
	assert.Equal(t, AllSlots(), slots)
}

func TestAvailableSlotsRejectsBadDate(t *testing.T) {
	svc := NewService(&fakeHeldSlots{})

	for _, date := range []string{"07/01/2025", "2025-13-40", "tomorrow", ""} {
		_, err := svc.AvailableSlots(context.Background(), date)
		require.Error(t, err, date)
		assert.True(t, apperrors.IsValidation(err), date)
	}
}

func TestValidateTime(t *testing.T) {
	require.NoError(t, ValidateTime("12:30"))

	err := ValidateTime("25:00")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// Well-formed but outside the operating window
	err = ValidateTime("18:00")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
