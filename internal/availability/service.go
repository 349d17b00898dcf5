package availability

import (
	"context"
	"fmt"
	"time"

	"alostudio/internal/shared/apperrors"
)

const (
	// Operating window, studio-local. The upper bound is exclusive so the
	// last bookable slot starts at 17:30.
	openingHour = 9
	closingHour = 18
	slotMinutes = 30

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// HeldSlotsProvider reports the slot times already held on a date.
// The bookings repository implements it.
type HeldSlotsProvider interface {
	HeldSlots(ctx context.Context, date string) ([]string, error)
}

// Service interface defines the contract for slot availability
type Service interface {
	// AvailableSlots returns the open slot times for a date, ascending.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
}

type service struct {
	held HeldSlotsProvider
}

func NewService(held HeldSlotsProvider) Service {
	return &service{held: held}
}

// AllSlots enumerates every bookable slot time in the operating window.
func AllSlots() []string {
	slots := make([]string, 0, (closingHour-openingHour)*60/slotMinutes)
	for hour := openingHour; hour < closingHour; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// IsValidSlot reports whether a time string is a bookable slot time.
func IsValidSlot(slot string) bool {
	for _, s := range AllSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// ValidateDate checks the YYYY-MM-DD format. Past dates are allowed;
// availability is advisory and customers may backfill records.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperrors.NewValidation("date", "date must be in YYYY-MM-DD format")
	}
	return nil
}

// ValidateTime checks that a time string is a slot within the operating
// window.
func ValidateTime(slot string) error {
	if _, err := time.Parse(timeLayout, slot); err != nil {
		return apperrors.NewValidation("time", "time must be in HH:MM format")
	}
	if !IsValidSlot(slot) {
		return apperrors.NewValidation("time", "time must be a half-hour slot between 09:00 and 17:30")
	}
	return nil
}

func (s *service) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	held, err := s.held.HeldSlots(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load held slots: %w", err)
	}

	heldSet := make(map[string]struct{}, len(held))
	for _, slot := range held {
		heldSet[slot] = struct{}{}
	}

	available := make([]string, 0, len(AllSlots()))
	for _, slot := range AllSlots() {
		if _, taken := heldSet[slot]; !taken {
			available = append(available, slot)
		}
	}
	return available, nil
}
