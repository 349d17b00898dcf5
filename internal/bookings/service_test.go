package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alostudio/internal/availability"
	"alostudio/internal/catalog"
	"alostudio/internal/earnings"
	"alostudio/internal/notifications"
	"alostudio/internal/pricing"
	"alostudio/internal/reservations"
	"alostudio/internal/shared/apperrors"
	"alostudio/pkg/cache"
	"alostudio/pkg/logger"
)

// fakeRepository keeps bookings in memory and mirrors the transactional
// contracts of the real repository, including the slot claim conflict.
type fakeRepository struct {
	bookings map[uuid.UUID]*Booking
	records  []earnings.Record
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[uuid.UUID]*Booking)}
}

func (f *fakeRepository) CreateWithSlotClaim(_ context.Context, booking *Booking) error {
	for _, existing := range f.bookings {
		if existing.BookingDate == booking.BookingDate &&
			existing.BookingTime == booking.BookingTime &&
			!existing.Status.IsTerminal() {
			return apperrors.Conflict("time slot is already reserved")
		}
	}
	booking.ID = uuid.New()
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, apperrors.NotFound("booking")
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeRepository) GetByCustomerEmail(_ context.Context, email string) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		if b.CustomerEmail == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetAll(_ context.Context) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepository) HeldSlots(_ context.Context, date string) ([]string, error) {
	var slots []string
	for _, b := range f.bookings {
		if b.BookingDate != date {
			continue
		}
		for _, active := range reservations.ActiveStatuses {
			if b.Status == active {
				slots = append(slots, b.BookingTime)
			}
		}
	}
	return slots, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	booking, ok := f.bookings[id]
	if !ok {
		return apperrors.NotFound("booking")
	}
	applyUpdates(booking, updates)
	return nil
}

func (f *fakeRepository) UpdateStatusWithEarnings(_ context.Context, id uuid.UUID, updates map[string]interface{}, record *earnings.Record) error {
	booking, ok := f.bookings[id]
	if !ok {
		return apperrors.NotFound("booking")
	}
	applyUpdates(booking, updates)
	if record != nil {
		f.records = append(f.records, *record)
	}
	return nil
}

func (f *fakeRepository) ConfirmWithDeposit(_ context.Context, id uuid.UUID, updates map[string]interface{}, paymentAmount float64, label string) (float64, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return 0, apperrors.NotFound("booking")
	}
	applyUpdates(booking, updates)

	var recognized float64
	for _, r := range f.records {
		if r.BookingID == id {
			recognized += r.Amount
		}
	}
	delta := pricing.BalanceDue(paymentAmount, recognized)
	if delta > 0 {
		f.records = append(f.records, earnings.Record{
			BookingID:   id,
			ServiceType: label,
			Amount:      delta,
			PaymentDate: time.Now(),
		})
	}
	return delta, nil
}

func (f *fakeRepository) CompleteWithBalance(_ context.Context, id uuid.UUID, updates map[string]interface{}, fullAmount float64, label string) error {
	booking, ok := f.bookings[id]
	if !ok {
		return apperrors.NotFound("booking")
	}
	applyUpdates(booking, updates)

	var recognized float64
	for _, r := range f.records {
		if r.BookingID == id {
			recognized += r.Amount
		}
	}
	balance := pricing.BalanceDue(fullAmount, recognized)
	if balance > 0 {
		f.records = append(f.records, earnings.Record{
			BookingID:   id,
			ServiceType: label + earnings.BalanceSuffix,
			Amount:      balance,
			PaymentDate: time.Now(),
		})
	}
	return nil
}

func (f *fakeRepository) recordsFor(id uuid.UUID) []earnings.Record {
	var out []earnings.Record
	for _, r := range f.records {
		if r.BookingID == id {
			out = append(out, r)
		}
	}
	return out
}

func applyUpdates(booking *Booking, updates map[string]interface{}) {
	for key, value := range updates {
		switch key {
		case "status":
			booking.Status = value.(reservations.Status)
		case "payment_amount":
			booking.PaymentAmount = value.(float64)
		case "payment_reference":
			booking.PaymentReference = value.(string)
		case "admin_notes":
			booking.AdminNotes = value.(string)
		case "full_payment_received":
			booking.FullPaymentReceived = value.(bool)
		case "full_payment_amount":
			booking.FullPaymentAmount = value.(float64)
		case "full_payment_reference":
			booking.FullPaymentReference = value.(string)
		}
	}
}

// fakeCatalog resolves a single configured entry.
type fakeCatalog struct {
	entry *catalog.ResolvedEntry
	err   error
}

func (f *fakeCatalog) Resolve(_ context.Context, id uuid.UUID, _ bool) (*catalog.ResolvedEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.entry == nil || f.entry.ID != id {
		return nil, apperrors.NotFound("service")
	}
	return f.entry, nil
}

func (f *fakeCatalog) GetActiveServices(context.Context) ([]catalog.StudioService, error) {
	return nil, nil
}
func (f *fakeCatalog) GetActiveServicesByType(context.Context, string) ([]catalog.StudioService, error) {
	return nil, nil
}
func (f *fakeCatalog) GetActiveCombos(context.Context) ([]catalog.ComboService, error) {
	return nil, nil
}
func (f *fakeCatalog) GetAllServices(context.Context) ([]catalog.StudioService, error) {
	return nil, nil
}
func (f *fakeCatalog) CreateService(context.Context, catalog.CreateServiceRequest) (*catalog.StudioService, error) {
	return nil, nil
}
func (f *fakeCatalog) CreateCombo(context.Context, catalog.CreateComboRequest) (*catalog.ComboService, error) {
	return nil, nil
}
func (f *fakeCatalog) UpdateServicePrice(context.Context, uuid.UUID, float64) error { return nil }
func (f *fakeCatalog) SetServiceActive(context.Context, uuid.UUID, bool) error      { return nil }
func (f *fakeCatalog) SetCacheService(cache.Service, time.Duration)                 {}

type fakeEarnings struct {
	invalidations int
}

func (f *fakeEarnings) GetSummary(context.Context) (*earnings.Summary, error) { return nil, nil }
func (f *fakeEarnings) InvalidateSummary(context.Context)                     { f.invalidations++ }
func (f *fakeEarnings) SetCacheService(cache.Service, time.Duration)          {}

type fakeProducer struct {
	events []*notifications.ReservationEvent
}

func (f *fakeProducer) PublishReservationEvent(_ context.Context, event *notifications.ReservationEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeProducer) Close() error                      { return nil }
func (f *fakeProducer) HealthCheck(context.Context) error { return nil }

type serviceFixture struct {
	repo     *fakeRepository
	catalog  *fakeCatalog
	earnings *fakeEarnings
	producer *fakeProducer
	service  Service
}

func newFixture(entry *catalog.ResolvedEntry) *serviceFixture {
	f := &serviceFixture{
		repo:     newFakeRepository(),
		catalog:  &fakeCatalog{entry: entry},
		earnings: &fakeEarnings{},
		producer: &fakeProducer{},
	}
	f.service = NewService(f.repo, f.catalog, f.earnings, f.producer, logger.GetDefault())
	return f
}

func indoorSessionEntry() *catalog.ResolvedEntry {
	return &catalog.ResolvedEntry{
		Kind:        catalog.KindService,
		ID:          uuid.New(),
		Name:        "Standard Indoor Session",
		Price:       180,
		DepositRate: 0.25,
		Active:      true,
	}
}

func createRequest(entry *catalog.ResolvedEntry) CreateBookingRequest {
	return CreateBookingRequest{
		ServiceID:     entry.ID.String(),
		CustomerName:  "Amara Osei",
		CustomerEmail: "amara@example.com",
		CustomerPhone: "555-0142",
		BookingDate:   "2025-07-01",
		BookingTime:   "10:00",
	}
}

func TestCreateBooking(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)

	assert.Equal(t, reservations.StatusPendingPayment, booking.Status)
	assert.Equal(t, "Standard Indoor Session", booking.ServiceType)
	assert.InDelta(t, 180, booking.TotalPrice, 0.0001)
	assert.InDelta(t, 45, booking.DepositRequired, 0.0001)

	require.Len(t, f.producer.events, 1)
	assert.Equal(t, notifications.EventReservationCreated, f.producer.events[0].Type)
}

func TestCreateBookingInactiveService(t *testing.T) {
	entry := indoorSessionEntry()
	entry.Active = false
	f := newFixture(entry)

	_, err := f.service.Create(context.Background(), createRequest(entry))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateBookingUnknownService(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	req := createRequest(entry)
	req.ServiceID = uuid.NewString()

	_, err := f.service.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCreateBookingInvalidSlot(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	req := createRequest(entry)
	req.BookingTime = "18:00"

	_, err := f.service.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateBookingSlotContention(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	_, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)

	// Same slot again: the claim must refuse even while the first
	// booking is still pending_payment
	_, err = f.service.Create(context.Background(), createRequest(entry))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestSubmitPaymentOverwrites(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)

	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 40, Reference: "TXN-1"})
	require.NoError(t, err)

	// Customer corrects the amount; previous details are replaced
	updated, err := f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-2"})
	require.NoError(t, err)

	assert.Equal(t, reservations.StatusPaymentSubmitted, updated.Status)
	assert.InDelta(t, 45, updated.PaymentAmount, 0.0001)
	assert.Equal(t, "TXN-2", updated.PaymentReference)
}

func TestSubmitPaymentOnFinalizedBooking(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), booking.ID, CancelRequest{})
	require.NoError(t, err)

	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestApproveRecordsDeposit(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)
	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1"})
	require.NoError(t, err)

	approved, err := f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.NoError(t, err)
	assert.Equal(t, reservations.StatusConfirmed, approved.Status)

	records := f.repo.recordsFor(booking.ID)
	require.Len(t, records, 1)
	assert.Equal(t, "Standard Indoor Session", records[0].ServiceType)
	assert.InDelta(t, 45, records[0].Amount, 0.0001)
	assert.Equal(t, 1, f.earnings.invalidations)
}

func TestReapproveAfterResubmissionRecognizesOnce(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)
	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1"})
	require.NoError(t, err)
	_, err = f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.NoError(t, err)

	// The customer resubmits the same amount with a corrected reference
	// and the admin approves again. The ledger must not grow.
	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1-FIXED"})
	require.NoError(t, err)
	_, err = f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.NoError(t, err)

	records := f.repo.recordsFor(booking.ID)
	require.Len(t, records, 1)
	assert.InDelta(t, 45, records[0].Amount, 0.0001)
	assert.Equal(t, 1, f.earnings.invalidations)
}

func TestReapproveAfterHigherResubmissionRecognizesDelta(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)
	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1"})
	require.NoError(t, err)
	_, err = f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.NoError(t, err)

	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 60, Reference: "TXN-2"})
	require.NoError(t, err)
	_, err = f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.NoError(t, err)

	records := f.repo.recordsFor(booking.ID)
	require.Len(t, records, 2)
	assert.InDelta(t, 45, records[0].Amount, 0.0001)
	assert.InDelta(t, 15, records[1].Amount, 0.0001)
	assert.Equal(t, 2, f.earnings.invalidations)
}

func TestApproveWithoutPayment(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)

	// pending_payment cannot jump straight to confirmed
	_, err = f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCompleteAppendsBalanceRecord(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)
	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1"})
	require.NoError(t, err)
	_, err = f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.NoError(t, err)

	completed, err := f.service.Complete(context.Background(), booking.ID, CompleteRequest{
		FullPaymentReceived: true,
		FullPaymentAmount:   180,
	})
	require.NoError(t, err)
	assert.Equal(t, reservations.StatusCompleted, completed.Status)

	records := f.repo.recordsFor(booking.ID)
	require.Len(t, records, 2)
	assert.Equal(t, "Standard Indoor Session_balance", records[1].ServiceType)
	assert.InDelta(t, 135, records[1].Amount, 0.0001)

	var total float64
	for _, r := range records {
		total += r.Amount
	}
	assert.InDelta(t, 180, total, 0.0001)
}

func TestCompleteWithFullEqualToDeposit(t *testing.T) {
	entry := indoorSessionEntry()
	entry.Price = 45
	f := newFixture(entry)

	req := createRequest(entry)
	booking, err := f.service.Create(context.Background(), req)
	require.NoError(t, err)
	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1"})
	require.NoError(t, err)
	_, err = f.service.Approve(context.Background(), booking.ID, ApproveRequest{})
	require.NoError(t, err)

	_, err = f.service.Complete(context.Background(), booking.ID, CompleteRequest{
		FullPaymentReceived: true,
		FullPaymentAmount:   45,
	})
	require.NoError(t, err)

	// Nothing left unrecognized: the deposit record stands alone
	records := f.repo.recordsFor(booking.ID)
	require.Len(t, records, 1)
	assert.InDelta(t, 45, records[0].Amount, 0.0001)
}

func TestCancelFreesSlot(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)
	_, err = f.service.SubmitPayment(context.Background(), booking.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-1"})
	require.NoError(t, err)

	slots := availability.NewService(f.repo)
	open, err := slots.AvailableSlots(context.Background(), "2025-07-01")
	require.NoError(t, err)
	assert.NotContains(t, open, "10:00")

	_, err = f.service.Cancel(context.Background(), booking.ID, CancelRequest{AdminNotes: "customer no-show"})
	require.NoError(t, err)

	open, err = slots.AvailableSlots(context.Background(), "2025-07-01")
	require.NoError(t, err)
	assert.Contains(t, open, "10:00")

	// No earnings from a cancelled booking
	assert.Empty(t, f.repo.recordsFor(booking.ID))
}

func TestCancelTwice(t *testing.T) {
	entry := indoorSessionEntry()
	f := newFixture(entry)

	booking, err := f.service.Create(context.Background(), createRequest(entry))
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), booking.ID, CancelRequest{})
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), booking.ID, CancelRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}
