package frames

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alostudio/internal/earnings"
	"alostudio/internal/pricing"
	"alostudio/internal/reservations"
	"alostudio/internal/shared/apperrors"
	"alostudio/pkg/cache"
	"alostudio/pkg/logger"
)

type fakeRepository struct {
	orders  map[uuid.UUID]*FrameOrder
	records []earnings.Record
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: make(map[uuid.UUID]*FrameOrder)}
}

func (f *fakeRepository) Create(_ context.Context, order *FrameOrder) error {
	order.ID = uuid.New()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*FrameOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, apperrors.NotFound("frame order")
	}
	copied := *order
	return &copied, nil
}

func (f *fakeRepository) GetAll(_ context.Context) ([]FrameOrder, error) {
	var out []FrameOrder
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	order, ok := f.orders[id]
	if !ok {
		return apperrors.NotFound("frame order")
	}
	applyUpdates(order, updates)
	return nil
}

func (f *fakeRepository) UpdateStatusWithEarnings(_ context.Context, id uuid.UUID, updates map[string]interface{}, record *earnings.Record) error {
	order, ok := f.orders[id]
	if !ok {
		return apperrors.NotFound("frame order")
	}
	applyUpdates(order, updates)
	if record != nil {
		f.records = append(f.records, *record)
	}
	return nil
}

func (f *fakeRepository) ConfirmWithDeposit(_ context.Context, id uuid.UUID, updates map[string]interface{}, paymentAmount float64) (float64, error) {
	order, ok := f.orders[id]
	if !ok {
		return 0, apperrors.NotFound("frame order")
	}
	applyUpdates(order, updates)

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
			ServiceType: EarningsLabel,
			Amount:      delta,
			PaymentDate: time.Now(),
		})
	}
	return delta, nil
}

func (f *fakeRepository) CompleteWithBalance(_ context.Context, id uuid.UUID, updates map[string]interface{}, fullAmount float64) error {
	order, ok := f.orders[id]
	if !ok {
		return apperrors.NotFound("frame order")
	}
	applyUpdates(order, updates)

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
			ServiceType: EarningsLabel + earnings.BalanceSuffix,
			Amount:      balance,
			PaymentDate: time.Now(),
		})
	}
	return nil
}

func applyUpdates(order *FrameOrder, updates map[string]interface{}) {
	for key, value := range updates {
		switch key {
		case "status":
			order.Status = value.(reservations.Status)
		case "fulfillment_status":
			order.FulfillmentStatus = value.(FulfillmentStatus)
		case "payment_amount":
			order.PaymentAmount = value.(float64)
		case "payment_reference":
			order.PaymentReference = value.(string)
		case "admin_notes":
			order.AdminNotes = value.(string)
		case "full_payment_received":
			order.FullPaymentReceived = value.(bool)
		case "full_payment_amount":
			order.FullPaymentAmount = value.(float64)
		case "full_payment_reference":
			order.FullPaymentReference = value.(string)
		}
	}
}

type fakeEarnings struct {
	invalidations int
}

func (f *fakeEarnings) GetSummary(context.Context) (*earnings.Summary, error) { return nil, nil }
func (f *fakeEarnings) InvalidateSummary(context.Context)                     { f.invalidations++ }
func (f *fakeEarnings) SetCacheService(cache.Service, time.Duration)          {}

func newTestService() (Service, *fakeRepository, *fakeEarnings) {
	repo := newFakeRepository()
	earn := &fakeEarnings{}
	return NewService(repo, earn, nil, logger.GetDefault()), repo, earn
}

func orderRequest() CreateFrameOrderRequest {
	return CreateFrameOrderRequest{
		FrameSize:     "8x10",
		FrameStyle:    "matte black",
		Quantity:      2,
		DeliveryFee:   0,
		CustomerName:  "Amara Osei",
		CustomerEmail: "amara@example.com",
		CustomerPhone: "555-0142",
	}
}

func TestCreateFrameOrder(t *testing.T) {
	svc, _, _ := newTestService()

	order, err := svc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	assert.InDelta(t, 90, order.TotalPrice, 0.0001)
	assert.Equal(t, reservations.StatusPendingPayment, order.Status)
	assert.Equal(t, FulfillmentPending, order.FulfillmentStatus)
}

func TestCreateFrameOrderUnknownSize(t *testing.T) {
	svc, _, _ := newTestService()

	req := orderRequest()
	req.FrameSize = "9x12"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFrameOrderLifecycleEarnings(t *testing.T) {
	svc, repo, earn := newTestService()

	order, err := svc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	_, err = svc.SubmitPayment(context.Background(), order.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-9"})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), order.ID, ApproveRequest{})
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	assert.Equal(t, EarningsLabel, repo.records[0].ServiceType)
	assert.InDelta(t, 45, repo.records[0].Amount, 0.0001)

	_, err = svc.Complete(context.Background(), order.ID, CompleteRequest{
		FullPaymentReceived: true,
		FullPaymentAmount:   90,
	})
	require.NoError(t, err)

	require.Len(t, repo.records, 2)
	assert.Equal(t, "frames_balance", repo.records[1].ServiceType)
	assert.InDelta(t, 45, repo.records[1].Amount, 0.0001)
	assert.Equal(t, 2, earn.invalidations)
}

func TestReapproveAfterResubmissionRecognizesOnce(t *testing.T) {
	svc, repo, earn := newTestService()

	order, err := svc.Create(context.Background(), orderRequest())
	require.NoError(t, err)
	_, err = svc.SubmitPayment(context.Background(), order.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-9"})
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), order.ID, ApproveRequest{})
	require.NoError(t, err)

	// Corrected resubmission of the same amount; the second approval
	// must not append a second record.
	_, err = svc.SubmitPayment(context.Background(), order.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-9-FIXED"})
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), order.ID, ApproveRequest{})
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	assert.InDelta(t, 45, repo.records[0].Amount, 0.0001)
	assert.Equal(t, 1, earn.invalidations)
}

func TestUpdateFulfillmentIndependentOfPayment(t *testing.T) {
	svc, repo, _ := newTestService()

	order, err := svc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	// Production can move while the order is still unpaid
	updated, err := svc.UpdateFulfillment(context.Background(), order.ID, UpdateFulfillmentRequest{
		FulfillmentStatus: FulfillmentInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, FulfillmentInProgress, updated.FulfillmentStatus)
	assert.Equal(t, reservations.StatusPendingPayment, updated.Status)

	// And freely backwards
	updated, err = svc.UpdateFulfillment(context.Background(), order.ID, UpdateFulfillmentRequest{
		FulfillmentStatus: FulfillmentPending,
	})
	require.NoError(t, err)
	assert.Equal(t, FulfillmentPending, updated.FulfillmentStatus)
	assert.Empty(t, repo.records)
}

func TestUpdateFulfillmentRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()

	order, err := svc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	_, err = svc.UpdateFulfillment(context.Background(), order.ID, UpdateFulfillmentRequest{
		FulfillmentStatus: "shipped",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCancelledOrderRejectsPayment(t *testing.T) {
	svc, _, _ := newTestService()

	order, err := svc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), order.ID, CancelRequest{})
	require.NoError(t, err)

	_, err = svc.SubmitPayment(context.Background(), order.ID, SubmitPaymentRequest{Amount: 45, Reference: "TXN-9"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}
