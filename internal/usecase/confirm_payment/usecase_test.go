package confirm_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SaunaService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SaunaService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SaunaService/internal/integrations/paymentprovider"
	"github.com/m04kA/SMC-SaunaService/pkg/ptr"
)

// fakeBookingStore in-memory реализация BookingRepository
type fakeBookingStore struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingStore(bookings ...*domain.Booking) *fakeBookingStore {
	s := &fakeBookingStore{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
	return s
}

func (s *fakeBookingStore) GetByPaymentSessionID(_ context.Context, sessionID string) (*domain.Booking, error) {
	for _, b := range s.bookings {
		if b.PaymentSessionID != nil && *b.PaymentSessionID == sessionID {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *fakeBookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (s *fakeBookingStore) UpdateStatusFromPending(_ context.Context, id int64, status domain.BookingStatus) (bool, error) {
	b, ok := s.bookings[id]
	if !ok || b.Status != domain.StatusPending {
		return false, nil
	}
	b.Status = status
	return true, nil
}

// stubPaymentProvider отдает заранее заданное состояние сессии
type stubPaymentProvider struct {
	session *paymentprovider.Session
	err     error
}

func (p *stubPaymentProvider) RetrieveSession(_ context.Context, _ string) (*paymentprovider.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking(sessionID string) *domain.Booking {
	return &domain.Booking{
		ID:               1,
		StartTime:        time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC),
		TotalPriceCents:  3000,
		Status:           domain.StatusPending,
		CustomerEmail:    "a@b.com",
		PaymentSessionID: ptr.Ptr(sessionID),
	}
}

func paidSession(id string) *paymentprovider.Session {
	return &paymentprovider.Session{
		ID:            id,
		Status:        paymentprovider.SessionStatusComplete,
		PaymentStatus: paymentprovider.PaymentStatusPaid,
	}
}

func TestExecute_PaidSessionMarksBookingPaid(t *testing.T) {
	booking := pendingBooking("cs_1")
	store := newFakeBookingStore(booking)
	uc := NewUseCase(store, &stubPaymentProvider{session: paidSession("cs_1")}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "cs_1"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPaid), resp.Status)
	assert.Equal(t, booking.ID, resp.BookingID)
	assert.Equal(t, int64(3000), resp.TotalPriceCents)
	assert.Equal(t, "a@b.com", resp.CustomerEmail)
	assert.Equal(t, domain.StatusPaid, booking.Status)
}

func TestExecute_RepeatConfirmationIsIdempotent(t *testing.T) {
	booking := pendingBooking("cs_1")
	store := newFakeBookingStore(booking)
	uc := NewUseCase(store, &stubPaymentProvider{session: paidSession("cs_1")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "cs_1"})
	require.NoError(t, err)

	// Повторный вызов для той же сессии — no-op, статус не меняется
	resp, err := uc.Execute(context.Background(), &Request{SessionID: "cs_1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPaid), resp.Status)
	assert.Equal(t, domain.StatusPaid, booking.Status)
}

func TestExecute_UnpaidOpenSession(t *testing.T) {
	booking := pendingBooking("cs_1")
	store := newFakeBookingStore(booking)
	provider := &stubPaymentProvider{session: &paymentprovider.Session{
		ID:            "cs_1",
		Status:        paymentprovider.SessionStatusOpen,
		PaymentStatus: paymentprovider.PaymentStatusUnpaid,
	}}
	uc := NewUseCase(store, provider, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "cs_1"})
	require.ErrorIs(t, err, ErrPaymentNotCompleted)

	// Бронирование остаётся pending до исхода оплаты
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestExecute_ExpiredSessionMarksBookingFailed(t *testing.T) {
	booking := pendingBooking("cs_1")
	store := newFakeBookingStore(booking)
	provider := &stubPaymentProvider{session: &paymentprovider.Session{
		ID:            "cs_1",
		Status:        paymentprovider.SessionStatusExpired,
		PaymentStatus: paymentprovider.PaymentStatusUnpaid,
	}}
	uc := NewUseCase(store, provider, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "cs_1"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusFailed), resp.Status)
	assert.Equal(t, domain.StatusFailed, booking.Status)
}

func TestExecute_SessionNotFoundAtProvider(t *testing.T) {
	store := newFakeBookingStore()
	uc := NewUseCase(store, &stubPaymentProvider{err: paymentprovider.ErrSessionNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "cs_missing"})
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_NoBookingForSession(t *testing.T) {
	store := newFakeBookingStore()
	uc := NewUseCase(store, &stubPaymentProvider{session: paidSession("cs_orphan")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "cs_orphan"})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_EmptySessionID(t *testing.T) {
	uc := NewUseCase(newFakeBookingStore(), &stubPaymentProvider{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: ""})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CancelledBookingWinsOverLatePayment(t *testing.T) {
	// Администратор отменил бронирование до прихода подтверждения:
	// условное обновление не срабатывает, ответ отражает фактический статус
	booking := pendingBooking("cs_1")
	booking.Status = domain.StatusCancelled
	booking.CancellationReason = ptr.Ptr("клиент попросил перенести")
	store := newFakeBookingStore(booking)
	uc := NewUseCase(store, &stubPaymentProvider{session: paidSession("cs_1")}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "cs_1"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, booking.Status)
}
