package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SaunaService/internal/domain"
	"github.com/m04kA/SMC-SaunaService/internal/integrations/paymentprovider"
	"github.com/m04kA/SMC-SaunaService/internal/pricing"
	"github.com/m04kA/SMC-SaunaService/pkg/ptr"
)

// fakeBookingStore in-memory реализация BookingRepository
type fakeBookingStore struct {
	mu        sync.Mutex
	nextID    int64
	bookings  map[int64]*domain.Booking
	attachErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[int64]*domain.Booking)}
}

func (s *fakeBookingStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	booking.ID = s.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	stored := *booking
	s.bookings[booking.ID] = &stored
	return booking, nil
}

func (s *fakeBookingStore) GetOverlapping(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.IsActive() && b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) AttachPaymentSession(_ context.Context, id int64, sessionID string) error {
	if s.attachErr != nil {
		return s.attachErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.PaymentSessionID = ptr.Ptr(sessionID)
	return nil
}

func (s *fakeBookingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *fakeBookingStore) get(id int64) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

// fakeTxManager сериализует все транзакции одним мьютексом — эквивалент
// single-writer точки сериализации из продакшен-схемы
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// stubPaymentProvider управляемая реализация PaymentProvider
type stubPaymentProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *stubPaymentProvider) CreateSession(_ context.Context, in paymentprovider.CreateSessionInput) (*paymentprovider.Session, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}
	return &paymentprovider.Session{
		ID:            "cs_test_123",
		URL:           "https://pay.example.com/cs_test_123",
		Status:        paymentprovider.SessionStatusOpen,
		PaymentStatus: paymentprovider.PaymentStatusUnpaid,
		BookingID:     in.BookingID,
	}, nil
}

func (p *stubPaymentProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func newTestUseCase(store *fakeBookingStore, provider *stubPaymentProvider) *UseCase {
	return NewUseCase(store, provider, &fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		CustomerEmail: "a@b.com",
		CustomerName:  ptr.Ptr("Anna"),
		StartTime:     at(10, 0),
		EndTime:       at(11, 30),
	}
}

func TestExecute_Success(t *testing.T) {
	store := newFakeBookingStore()
	provider := &stubPaymentProvider{}
	uc := newTestUseCase(store, provider)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(3000), resp.TotalPriceCents)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_test_123", resp.RedirectURL)

	stored := store.get(resp.BookingID)
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, int64(3000), stored.TotalPriceCents)
	require.NotNil(t, stored.PaymentSessionID)
	assert.Equal(t, "cs_test_123", *stored.PaymentSessionID)
}

func TestExecute_MissingEmail(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, &stubPaymentProvider{})

	req := validRequest()
	req.CustomerEmail = "   "

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, store.count())
}

func TestExecute_PricingErrorsPropagate(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"end before start", at(11, 0), at(10, 0), pricing.ErrInvalidRange},
		{"too short", at(10, 0), at(10, 30), pricing.ErrTooShort},
		{"not block aligned", at(10, 0), at(11, 20), pricing.ErrNotBlockAligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeBookingStore()
			provider := &stubPaymentProvider{}
			uc := newTestUseCase(store, provider)

			req := validRequest()
			req.StartTime, req.EndTime = tt.start, tt.end

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, store.count())
			assert.Zero(t, provider.callCount())
		})
	}
}

func TestExecute_SlotTaken(t *testing.T) {
	store := newFakeBookingStore()
	provider := &stubPaymentProvider{}
	uc := newTestUseCase(store, provider)

	// Первое бронирование занимает [10:00, 11:00)
	first, err := uc.Execute(context.Background(), &Request{
		CustomerEmail: "a@b.com",
		StartTime:     at(10, 0),
		EndTime:       at(11, 0),
	})
	require.NoError(t, err)

	// Пересекающееся [10:30, 11:30) отклоняется
	_, err = uc.Execute(context.Background(), &Request{
		CustomerEmail: "c@d.com",
		StartTime:     at(10, 30),
		EndTime:       at(11, 30),
	})
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	// Первое бронирование не тронуто, вторая платёжная сессия не создавалась
	assert.Equal(t, 1, store.count())
	assert.Equal(t, domain.StatusPending, store.get(first.BookingID).Status)
	assert.Equal(t, 1, provider.callCount())
}

func TestExecute_AdjacentWindowsBothAdmitted(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, &stubPaymentProvider{})

	_, err := uc.Execute(context.Background(), &Request{
		CustomerEmail: "a@b.com",
		StartTime:     at(10, 0),
		EndTime:       at(11, 0),
	})
	require.NoError(t, err)

	// Полуоткрытые интервалы: [11:00, 12:00) соприкасается, но не пересекается
	_, err = uc.Execute(context.Background(), &Request{
		CustomerEmail: "c@d.com",
		StartTime:     at(11, 0),
		EndTime:       at(12, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, store.count())
}

func TestExecute_PaymentFailureLeavesBookingPending(t *testing.T) {
	store := newFakeBookingStore()
	provider := &stubPaymentProvider{err: errors.New("provider down")}
	uc := newTestUseCase(store, provider)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPaymentUnavailable)

	// Бронирование создано и продолжает держать слот
	require.Equal(t, 1, store.count())
	stored := store.get(1)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Nil(t, stored.PaymentSessionID)

	// Слот остаётся занятым для следующих запросов
	_, err = uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ConcurrentOverlappingRequests(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, &stubPaymentProvider{})

	requests := []*Request{
		{CustomerEmail: "a@b.com", StartTime: at(10, 0), EndTime: at(11, 0)},
		{CustomerEmail: "c@d.com", StartTime: at(10, 30), EndTime: at(11, 30)},
	}

	errs := make([]error, len(requests))
	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *Request) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i, req)
	}
	wg.Wait()

	// Ровно один запрос выигрывает admission, второй получает конфликт
	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotNotAvailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, store.count())
}
