package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SaunaService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SaunaService/internal/usecase/create_booking"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"customerEmail": "a@b.com",
		"startTime":     "2025-10-15T10:00:00Z",
		"endTime":       "2025-10-15T11:30:00Z",
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		BookingID:       7,
		Status:          "pending",
		StartTime:       time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC),
		TotalPriceCents: 3000,
		SessionID:       "cs_test_123",
		RedirectURL:     "https://pay.example.com/cs_test_123",
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.BookingID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(3000), resp.TotalPriceCents)
	assert.Equal(t, "https://pay.example.com/cs_test_123", resp.RedirectURL)
}

func TestHandle_SlotNotAvailable(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: createBooking.ErrSlotNotAvailable}, validBody())
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestHandle_InvalidTimeFormat(t *testing.T) {
	body := validBody()
	body["startTime"] = "15.10.2025 10:00"

	rec := doRequest(t, &stubUseCase{}, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_PaymentUnavailable(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: createBooking.ErrPaymentUnavailable}, validBody())
	require.Equal(t, http.StatusBadGateway, rec.Code)

	// Наружу уходит generic-сообщение без деталей провайдера
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotContains(t, resp.Error, "stripe")
}

func TestHandle_InvalidJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	NewHandler(&stubUseCase{}, nopLogger{}).Handle(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
