package paymentprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:    baseURL,
		SecretKey:  "sk_test_secret",
		SuccessURL: "https://sauna.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://sauna.example.com/cancel",
		Currency:   "rub",
	}, 5*time.Second, nopLogger{})
}

func TestCreateSession(t *testing.T) {
	var gotForm url.Values
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)

		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cs_test_123",
			"url": "https://checkout.example.com/pay/cs_test_123",
			"status": "open",
			"payment_status": "unpaid",
			"metadata": {"bookingId": "42"}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	session, err := client.CreateSession(context.Background(), CreateSessionInput{
		AmountCents:   3000,
		Description:   "Sauna 2025-10-15 10:00-11:30",
		BookingID:     42,
		CustomerEmail: "a@b.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.example.com/pay/cs_test_123", session.URL)
	assert.Equal(t, int64(42), session.BookingID)
	assert.False(t, session.IsPaid())

	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, "payment", gotForm.Get("mode"))
	assert.Equal(t, "3000", gotForm.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "rub", gotForm.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "42", gotForm.Get("metadata[bookingId]"))
	assert.Equal(t, "a@b.com", gotForm.Get("customer_email"))
}

func TestCreateSession_NoRedirectURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id": "cs_test_123", "status": "open", "payment_status": "unpaid"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateSession(context.Background(), CreateSessionInput{AmountCents: 2000, BookingID: 1})
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestRetrieveSession_Paid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/checkout/sessions/cs_test_123", r.URL.Path)

		w.Write([]byte(`{
			"id": "cs_test_123",
			"status": "complete",
			"payment_status": "paid",
			"metadata": {"bookingId": "42"}
		}`))
	}))
	defer srv.Close()

	session, err := newTestClient(srv.URL).RetrieveSession(context.Background(), "cs_test_123")
	require.NoError(t, err)

	assert.True(t, session.IsPaid())
	assert.False(t, session.IsExpired())
	assert.Equal(t, int64(42), session.BookingID)
}

func TestRetrieveSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).RetrieveSession(context.Background(), "cs_missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRetrieveSession_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).RetrieveSession(context.Background(), "cs_test_123")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRetrieveSession_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "internal provider error"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).RetrieveSession(context.Background(), "cs_test_123")
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "internal provider error")
}
