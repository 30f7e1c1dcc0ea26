// Package paymentprovider HTTP-клиент платёжного провайдера
// (Stripe Checkout-совместимый API)
//
// Ядро сервиса зависит только от интерфейса CreateSession/RetrieveSession,
// объявленного на стороне потребителей; этот пакет — единственное место,
// знающее wire-протокол провайдера
package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config конфигурация клиента платёжного провайдера
type Config struct {
	BaseURL    string
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Currency   string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с платёжным провайдером
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного провайдера
// Timeout ограничивает каждый сетевой вызов: запрос к провайдеру не должен
// держать admission-запрос дольше заданного
func NewClient(cfg Config, timeout time.Duration, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateSession создает платёжную сессию на сумму amountCents
// ID бронирования передается в metadata и возвращается провайдером
// при получении сессии — по нему подтверждение оплаты находит бронирование
func (c *Client) CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", c.cfg.Currency)
	form.Set("line_items[0][price_data][product_data][name]", "Sauna Reservation")
	form.Set("line_items[0][price_data][product_data][description]", in.Description)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(in.AmountCents, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.cfg.SuccessURL)
	form.Set("cancel_url", c.cfg.CancelURL)
	form.Set("metadata[bookingId]", strconv.FormatInt(in.BookingID, 10))
	form.Set("customer_email", in.CustomerEmail)

	endpoint := c.cfg.BaseURL + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSession - failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSession - failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	session, err := c.decodeSession(resp, "CreateSession")
	if err != nil {
		return nil, err
	}

	if session.URL == "" {
		return nil, fmt.Errorf("%w: CreateSession - provider returned no redirect url", ErrInvalidResponse)
	}

	c.log.Info("CreateSession: created session id=%s for booking_id=%d amount=%d", session.ID, in.BookingID, in.AmountCents)
	return session, nil
}

// RetrieveSession получает платёжную сессию по идентификатору
func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	endpoint := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.cfg.BaseURL, url.PathEscape(sessionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: RetrieveSession - failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: RetrieveSession - failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	return c.decodeSession(resp, "RetrieveSession")
}

// decodeSession обрабатывает статус-коды провайдера и разбирает тело ответа
func (c *Client) decodeSession(resp *http.Response, op string) (*Session, error) {
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrSessionNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s - provider error (status %d): %s",
				ErrInvalidResponse, op, resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: %s - unexpected status code %d: %s",
			ErrInvalidResponse, op, resp.StatusCode, string(body))
	}

	var raw sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s - failed to decode response: %v", ErrInvalidResponse, op, err)
	}

	if raw.ID == "" {
		return nil, fmt.Errorf("%w: %s - provider returned empty session id", ErrInvalidResponse, op)
	}

	session := &Session{
		ID:            raw.ID,
		URL:           raw.URL,
		Status:        raw.Status,
		PaymentStatus: raw.PaymentStatus,
	}

	// bookingId из metadata: отсутствие — не ошибка, корреляция тогда
	// выполняется только по payment_session_id
	if idStr, ok := raw.Metadata["bookingId"]; ok {
		if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
			session.BookingID = id
		}
	}

	return session, nil
}
