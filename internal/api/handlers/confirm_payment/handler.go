package confirm_payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SaunaService/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-SaunaService/internal/usecase/confirm_payment"
)

const (
	msgMissingSessionID    = "отсутствует session_id"
	msgSessionNotFound     = "платёжная сессия не найдена"
	msgBookingNotFound     = "бронирование по платёжной сессии не найдено"
	msgPaymentNotCompleted = "оплата ещё не завершена"
)

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	Success         bool   `json:"success"`
	BookingID       int64  `json:"bookingId"`
	Status          string `json:"status"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	TotalPriceCents int64  `json:"totalPriceCents"`
	CustomerEmail   string `json:"customerEmail"`
}

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/confirm?session_id=...
// Вызывается client-side redirect'ом после оплаты; тот же usecase пригоден
// для webhook'а или поллинга — точка входа не привязана к механизму доставки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		h.logger.Warn("GET /payments/confirm - Missing session_id")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingSessionID)

		case errors.Is(err, confirmPayment.ErrSessionNotFound):
			h.logger.Warn("GET /payments/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("GET /payments/confirm - Booking not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrPaymentNotCompleted):
			h.logger.Info("GET /payments/confirm - Payment not completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotCompleted)

		default:
			h.logger.Error("GET /payments/confirm - Failed to confirm payment: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments/confirm - Payment confirmed: booking_id=%d, status=%s",
		result.BookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, &ConfirmPaymentResponse{
		Success:         true,
		BookingID:       result.BookingID,
		Status:          result.Status,
		StartTime:       result.StartTime.Format(time.RFC3339),
		EndTime:         result.EndTime.Format(time.RFC3339),
		TotalPriceCents: result.TotalPriceCents,
		CustomerEmail:   result.CustomerEmail,
	})
}
