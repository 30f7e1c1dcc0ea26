package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SaunaService/internal/api/handlers"
	"github.com/m04kA/SMC-SaunaService/internal/pricing"
	createBooking "github.com/m04kA/SMC-SaunaService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC 3339"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
	msgInvalidRange       = "время окончания должно быть позже времени начала"
	msgTooShort           = "минимальное время бронирования - 1 час"
	msgNotBlockAligned    = "длительность должна быть кратна 30 минутам"
	msgEmailRequired      = "email обязателен"
	msgPaymentUnavailable = "платёжный сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: email=%s", req.CustomerEmail)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, pricing.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid time range: email=%s", req.CustomerEmail)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, pricing.ErrTooShort):
			h.logger.Warn("POST /bookings - Duration too short: email=%s", req.CustomerEmail)
			handlers.RespondBadRequest(w, msgTooShort)

		case errors.Is(err, pricing.ErrNotBlockAligned):
			h.logger.Warn("POST /bookings - Duration not block aligned: email=%s", req.CustomerEmail)
			handlers.RespondBadRequest(w, msgNotBlockAligned)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmailRequired)

		case errors.Is(err, createBooking.ErrPaymentUnavailable):
			// Бронирование уже создано и осталось pending; наружу уходит
			// generic-сообщение без деталей провайдера
			h.logger.Error("POST /bookings - Payment provider failed: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondBadGateway(w, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, email=%s",
		result.BookingID, req.CustomerEmail)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
