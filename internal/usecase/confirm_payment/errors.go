package confirm_payment

import "errors"

var (
	// ErrSessionNotFound возвращается, когда платёжная сессия не найдена у провайдера
	ErrSessionNotFound = errors.New("confirm_payment: payment session not found")

	// ErrBookingNotFound возвращается, когда по сессии не найдено бронирование
	ErrBookingNotFound = errors.New("confirm_payment: booking not found for payment session")

	// ErrPaymentNotCompleted возвращается, когда провайдер ещё не подтвердил оплату
	ErrPaymentNotCompleted = errors.New("confirm_payment: payment is not completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
