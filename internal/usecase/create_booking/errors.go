package create_booking

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда запрошенный интервал пересекается
	// с существующим активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: time slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPaymentUnavailable возвращается, когда платёжный провайдер не выдал
	// пригодную сессию. Бронирование при этом остаётся pending и продолжает
	// держать слот — см. комментарий в Execute
	ErrPaymentUnavailable = errors.New("create_booking: payment provider unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
