package confirm_payment

import "time"

// Request модель запроса на подтверждение оплаты
type Request struct {
	SessionID string // Идентификатор платёжной сессии (correlation reference)
}

// Response модель ответа с актуальным состоянием бронирования
type Response struct {
	BookingID       int64     // ID бронирования
	Status          string    // Итоговый статус бронирования
	StartTime       time.Time // Начало интервала
	EndTime         time.Time // Конец интервала
	TotalPriceCents int64     // Стоимость в центах
	CustomerEmail   string    // Email клиента
}
