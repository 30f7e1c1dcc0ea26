package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusPaid      BookingStatus = "paid"
	StatusFailed    BookingStatus = "failed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a sauna reservation
// Интервал [StartTime, EndTime) полуоткрытый: бронирования, соприкасающиеся
// границами, не пересекаются
type Booking struct {
	ID              int64
	StartTime       time.Time
	EndTime         time.Time
	TotalPriceCents int64
	Status          BookingStatus

	CustomerEmail string
	CustomerName  *string

	// PaymentSessionID внешний идентификатор платёжной сессии
	// Проставляется после создания бронирования, по нему асинхронное
	// подтверждение оплаты находит своё бронирование
	PaymentSessionID *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its time slot
// Слот держат только pending и paid бронирования
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusPaid
}

// IsTerminal returns true if the booking reached a terminal status
// Из терминального статуса переходов нет
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusPaid || b.Status == StatusFailed || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// Duration returns the length of the reserved window
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// Overlaps returns true if the booking window intersects [start, end)
// Полуоткрытый тест пересечения: a.start < b.end && a.end > b.start
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли failed/cancelled бронирования
}
