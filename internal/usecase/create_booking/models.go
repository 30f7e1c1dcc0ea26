package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerEmail string    // Email клиента (обязателен)
	CustomerName  *string   // Имя клиента (опционально)
	StartTime     time.Time // Начало интервала
	EndTime       time.Time // Конец интервала (полуоткрытый: [start, end))
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID       int64     // ID созданного бронирования
	Status          string    // Статус (pending)
	StartTime       time.Time // Начало интервала
	EndTime         time.Time // Конец интервала
	TotalPriceCents int64     // Стоимость в центах
	SessionID       string    // Идентификатор платёжной сессии
	RedirectURL     string    // Ссылка на страницу оплаты
	CreatedAt       time.Time // Время создания
}
