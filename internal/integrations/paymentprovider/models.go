package paymentprovider

// Статусы оплаты платёжной сессии у провайдера
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// Статусы жизненного цикла платёжной сессии
const (
	SessionStatusOpen     = "open"
	SessionStatusComplete = "complete"
	SessionStatusExpired  = "expired"
)

// CreateSessionInput параметры создания платёжной сессии
type CreateSessionInput struct {
	AmountCents   int64  // Сумма в центах
	Description   string // Человекочитаемое описание брони для страницы оплаты
	BookingID     int64  // ID бронирования, уходит провайдеру как opaque metadata
	CustomerEmail string // Email плательщика
}

// Session платёжная сессия провайдера
type Session struct {
	ID            string // Идентификатор сессии (correlation reference)
	URL           string // Redirect-ссылка на страницу оплаты
	Status        string // open | complete | expired
	PaymentStatus string // paid | unpaid
	BookingID     int64  // ID бронирования из metadata (0, если отсутствует)
}

// IsPaid сообщает, подтверждена ли оплата по сессии
func (s *Session) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// IsExpired сообщает, истекла ли сессия без оплаты
func (s *Session) IsExpired() bool {
	return s.Status == SessionStatusExpired
}

// sessionResponse ответ провайдера на создание/получение сессии
type sessionResponse struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// errorResponse модель ошибки провайдера
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
