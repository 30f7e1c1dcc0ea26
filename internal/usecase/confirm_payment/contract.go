package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-SaunaService/internal/domain"
	"github.com/m04kA/SMC-SaunaService/internal/integrations/paymentprovider"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPaymentSessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusFromPending(ctx context.Context, id int64, status domain.BookingStatus) (bool, error)
}

// PaymentProvider интерфейс платёжного провайдера
type PaymentProvider interface {
	RetrieveSession(ctx context.Context, sessionID string) (*paymentprovider.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
