package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SaunaService/internal/domain"
	"github.com/m04kA/SMC-SaunaService/internal/integrations/paymentprovider"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	AttachPaymentSession(ctx context.Context, id int64, sessionID string) error
}

// PaymentProvider интерфейс платёжного провайдера
// Ядро зависит только от этой capability, не от wire-протокола провайдера
type PaymentProvider interface {
	CreateSession(ctx context.Context, in paymentprovider.CreateSessionInput) (*paymentprovider.Session, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
