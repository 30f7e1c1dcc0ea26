package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SaunaService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SaunaService/internal/infra/storage/booking"
	providerClient "github.com/m04kA/SMC-SaunaService/internal/integrations/paymentprovider"
)

// UseCase use case подтверждения оплаты
//
// Отдельная точка входа: вызывается client-side redirect'ом после оплаты,
// webhook'ом или поллингом — механизм доставки ядру безразличен.
// Идемпотентен: повторный вызов для той же сессии ничего не меняет.
// Гонка с административной отменой разрешается условным обновлением статуса
// (побеждает первый терминальный переход), взаимное исключение не требуется
type UseCase struct {
	bookingRepo     BookingRepository
	paymentProvider PaymentProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentProvider PaymentProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		paymentProvider: paymentProvider,
		logger:          logger,
	}
}

// Execute выполняет подтверждение оплаты по correlation reference
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	uc.logger.Info("ConfirmPayment: session id=%s", req.SessionID)

	// 1. Запрашиваем состояние сессии у провайдера
	// Статус оплаты берем только от провайдера, не от клиента
	session, err := uc.paymentProvider.RetrieveSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, providerClient.ErrSessionNotFound) {
			uc.logger.Warn("ConfirmPayment: session id=%s not found at provider", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to retrieve session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to retrieve session: %v", ErrInternal, err)
	}

	// 2. Находим бронирование по correlation reference
	booking, err := uc.bookingRepo.GetByPaymentSessionID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: no booking for session id=%s", req.SessionID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get booking for session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Определяем целевой переход по состоянию сессии
	switch {
	case session.IsPaid():
		if err := uc.transition(ctx, booking, domain.StatusPaid); err != nil {
			return nil, err
		}

	case session.IsExpired():
		// Сессия истекла без оплаты: бронирование освобождает слот
		if err := uc.transition(ctx, booking, domain.StatusFailed); err != nil {
			return nil, err
		}

	default:
		uc.logger.Info("ConfirmPayment: session id=%s not paid yet (status=%s, payment_status=%s)",
			req.SessionID, session.Status, session.PaymentStatus)
		return nil, ErrPaymentNotCompleted
	}

	// 4. Перечитываем актуальное состояние: при гонке с отменой условное
	// обновление могло не сработать, ответ отражает фактический статус
	current, err := uc.bookingRepo.GetByID(ctx, booking.ID)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to re-read booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to re-read booking: %v", ErrInternal, err)
	}

	return &Response{
		BookingID:       current.ID,
		Status:          string(current.Status),
		StartTime:       current.StartTime,
		EndTime:         current.EndTime,
		TotalPriceCents: current.TotalPriceCents,
		CustomerEmail:   current.CustomerEmail,
	}, nil
}

// transition переводит бронирование из pending в терминальный статус
// Уже терминальное бронирование не трогаем: переходы монотонны
func (uc *UseCase) transition(ctx context.Context, booking *domain.Booking, status domain.BookingStatus) error {
	updated, err := uc.bookingRepo.UpdateStatusFromPending(ctx, booking.ID, status)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to update booking id=%d to %s: %v", booking.ID, status, err)
		return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
	}

	if updated {
		uc.logger.Info("ConfirmPayment: booking id=%d transitioned to %s", booking.ID, status)
	} else {
		uc.logger.Info("ConfirmPayment: booking id=%d already terminal (%s), no-op", booking.ID, booking.Status)
	}

	return nil
}
