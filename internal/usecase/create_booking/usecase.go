package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SaunaService/internal/domain"
	"github.com/m04kA/SMC-SaunaService/internal/integrations/paymentprovider"
	"github.com/m04kA/SMC-SaunaService/internal/pricing"
)

// UseCase use case создания бронирования: admission-протокол целиком
type UseCase struct {
	bookingRepo     BookingRepository
	paymentProvider PaymentProvider
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentProvider PaymentProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		paymentProvider: paymentProvider,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции — единственная точка, где enforced инвариант отсутствия
// пересечений. После успешной резервации отката нет: если платёжная сессия
// не создалась, бронирование остаётся pending и продолжает держать слот.
// Автоматическое освобождение здесь открыло бы гонку: второй клиент занял бы
// слот, пока у первого ещё жива ссылка на оплату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, start=%s, end=%s",
		req.CustomerEmail, req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Расчёт стоимости
	// Ошибки pricing пробрасываются как есть: handler отличает их от системных
	priceCents, err := pricing.Calculate(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: pricing failed: %v", err)
		return nil, err
	}

	// 3. Admission: проверка занятости и вставка в одной сериализуемой транзакции
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: slot [%s, %s) already taken by booking id=%d",
				req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat), overlapping[0].ID)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			TotalPriceCents: priceCents,
			Status:          domain.StatusPending,
			CustomerEmail:   req.CustomerEmail,
			CustomerName:    req.CustomerName,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: reserved booking id=%d, price=%d", result.ID, priceCents)

	// 4. Создаём платёжную сессию
	// Вызов ограничен таймаутом клиента и не повторяется вслепую: повтор после
	// неоднозначной ошибки мог бы создать вторую сессию на то же бронирование
	session, err := uc.paymentProvider.CreateSession(ctx, paymentprovider.CreateSessionInput{
		AmountCents:   priceCents,
		Description:   windowDescription(result),
		BookingID:     result.ID,
		CustomerEmail: result.CustomerEmail,
	})
	if err != nil {
		// Бронирование осознанно НЕ удаляем: оно может быть подтверждено
		// out-of-band, а удаление гонялось бы с поздним callback'ом провайдера
		uc.logger.Error("CreateBooking: payment session failed, booking id=%d left pending: %v", result.ID, err)
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrPaymentUnavailable, result.ID, err)
	}

	// 5. Сохраняем correlation reference на бронировании
	if err := uc.bookingRepo.AttachPaymentSession(ctx, result.ID, session.ID); err != nil {
		uc.logger.Error("CreateBooking: failed to attach session id=%s to booking id=%d: %v",
			session.ID, result.ID, err)
		return nil, fmt.Errorf("%w: failed to attach payment session: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, session id=%s", result.ID, session.ID)

	return &Response{
		BookingID:       result.ID,
		Status:          string(result.Status),
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		TotalPriceCents: priceCents,
		SessionID:       session.ID,
		RedirectURL:     session.URL,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// windowDescription человекочитаемое описание интервала для страницы оплаты
func windowDescription(b *domain.Booking) string {
	return fmt.Sprintf("%s - %s",
		b.StartTime.Format(domain.DateTimeFormat),
		b.EndTime.Format("15:04"))
}
