package paymentprovider

import "errors"

var (
	// ErrSessionNotFound возвращается, когда платёжная сессия не найдена у провайдера
	ErrSessionNotFound = errors.New("paymentprovider client: session not found")

	// ErrUnauthorized возвращается при некорректном секретном ключе
	ErrUnauthorized = errors.New("paymentprovider client: invalid API key")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("paymentprovider client: invalid response")
)
