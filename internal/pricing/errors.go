package pricing

import "errors"

var (
	// ErrInvalidRange возвращается, когда конец интервала не позже начала
	ErrInvalidRange = errors.New("pricing: end time must be after start time")

	// ErrTooShort возвращается, когда длительность меньше минимальной
	ErrTooShort = errors.New("pricing: duration is below the minimum reservation time")

	// ErrNotBlockAligned возвращается, когда длительность не кратна тарифному блоку
	ErrNotBlockAligned = errors.New("pricing: duration must be a multiple of the billing block")
)
