// Package pricing расчёт стоимости бронирования сауны
// Чистая функция без побочных эффектов: одинаковые входы всегда дают
// одинаковую цену или одинаковую ошибку
package pricing

import "time"

// Тарифные константы
const (
	// BlockMinutes тарифный блок в минутах
	BlockMinutes = 30

	// MinDurationMinutes минимальная длительность бронирования в минутах
	MinDurationMinutes = 60

	// PricePerBlockCents цена одного блока в центах (10.00€)
	PricePerBlockCents int64 = 1000
)

// Calculate вычисляет стоимость бронирования в центах по интервалу [start, end)
//
// Правила (каждое — жёсткое предусловие, проверяются по порядку):
//  1. end > start
//  2. длительность >= MinDurationMinutes
//  3. длительность кратна BlockMinutes
//
// Цена = (длительность в минутах / 30) * PricePerBlockCents
// Только целочисленная арифметика: длительность уже выровнена по блокам
func Calculate(start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, ErrInvalidRange
	}

	duration := end.Sub(start)

	if duration < MinDurationMinutes*time.Minute {
		return 0, ErrTooShort
	}

	if duration%(BlockMinutes*time.Minute) != 0 {
		return 0, ErrNotBlockAligned
	}

	blocks := int64(duration / (BlockMinutes * time.Minute))
	return blocks * PricePerBlockCents, nil
}
