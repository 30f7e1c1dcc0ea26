package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
// Корректность самого интервала (длительность, кратность блоку) проверяет
// pricing.Calculate — здесь только то, что нельзя проверить там
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}

	return nil
}
