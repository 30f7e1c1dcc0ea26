package list_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-SaunaService/internal/domain"
	"github.com/m04kA/SMC-SaunaService/internal/service/bookings/models"
)

// parseQuery разбирает query-параметры фильтрации списка бронирований
// Поддерживаются: startDate, endDate (YYYY-MM-DD), status, includeInactive
func parseQuery(values url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := values.Get("startDate"); v != "" {
		t, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &t
	}

	if v := values.Get("endDate"); v != "" {
		t, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		// Конец периода включает весь день
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		req.EndDate = &t
	}

	if v := values.Get("status"); v != "" {
		req.Status = &v
	}

	req.IncludeInactive = values.Get("includeInactive") == "true"

	return req, nil
}
