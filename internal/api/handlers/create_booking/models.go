package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/m04kA/SMC-SaunaService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerEmail string  `json:"customerEmail"`
	CustomerName  *string `json:"customerName,omitempty"`
	StartTime     string  `json:"startTime"` // RFC 3339, например "2025-10-15T10:00:00Z"
	EndTime       string  `json:"endTime"`   // RFC 3339
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success         bool   `json:"success"`
	BookingID       int64  `json:"bookingId"`
	Status          string `json:"status"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	TotalPriceCents int64  `json:"totalPriceCents"`
	RedirectURL     string `json:"redirectUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %w", err)
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime: %w", err)
	}

	return &createBooking.Request{
		CustomerEmail: r.CustomerEmail,
		CustomerName:  r.CustomerName,
		StartTime:     start,
		EndTime:       end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:         true,
		BookingID:       resp.BookingID,
		Status:          resp.Status,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		TotalPriceCents: resp.TotalPriceCents,
		RedirectURL:     resp.RedirectURL,
	}
}
