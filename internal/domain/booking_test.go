package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func window(startHour, endHour int) (time.Time, time.Time) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusPaid, true},
		{StatusFailed, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsActive())
		})
	}
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusPaid}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusFailed}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusPaid}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusFailed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_Overlaps(t *testing.T) {
	start, end := window(10, 11)
	b := &Booking{StartTime: start, EndTime: end}

	tests := []struct {
		name      string
		startHour int
		endHour   int
		want      bool
	}{
		{"identical window", 10, 11, true},
		{"contained window", 10, 12, true},
		{"overlap from the left", 9, 11, true},
		{"adjacent before does not overlap", 9, 10, false},
		{"adjacent after does not overlap", 11, 12, false},
		{"disjoint", 13, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := window(tt.startHour, tt.endHour)
			assert.Equal(t, tt.want, b.Overlaps(s, e))
		})
	}
}
