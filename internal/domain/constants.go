package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// MaxCancellationReasonLength максимальная длина причины отмены
const MaxCancellationReasonLength = 500

// InactiveStatuses список статусов, не занимающих слот
// Используется при фильтрации списков бронирований
var InactiveStatuses = []BookingStatus{
	StatusFailed,
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот
// Только эти статусы участвуют в проверке пересечения интервалов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusPaid,
}

// ActiveStatusStrings возвращает ActiveStatuses строками для SQL-фильтров
func ActiveStatusStrings() []string {
	out := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		out[i] = string(s)
	}
	return out
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusPaid,
	StatusFailed,
	StatusCancelled,
}
