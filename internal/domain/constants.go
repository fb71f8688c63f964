package domain

// Default field configuration values
const (
	DefaultFixedSlotMinutes = 90
	DefaultMinSlotMinutes   = 75
	DefaultTerrainCount     = 1
)

// Business validation constants
const (
	MinTerrainCount            = 1
	MaxTerrainCount            = 100
	MaxNotesLength             = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PendingSlotComment комментарий, прикрепляемый к спорным слотам:
// ёмкость выбрана, но не все заявки подтверждены
const PendingSlotComment = "awaiting approval for overlapping requests"

// InactiveStatuses список статусов, не занимающих ёмкость поля.
// Используется при построении таймлайна занятости.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusRejected,
}

// ActiveStatuses список статусов, резервирующих ёмкость поля
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusWaiting,
	StatusApproved,
}
