package booking

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCancelled BookingStatus = "CANCELLED"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once a booking can no longer change state.
func (bs BookingStatus) IsTerminal() bool {
	return bs == StatusConfirmed || bs == StatusRejected || bs == StatusCancelled
}

// CanTransitionTo reports whether the status may move to next. Only a
// pending booking can be confirmed, rejected or cancelled.
func (bs BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if bs != StatusPending {
		return false
	}
	return next == StatusConfirmed || next == StatusRejected || next == StatusCancelled
}

// GetAllBookingStatuses returns all valid booking statuses.
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		StatusPending,
		StatusConfirmed,
		StatusRejected,
		StatusCancelled,
	}
}
