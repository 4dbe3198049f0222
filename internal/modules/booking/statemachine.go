package booking

import "hotelbooking/internal/domain"

// transitions is the single source of truth for the booking lifecycle:
//
//	pending → confirmed → checked-in → checked-out
//	pending|confirmed → cancelled
//	confirmed → no-show
//
// checked-out, cancelled and no-show are terminal.
var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:   {domain.BookingConfirmed, domain.BookingCancelled},
	domain.BookingConfirmed: {domain.BookingCheckedIn, domain.BookingCancelled, domain.BookingNoShow},
	domain.BookingCheckedIn: {domain.BookingCheckedOut},
}

// CanTransition reports whether the edge from → to is in the transition
// table. Re-applying an already applied transition is not allowed: a
// cancelled booking cannot be cancelled again.
func CanTransition(from, to domain.BookingStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
