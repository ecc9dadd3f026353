package reservations

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrSlotConflict        = errors.New("requested slot no longer has capacity")
	ErrHoldNotFound        = errors.New("hold not found or expired")
	ErrInvalidStartMinute  = errors.New("start minute is outside the operating window")
	ErrVenueClosed         = errors.New("venue is closed on the requested date")
	ErrStartNotOnStep      = errors.New("start minute is not aligned to the slot step")
	ErrPaymentDeclined     = errors.New("payment was declined")
	ErrHoldSlotUnavailable = errors.New("slot is held by another checkout")
)
