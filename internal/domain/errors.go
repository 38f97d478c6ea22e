package domain

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrBandNotFound        = errors.New("band not found")
	ErrVenueNotFound       = errors.New("venue not found")
)

var (
	ErrBookingConflict   = errors.New("venue already has a booking in this time window")
	ErrBookingLocked     = errors.New("booking already has applications and cannot be modified")
	ErrBookingClosed     = errors.New("booking is closed for new applications")
	ErrAlreadyApplied    = errors.New("band already applied to this booking")
	ErrBandAlreadyChosen = errors.New("another application is already accepted for this booking")
)

var (
	ErrValidation = errors.New("validation error")
)
