package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrAlreadyClockedIn = errors.New("employee already has an open attendance record")
	ErrNotClockedIn     = errors.New("employee has no open attendance record")
	ErrClockOutTooEarly = errors.New("clock-out must be after clock-in")
)
