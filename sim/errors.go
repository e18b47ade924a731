package sim

import "errors"

var (
	// ErrInvalidTimeSlice is returned when the time slice is zero. A zero
	// slice would never reduce remaining burst time, so the main loop could
	// not terminate.
	ErrInvalidTimeSlice = errors.New("time slice must be positive")

	// ErrDuplicateID is returned when two input processes share an ID.
	// Admission is keyed by ID, so a duplicate would be admitted once and
	// finished twice.
	ErrDuplicateID = errors.New("duplicate process id")
)
