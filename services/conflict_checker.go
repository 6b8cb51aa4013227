package services

import "time"

// DefaultConflictWindow is the buffer around a candidate start inside
// which any existing booking for the same cleaner counts as a conflict.
const DefaultConflictWindow = 30 * time.Minute

// ConflictChecker blocks bookings whose start is too close to an existing
// one for the same cleaner. It compares start-time proximity only; it does
// not look at how long the other assignment's job runs.
type ConflictChecker struct {
	store  ScheduleStore
	window time.Duration
}

func NewConflictChecker(store ScheduleStore, window time.Duration) *ConflictChecker {
	if window <= 0 {
		window = DefaultConflictWindow
	}
	return &ConflictChecker{store: store, window: window}
}

func (cc *ConflictChecker) Window() time.Duration {
	return cc.window
}

// HasConflict reports whether the cleaner already has an assignment whose
// start falls within the window of the candidate start (inclusive bounds).
func (cc *ConflictChecker) HasConflict(cleanerID uint, start time.Time) (bool, error) {
	nearby, err := cc.store.ListAssignmentsForCleanerNear(cleanerID, start, cc.window)
	if err != nil {
		return false, err
	}
	return len(nearby) > 0, nil
}
