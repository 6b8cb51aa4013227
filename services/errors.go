package services

import "errors"

// Scheduling errors surfaced to the user. Controllers map these to HTTP
// status codes; each rejection path has its own message.
var (
	ErrInvalidStartTime = errors.New("please provide a valid assignment date and time")
	ErrStartInPast      = errors.New("assignments cannot be scheduled in the past")
	ErrJobNotFound      = errors.New("selected job was not found")
	ErrCleanerNotFound  = errors.New("selected cleaner was not found")

	// ErrNearbyAssignment is the soft conflict found by the pre-insert
	// window check.
	ErrNearbyAssignment = errors.New("this cleaner already has an assignment near that time")

	// ErrSlotTaken is the hard conflict: the unique index on
	// (cleaner_id, scheduled_start) rejected the insert because another
	// request won the race for the same slot.
	ErrSlotTaken = errors.New("this cleaner is already booked at that exact time")
)

// ErrDuplicateKey is returned by the store when the slot unique index
// rejects an insert. The scheduler translates it to ErrSlotTaken.
var ErrDuplicateKey = errors.New("assignment slot already exists")
