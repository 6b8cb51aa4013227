package services

import (
	"errors"
	"time"

	"github.com/tidyrota/cleaning-app/models"
	"github.com/tidyrota/cleaning-app/utils"
)

// Accepted layouts for the start instant. The handler combines the form's
// date and time fields into one of these before calling the scheduler.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type ScheduleInput struct {
	JobID     uint
	CleanerID uint
	StartISO  string
	Notes     string
}

// ScheduleResult is the enriched outcome of a successful booking.
// OccupiedEnd is derived from the job duration at schedule time and is
// never persisted.
type ScheduleResult struct {
	Assignment  *models.Assignment `json:"assignment"`
	Job         *models.Job        `json:"job"`
	Cleaner     *models.Cleaner    `json:"cleaner"`
	OccupiedEnd time.Time          `json:"occupied_end"`
}

// SchedulerService menangani pembuatan assignment baru. All validation
// runs before the insert; the unique index on (cleaner_id, scheduled_start)
// catches the race the pre-check cannot close.
type SchedulerService struct {
	store   ScheduleStore
	checker *ConflictChecker

	// Now is the clock used for the past-date check; tests override it.
	Now func() time.Time
}

func NewSchedulerService(store ScheduleStore, window time.Duration) *SchedulerService {
	return &SchedulerService{
		store:   store,
		checker: NewConflictChecker(store, window),
		Now:     time.Now,
	}
}

// ScheduleAssignment validates and books one assignment. Failure paths, in
// order: invalid start, start in the past, job missing, cleaner missing,
// soft conflict from the window check, hard conflict from the unique index.
// Exactly one row is written on success, none on any failure.
func (s *SchedulerService) ScheduleAssignment(input ScheduleInput) (*ScheduleResult, error) {
	start, err := parseStartInstant(input.StartISO)
	if err != nil {
		return nil, ErrInvalidStartTime
	}

	if !start.After(s.Now()) {
		return nil, ErrStartInPast
	}

	job, err := s.store.GetJob(input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	cleaner, err := s.store.GetCleaner(input.CleanerID)
	if err != nil {
		return nil, err
	}
	if cleaner == nil {
		return nil, ErrCleanerNotFound
	}

	conflict, err := s.checker.HasConflict(input.CleanerID, start)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrNearbyAssignment
	}

	var notes *string
	if trimmed := input.Notes; trimmed != "" {
		notes = &trimmed
	}

	assignment, err := s.store.InsertAssignment(input.JobID, input.CleanerID, start, notes)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			// Lost the race against a concurrent request for the same
			// slot. Expected, not a programming error.
			utils.InfoLogger.Printf("schedule race lost: cleaner=%d start=%s", input.CleanerID, start.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &ScheduleResult{
		Assignment:  assignment,
		Job:         job,
		Cleaner:     cleaner,
		OccupiedEnd: assignment.ScheduledStart.Add(time.Duration(job.DurationMinutes) * time.Minute),
	}, nil
}

func parseStartInstant(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
