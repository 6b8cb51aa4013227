package services_test

import (
	"time"

	"github.com/tidyrota/cleaning-app/models"
	"github.com/tidyrota/cleaning-app/services"
)

// fakeStore is an in-memory ScheduleStore for exercising the scheduler and
// dashboard without a database.
type fakeStore struct {
	jobs     map[uint]*models.Job
	cleaners map[uint]*models.Cleaner
	details  []services.AssignmentDetail

	assignments []models.Assignment
	nextID      uint

	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:     make(map[uint]*models.Job),
		cleaners: make(map[uint]*models.Cleaner),
	}
}

func (f *fakeStore) GetJob(id uint) (*models.Job, error) {
	return f.jobs[id], nil
}

func (f *fakeStore) GetCleaner(id uint) (*models.Cleaner, error) {
	return f.cleaners[id], nil
}

func (f *fakeStore) ListAssignmentsForCleanerNear(cleanerID uint, at time.Time, window time.Duration) ([]models.Assignment, error) {
	lower := at.Add(-window)
	upper := at.Add(window)
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.CleanerID != cleanerID {
			continue
		}
		if a.ScheduledStart.Before(lower) || a.ScheduledStart.After(upper) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) InsertAssignment(jobID, cleanerID uint, start time.Time, notes *string) (*models.Assignment, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.nextID++
	assignment := models.Assignment{
		ID:             f.nextID,
		JobID:          jobID,
		CleanerID:      cleanerID,
		ScheduledStart: start.UTC(),
		Status:         models.AssignmentStatusScheduled,
		Notes:          notes,
	}
	f.assignments = append(f.assignments, assignment)
	return &assignment, nil
}

func (f *fakeStore) ListAssignmentsWithDetails() ([]services.AssignmentDetail, error) {
	return f.details, nil
}

func (f *fakeStore) CountCleaners() (int64, error) {
	return int64(len(f.cleaners)), nil
}

func (f *fakeStore) CountJobs() (int64, error) {
	return int64(len(f.jobs)), nil
}
