package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tidyrota/cleaning-app/models"
	"github.com/tidyrota/cleaning-app/services"
	"github.com/tidyrota/cleaning-app/utils"
)

func newTestScheduler(store services.ScheduleStore, now time.Time) *services.SchedulerService {
	utils.InitLogger()
	svc := services.NewSchedulerService(store, services.DefaultConflictWindow)
	svc.Now = func() time.Time { return now }
	return svc
}

func seedStore(store *fakeStore, durationMinutes int) {
	store.jobs[1] = &models.Job{ID: 1, Title: "Office deep clean", DurationMinutes: durationMinutes}
	store.cleaners[1] = &models.Cleaner{ID: 1, Name: "Ana"}
}

func TestScheduleAssignmentComputesOccupiedEnd(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 90)
	now := time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	result, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID:     1,
		CleanerID: 1,
		StartISO:  "2024-01-01T09:00:00Z",
		Notes:     "bring keys",
	})
	assert.NoError(t, err)
	assert.NotNil(t, result)

	expectedEnd := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	assert.True(t, result.OccupiedEnd.Equal(expectedEnd), "occupied end should be start + duration")
	assert.Equal(t, "Office deep clean", result.Job.Title)
	assert.Equal(t, "Ana", result.Cleaner.Name)
	assert.Equal(t, models.AssignmentStatusScheduled, result.Assignment.Status)
	assert.NotNil(t, result.Assignment.Notes)
	assert.Len(t, store.assignments, 1)
}

func TestScheduleAssignmentInvalidStart(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	svc := newTestScheduler(store, time.Now())

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID:     1,
		CleanerID: 1,
		StartISO:  "not-a-date",
	})
	assert.ErrorIs(t, err, services.ErrInvalidStartTime)
	assert.Empty(t, store.assignments)
}

func TestScheduleAssignmentRejectsPastStart(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	// Yesterday, with a perfectly valid job and cleaner
	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID:     1,
		CleanerID: 1,
		StartISO:  "2024-05-31T09:00:00Z",
	})
	assert.ErrorIs(t, err, services.ErrStartInPast)
	assert.Empty(t, store.assignments)
}

func TestScheduleAssignmentRejectsStartEqualToNow(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID:     1,
		CleanerID: 1,
		StartISO:  "2024-06-01T09:00:00Z",
	})
	assert.ErrorIs(t, err, services.ErrStartInPast)
}

func TestScheduleAssignmentJobNotFound(t *testing.T) {
	store := newFakeStore()
	store.cleaners[1] = &models.Cleaner{ID: 1, Name: "Ana"}
	svc := newTestScheduler(store, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID:     42,
		CleanerID: 1,
		StartISO:  "2024-02-01T09:00:00Z",
	})
	assert.ErrorIs(t, err, services.ErrJobNotFound)
}

func TestScheduleAssignmentCleanerNotFound(t *testing.T) {
	store := newFakeStore()
	store.jobs[1] = &models.Job{ID: 1, Title: "Windows", DurationMinutes: 45}
	svc := newTestScheduler(store, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID:     1,
		CleanerID: 42,
		StartISO:  "2024-02-01T09:00:00Z",
	})
	assert.ErrorIs(t, err, services.ErrCleanerNotFound)
}

func TestScheduleAssignmentNearbyConflict(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:00:00Z",
	})
	assert.NoError(t, err)

	// 15 minutes after the existing booking: inside the window
	_, err = svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:15:00Z",
	})
	assert.ErrorIs(t, err, services.ErrNearbyAssignment)
	assert.Len(t, store.assignments, 1)

	// A full hour later is fine
	_, err = svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T11:00:00Z",
	})
	assert.NoError(t, err)
	assert.Len(t, store.assignments, 2)
}

func TestScheduleAssignmentWindowBoundaryInclusive(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:00:00Z",
	})
	assert.NoError(t, err)

	// Exactly 30 minutes away: still a conflict
	_, err = svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:30:00Z",
	})
	assert.ErrorIs(t, err, services.ErrNearbyAssignment)

	// 30 minutes and one second: outside the window
	_, err = svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:30:01Z",
	})
	assert.NoError(t, err)
}

func TestScheduleAssignmentConflictsForDifferentJobToo(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	store.jobs[2] = &models.Job{ID: 2, Title: "Quick mop", DurationMinutes: 15}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:00:00Z",
	})
	assert.NoError(t, err)

	// The window check only looks at start proximity, not the other
	// job's duration.
	_, err = svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 2, CleanerID: 1, StartISO: "2024-01-02T10:15:00Z",
	})
	assert.ErrorIs(t, err, services.ErrNearbyAssignment)
}

func TestScheduleAssignmentRepeatIsRejected(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	input := services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:00:00Z",
	}
	_, err := svc.ScheduleAssignment(input)
	assert.NoError(t, err)

	_, err = svc.ScheduleAssignment(input)
	assert.ErrorIs(t, err, services.ErrNearbyAssignment)
	assert.Len(t, store.assignments, 1)
}

func TestScheduleAssignmentLostRaceBecomesSlotTaken(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	store.insertErr = services.ErrDuplicateKey
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	_, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2024-01-02T10:00:00Z",
	})
	assert.ErrorIs(t, err, services.ErrSlotTaken)
	assert.Empty(t, store.assignments)
}

func TestScheduleAssignmentAcceptsLocalLayouts(t *testing.T) {
	store := newFakeStore()
	seedStore(store, 60)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, now)

	result, err := svc.ScheduleAssignment(services.ScheduleInput{
		JobID: 1, CleanerID: 1, StartISO: "2099-03-15T14:30",
	})
	assert.NoError(t, err)

	expected := time.Date(2099, 3, 15, 14, 30, 0, 0, time.Local).Add(60 * time.Minute)
	assert.True(t, result.OccupiedEnd.Equal(expected))
}
