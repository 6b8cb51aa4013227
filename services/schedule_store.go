package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/tidyrota/cleaning-app/models"
)

// AssignmentDetail is an assignment row joined with the cleaner and job
// attributes the listing and dashboard need.
type AssignmentDetail struct {
	ID                 uint      `json:"id"`
	JobID              uint      `json:"job_id"`
	CleanerID          uint      `json:"cleaner_id"`
	ScheduledStart     time.Time `json:"scheduled_start"`
	Status             string    `json:"status"`
	Notes              *string   `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	CleanerName        string    `json:"cleaner_name"`
	CleanerEmail       *string   `json:"cleaner_email,omitempty"`
	JobTitle           string    `json:"job_title"`
	JobLocation        *string   `json:"job_location,omitempty"`
	JobDurationMinutes int       `json:"job_duration_minutes"`
}

// ScheduleStore is the storage contract the scheduler and dashboard work
// against. Point lookups return (nil, nil) when the record does not exist.
type ScheduleStore interface {
	GetJob(id uint) (*models.Job, error)
	GetCleaner(id uint) (*models.Cleaner, error)
	ListAssignmentsForCleanerNear(cleanerID uint, at time.Time, window time.Duration) ([]models.Assignment, error)
	InsertAssignment(jobID, cleanerID uint, start time.Time, notes *string) (*models.Assignment, error)
	ListAssignmentsWithDetails() ([]AssignmentDetail, error)
	CountCleaners() (int64, error)
	CountJobs() (int64, error)
}

// GormScheduleStore implements ScheduleStore on top of gorm.
type GormScheduleStore struct {
	DB *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{DB: db}
}

func (s *GormScheduleStore) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (s *GormScheduleStore) GetCleaner(id uint) (*models.Cleaner, error) {
	var cleaner models.Cleaner
	if err := s.DB.First(&cleaner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cleaner, nil
}

// ListAssignmentsForCleanerNear returns the cleaner's assignments whose
// start falls inside [at-window, at+window], both ends inclusive, ordered
// by start ascending.
func (s *GormScheduleStore) ListAssignmentsForCleanerNear(cleanerID uint, at time.Time, window time.Duration) ([]models.Assignment, error) {
	at = at.UTC()
	var assignments []models.Assignment
	err := s.DB.
		Where("cleaner_id = ? AND scheduled_start >= ? AND scheduled_start <= ?",
			cleanerID, at.Add(-window), at.Add(window)).
		Order("scheduled_start ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// InsertAssignment creates a new scheduled assignment. Start instants are
// normalized to UTC so the (cleaner_id, scheduled_start) unique index
// compares equal instants as equal rows.
func (s *GormScheduleStore) InsertAssignment(jobID, cleanerID uint, start time.Time, notes *string) (*models.Assignment, error) {
	assignment := models.Assignment{
		JobID:          jobID,
		CleanerID:      cleanerID,
		ScheduledStart: start.UTC(),
		Status:         models.AssignmentStatusScheduled,
		Notes:          notes,
	}
	if err := s.DB.Create(&assignment).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: cleaner %d at %s", ErrDuplicateKey, cleanerID, start.UTC().Format(time.RFC3339))
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *GormScheduleStore) ListAssignmentsWithDetails() ([]AssignmentDetail, error) {
	var details []AssignmentDetail
	err := s.DB.
		Table("assignments").
		Select(`assignments.id, assignments.job_id, assignments.cleaner_id,
			assignments.scheduled_start, assignments.status, assignments.notes,
			assignments.created_at, assignments.updated_at,
			cleaners.name AS cleaner_name, cleaners.email AS cleaner_email,
			jobs.title AS job_title, jobs.location AS job_location,
			jobs.duration_minutes AS job_duration_minutes`).
		Joins("INNER JOIN cleaners ON cleaners.id = assignments.cleaner_id").
		Joins("INNER JOIN jobs ON jobs.id = assignments.job_id").
		Order("assignments.scheduled_start ASC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *GormScheduleStore) CountCleaners() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Cleaner{}).Count(&count).Error
	return count, err
}

func (s *GormScheduleStore) CountJobs() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Job{}).Count(&count).Error
	return count, err
}

// isDuplicateKey reports whether err is a unique constraint violation.
// MySQL raises error 1062, sqlite (used by the tests) reports a UNIQUE
// constraint message.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
