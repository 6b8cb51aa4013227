package models

import "time"

// Assignment statuses. Status is a plain field edit, there is no state
// machine around the transitions.
const (
	AssignmentStatusScheduled = "scheduled"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

type Assignment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	JobID          uint      `gorm:"not null" json:"job_id"`
	Job            Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CleanerID      uint      `gorm:"not null;uniqueIndex:idx_cleaner_slot" json:"cleaner_id"`
	Cleaner        Cleaner   `gorm:"foreignKey:CleanerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ScheduledStart time.Time `gorm:"not null;uniqueIndex:idx_cleaner_slot" json:"scheduled_start"`
	Status         string    `gorm:"type:varchar(15);not null;default:'scheduled'" json:"status"`
	Notes          *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
