package models

import "time"

type Job struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	ClientName      *string   `gorm:"type:varchar(255)" json:"client_name,omitempty"`
	Location        *string   `gorm:"type:varchar(255)" json:"location,omitempty"`
	Description     *string   `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Rate            *float64  `gorm:"type:decimal(10,2)" json:"rate,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
