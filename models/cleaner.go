package models

import "time"

type Cleaner struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone      *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	HourlyRate *float64  `gorm:"type:decimal(10,2)" json:"hourly_rate,omitempty"`
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
