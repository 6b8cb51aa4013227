package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/tidyrota/cleaning-app/hub"
	"github.com/tidyrota/cleaning-app/models"
	"github.com/tidyrota/cleaning-app/utils"
)

// ScheduleMonitor polls the assignments table and tells connected
// dashboard clients to refresh when something changed. Works on MySQL and
// sqlite alike since it only watches count and max(updated_at).
type ScheduleMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration

	lastCount   int64
	lastUpdated time.Time
	primed      bool
}

func NewScheduleMonitor(db *gorm.DB) *ScheduleMonitor {
	return &ScheduleMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (sm *ScheduleMonitor) Start() {
	go func() {
		ticker := time.NewTicker(sm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sm.checkChanges()
			case <-sm.StopChan:
				return
			}
		}
	}()
}

func (sm *ScheduleMonitor) Stop() {
	close(sm.StopChan)
}

func (sm *ScheduleMonitor) checkChanges() {
	var count int64
	if err := sm.DB.Model(&models.Assignment{}).Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("schedule monitor count failed: %v", err)
		return
	}

	var latest struct {
		UpdatedAt *time.Time
	}
	if err := sm.DB.Model(&models.Assignment{}).
		Select("MAX(updated_at) AS updated_at").
		Scan(&latest).Error; err != nil {
		utils.ErrorLogger.Printf("schedule monitor scan failed: %v", err)
		return
	}

	var updated time.Time
	if latest.UpdatedAt != nil {
		updated = *latest.UpdatedAt
	}

	// First pass only records the baseline.
	if !sm.primed {
		sm.lastCount = count
		sm.lastUpdated = updated
		sm.primed = true
		return
	}

	if count != sm.lastCount || updated.After(sm.lastUpdated) {
		sm.lastCount = count
		sm.lastUpdated = updated
		hub.BroadcastDashboardUpdate(map[string]interface{}{
			"assignment_count": count,
			"changed_at":       time.Now(),
		})
	}
}
