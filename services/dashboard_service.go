package services

import (
	"sort"
	"sync"
	"time"
)

// UpcomingLimit is how many upcoming assignments the dashboard shows.
const UpcomingLimit = 5

type DashboardStats struct {
	TotalCleaners        int64 `json:"total_cleaners"`
	TotalJobs            int64 `json:"total_jobs"`
	ScheduledAssignments int   `json:"scheduled_assignments"`
}

type DashboardSummary struct {
	Stats               DashboardStats     `json:"stats"`
	UpcomingAssignments []AssignmentDetail `json:"upcoming_assignments"`
}

// DashboardService derives the "what's next" view. Pure read side: every
// call recomputes from current store state, nothing is cached.
type DashboardService struct {
	store ScheduleStore

	Now func() time.Time
}

func NewDashboardService(store ScheduleStore) *DashboardService {
	return &DashboardService{store: store, Now: time.Now}
}

// GetSummary fetches the enriched assignment listing plus cleaner and job
// counts. The three reads are independent, so they run concurrently.
func (ds *DashboardService) GetSummary() (*DashboardSummary, error) {
	var (
		details      []AssignmentDetail
		cleanerCount int64
		jobCount     int64

		detailsErr  error
		cleanersErr error
		jobsErr     error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		details, detailsErr = ds.store.ListAssignmentsWithDetails()
	}()
	go func() {
		defer wg.Done()
		cleanerCount, cleanersErr = ds.store.CountCleaners()
	}()
	go func() {
		defer wg.Done()
		jobCount, jobsErr = ds.store.CountJobs()
	}()
	wg.Wait()

	for _, err := range []error{detailsErr, cleanersErr, jobsErr} {
		if err != nil {
			return nil, err
		}
	}

	now := ds.Now()
	upcoming := make([]AssignmentDetail, 0, UpcomingLimit)
	for _, detail := range details {
		if detail.ScheduledStart.After(now) {
			upcoming = append(upcoming, detail)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledStart.Before(upcoming[j].ScheduledStart)
	})
	if len(upcoming) > UpcomingLimit {
		upcoming = upcoming[:UpcomingLimit]
	}

	return &DashboardSummary{
		Stats: DashboardStats{
			TotalCleaners:        cleanerCount,
			TotalJobs:            jobCount,
			ScheduledAssignments: len(details),
		},
		UpcomingAssignments: upcoming,
	}, nil
}
