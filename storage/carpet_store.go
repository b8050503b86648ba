package storage

import (
	"context"
	"strings"
	"time"

	"carwash-backend/models"
	"carwash-backend/utils"
)

// CarpetStore owns the carpet-jobs collection.
type CarpetStore struct {
	kv KV
}

func NewCarpetStore(kv KV) *CarpetStore {
	return &CarpetStore{kv: kv}
}

// CarpetStats is the dashboard rollup over every carpet job. The
// in-progress bucket folds cleaning and drying in with in-progress proper;
// revenue counts delivered jobs only.
type CarpetStats struct {
	TotalCarpets      int     `json:"totalCarpets"`
	TodayCarpets      int     `json:"todayCarpets"`
	PendingCarpets    int     `json:"pendingCarpets"`
	InProgressCarpets int     `json:"inProgressCarpets"`
	CompletedCarpets  int     `json:"completedCarpets"`
	DeliveredCarpets  int     `json:"deliveredCarpets"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TodayRevenue      float64 `json:"todayRevenue"`
}

func (s *CarpetStore) Load(ctx context.Context) []models.Carpet {
	return loadCollection[models.Carpet](ctx, s.kv, carpetsKey)
}

func (s *CarpetStore) Save(ctx context.Context, carpets []models.Carpet) {
	saveCollection(ctx, s.kv, carpetsKey, carpets)
}

func (s *CarpetStore) Add(ctx context.Context, carpet models.Carpet) {
	carpets := s.Load(ctx)
	carpets = append(carpets, carpet)
	s.Save(ctx, carpets)
}

// Update replaces the record and stamps UpdatedAt. Pricing is carried over
// as given; it is never recomputed here.
func (s *CarpetStore) Update(ctx context.Context, carpet models.Carpet) bool {
	carpets := s.Load(ctx)
	for i := range carpets {
		if carpets[i].ID == carpet.ID {
			carpet.UpdatedAt = time.Now()
			carpets[i] = carpet
			s.Save(ctx, carpets)
			return true
		}
	}
	return false
}

func (s *CarpetStore) Delete(ctx context.Context, id string) {
	carpets := s.Load(ctx)
	filtered := carpets[:0]
	for _, c := range carpets {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.Save(ctx, filtered)
}

func (s *CarpetStore) Find(ctx context.Context, id string) (models.Carpet, bool) {
	for _, c := range s.Load(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Carpet{}, false
}

// UpdateStatus sets any status on the job; transitions are not validated.
// Entering completed stamps the actual completion time, entering delivered
// stamps the pickup time. Every call stamps UpdatedAt.
func (s *CarpetStore) UpdateStatus(ctx context.Context, id, status string) bool {
	carpets := s.Load(ctx)
	for i := range carpets {
		if carpets[i].ID != id {
			continue
		}
		now := time.Now()
		carpets[i].Status = status
		carpets[i].UpdatedAt = now

		switch status {
		case models.CarpetCompleted:
			carpets[i].Timeline.ActualCompletion = &now
		case models.CarpetDelivered:
			carpets[i].Timeline.Pickup = &now
		}

		s.Save(ctx, carpets)
		return true
	}
	return false
}

func (s *CarpetStore) ByStatus(ctx context.Context, status string) []models.Carpet {
	var matches []models.Carpet
	for _, c := range s.Load(ctx) {
		if c.Status == status {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *CarpetStore) ByCustomer(ctx context.Context, customerID string) []models.Carpet {
	var matches []models.Carpet
	for _, c := range s.Load(ctx) {
		if c.CustomerID == customerID {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *CarpetStore) ByEmployee(ctx context.Context, employeeID string) []models.Carpet {
	var matches []models.Carpet
	for _, c := range s.Load(ctx) {
		if c.EmployeeID == employeeID {
			matches = append(matches, c)
		}
	}
	return matches
}

// Workload returns an employee's jobs that still need work, i.e. not yet
// completed or delivered.
func (s *CarpetStore) Workload(ctx context.Context, employeeID string) []models.Carpet {
	var matches []models.Carpet
	for _, c := range s.Load(ctx) {
		if c.EmployeeID == employeeID && models.IsActiveStatus(c.Status) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Search matches a lowercased substring over the stored status, type,
// material and color fields. Service selections are not searched.
func (s *CarpetStore) Search(ctx context.Context, query string) []models.Carpet {
	needle := strings.ToLower(query)

	var matches []models.Carpet
	for _, c := range s.Load(ctx) {
		if strings.Contains(strings.ToLower(c.CarpetDetails.Material), needle) ||
			strings.Contains(strings.ToLower(c.CarpetDetails.Color), needle) ||
			strings.Contains(strings.ToLower(c.CarpetDetails.Type), needle) ||
			strings.Contains(strings.ToLower(c.Status), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Today returns jobs dropped off on the current day.
func (s *CarpetStore) Today(ctx context.Context) []models.Carpet {
	today := utils.Today()
	var matches []models.Carpet
	for _, c := range s.Load(ctx) {
		if utils.DayKey(c.Timeline.DropOff) == today {
			matches = append(matches, c)
		}
	}
	return matches
}

// Stats aggregates status buckets and revenue across all jobs. A job in
// completed contributes nothing to revenue until it is delivered.
func (s *CarpetStore) Stats(ctx context.Context) CarpetStats {
	carpets := s.Load(ctx)
	today := utils.Today()

	var stats CarpetStats
	stats.TotalCarpets = len(carpets)

	for _, c := range carpets {
		droppedToday := utils.DayKey(c.Timeline.DropOff) == today
		if droppedToday {
			stats.TodayCarpets++
		}

		switch c.Status {
		case models.CarpetPending:
			stats.PendingCarpets++
		case models.CarpetInProgress, models.CarpetCleaning, models.CarpetDrying:
			stats.InProgressCarpets++
		case models.CarpetCompleted:
			stats.CompletedCarpets++
		case models.CarpetDelivered:
			stats.DeliveredCarpets++
		}

		if c.Status == models.CarpetDelivered {
			stats.TotalRevenue += c.Pricing.TotalPrice
			if droppedToday {
				stats.TodayRevenue += c.Pricing.TotalPrice
			}
		}
	}
	return stats
}
