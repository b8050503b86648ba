package storage

import (
	"context"

	"carwash-backend/models"
	"carwash-backend/utils"
)

// AssignmentStore owns the work-assignments collection and computes the
// daily performance rollups.
type AssignmentStore struct {
	kv         KV
	attendance *AttendanceStore
}

func NewAssignmentStore(kv KV, attendance *AttendanceStore) *AssignmentStore {
	return &AssignmentStore{kv: kv, attendance: attendance}
}

func (s *AssignmentStore) Load(ctx context.Context) []models.WorkAssignment {
	return loadCollection[models.WorkAssignment](ctx, s.kv, assignmentsKey)
}

func (s *AssignmentStore) Save(ctx context.Context, assignments []models.WorkAssignment) {
	saveCollection(ctx, s.kv, assignmentsKey, assignments)
}

func (s *AssignmentStore) Add(ctx context.Context, assignment models.WorkAssignment) {
	assignments := s.Load(ctx)
	assignments = append(assignments, assignment)
	s.Save(ctx, assignments)
}

func (s *AssignmentStore) Update(ctx context.Context, assignment models.WorkAssignment) bool {
	assignments := s.Load(ctx)
	for i := range assignments {
		if assignments[i].ID == assignment.ID {
			assignments[i] = assignment
			s.Save(ctx, assignments)
			return true
		}
	}
	return false
}

func (s *AssignmentStore) Find(ctx context.Context, id string) (models.WorkAssignment, bool) {
	for _, a := range s.Load(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return models.WorkAssignment{}, false
}

// Today returns assignments whose start time falls on the current day.
func (s *AssignmentStore) Today(ctx context.Context) []models.WorkAssignment {
	today := utils.Today()
	var assignments []models.WorkAssignment
	for _, a := range s.Load(ctx) {
		if utils.DayKey(a.StartTime) == today {
			assignments = append(assignments, a)
		}
	}
	return assignments
}

// ForEmployee returns one employee's assignments on the given day bucket;
// an empty date means today.
func (s *AssignmentStore) ForEmployee(ctx context.Context, employeeID, date string) []models.WorkAssignment {
	if date == "" {
		date = utils.Today()
	}
	var assignments []models.WorkAssignment
	for _, a := range s.Load(ctx) {
		if a.EmployeeID == employeeID && utils.DayKey(a.StartTime) == date {
			assignments = append(assignments, a)
		}
	}
	return assignments
}

// DailyPerformance rolls one employee's assignments on the target date into
// counts and an average service time in minutes. The duration sum only
// accrues for completed assignments with a recorded end time, but the
// average divides by the completed count regardless, mirroring the
// established rollup. Revenue is not derived from job pricing and stays 0.
func (s *AssignmentStore) DailyPerformance(ctx context.Context, employeeID, date string) models.EmployeePerformance {
	if date == "" {
		date = utils.Today()
	}
	assignments := s.ForEmployee(ctx, employeeID, date)

	var completed []models.WorkAssignment
	for _, a := range assignments {
		if a.Status == models.AssignmentCompleted {
			completed = append(completed, a)
		}
	}

	var totalServiceTime float64
	for _, a := range completed {
		if a.EndTime != nil {
			totalServiceTime += a.EndTime.Sub(a.StartTime).Minutes()
		}
	}

	var averageServiceTime float64
	if len(completed) > 0 {
		averageServiceTime = totalServiceTime / float64(len(completed))
	}

	return models.EmployeePerformance{
		EmployeeID:           employeeID,
		Date:                 date,
		TotalAssignments:     len(assignments),
		CompletedAssignments: len(completed),
		TotalRevenue:         0,
		AverageServiceTime:   averageServiceTime,
	}
}

// DailyReport maps DailyPerformance over the employees present today.
// Note the gate is today's attendance even when reporting on a past date,
// so historical reports omit employees absent on the reporting day.
func (s *AssignmentStore) DailyReport(ctx context.Context, date string) []models.EmployeePerformance {
	if date == "" {
		date = utils.Today()
	}

	var report []models.EmployeePerformance
	for _, e := range s.attendance.PresentToday(ctx) {
		report = append(report, s.DailyPerformance(ctx, e.ID, date))
	}
	return report
}
