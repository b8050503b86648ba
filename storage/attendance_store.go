package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carwash-backend/models"
	"carwash-backend/utils"
)

// AttendanceStore owns the attendance collection and derives the
// present-today employee set from the employee repository.
type AttendanceStore struct {
	kv        KV
	employees *EmployeeStore
}

func NewAttendanceStore(kv KV, employees *EmployeeStore) *AttendanceStore {
	return &AttendanceStore{kv: kv, employees: employees}
}

func (s *AttendanceStore) Load(ctx context.Context) []models.DailyAttendance {
	return loadCollection[models.DailyAttendance](ctx, s.kv, attendanceKey)
}

func (s *AttendanceStore) Save(ctx context.Context, records []models.DailyAttendance) {
	saveCollection(ctx, s.kv, attendanceKey, records)
}

// Mark records attendance for an employee on the current day. Any existing
// record for the same employee and day is removed first, so marking is
// last-write-wins and never leaves duplicates. A check-in time is stamped
// only when the employee is present.
func (s *AttendanceStore) Mark(ctx context.Context, employeeID string, isPresent bool, notes string) models.DailyAttendance {
	today := utils.Today()
	records := s.Load(ctx)

	filtered := records[:0]
	for _, r := range records {
		if !(r.EmployeeID == employeeID && r.Date == today) {
			filtered = append(filtered, r)
		}
	}

	record := models.DailyAttendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       today,
		IsPresent:  isPresent,
		Notes:      notes,
	}
	if isPresent {
		now := time.Now()
		record.CheckInTime = &now
	}

	filtered = append(filtered, record)
	s.Save(ctx, filtered)
	return record
}

// Today returns all attendance records for the current day.
func (s *AttendanceStore) Today(ctx context.Context) []models.DailyAttendance {
	today := utils.Today()
	var records []models.DailyAttendance
	for _, r := range s.Load(ctx) {
		if r.Date == today {
			records = append(records, r)
		}
	}
	return records
}

// PresentToday returns the employees eligible for new work: active and
// marked present on the current day. This is the sole gating rule for
// assignment eligibility.
func (s *AttendanceStore) PresentToday(ctx context.Context) []models.Employee {
	presentIDs := make(map[string]bool)
	for _, r := range s.Today(ctx) {
		if r.IsPresent {
			presentIDs[r.EmployeeID] = true
		}
	}

	var present []models.Employee
	for _, e := range s.employees.Active(ctx) {
		if presentIDs[e.ID] {
			present = append(present, e)
		}
	}
	return present
}
