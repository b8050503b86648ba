package models

import "time"

// DailyAttendance records presence for one employee on one calendar day.
// At most one record per (employee, date) pair exists; marking attendance
// again on the same day replaces the earlier record.
type DailyAttendance struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Date        string     `json:"date"` // YYYY-MM-DD
	IsPresent   bool       `json:"isPresent"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
	// CheckOutTime has no producer yet; kept so stored records round-trip.
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}
