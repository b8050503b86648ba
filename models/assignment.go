package models

import "time"

// Work assignment statuses.
const (
	AssignmentInProgress = "in-progress"
	AssignmentCompleted  = "completed"
	AssignmentCancelled  = "cancelled"
)

// WorkAssignment links an employee to a customer for a single visit.
type WorkAssignment struct {
	ID                  string     `json:"id"`
	EmployeeID          string     `json:"employeeId"`
	CustomerID          string     `json:"customerId"`
	VehicleLicensePlate string     `json:"vehicleLicensePlate"`
	Services            []string   `json:"services"`
	StartTime           time.Time  `json:"startTime"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	Status              string     `json:"status"`
	Notes               string     `json:"notes,omitempty"`
}

// EmployeePerformance is a computed daily rollup, never persisted.
type EmployeePerformance struct {
	EmployeeID           string  `json:"employeeId"`
	Date                 string  `json:"date"` // YYYY-MM-DD
	TotalAssignments     int     `json:"totalAssignments"`
	CompletedAssignments int     `json:"completedAssignments"`
	TotalRevenue         float64 `json:"totalRevenue"`
	AverageServiceTime   float64 `json:"averageServiceTime"` // minutes
}
