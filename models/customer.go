package models

import "time"

// Vehicle is embedded in Customer; one vehicle per customer record.
type Vehicle struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	Color        string `json:"color,omitempty"`
}

type Customer struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Vehicle            Vehicle   `json:"vehicle"`
	Services           []string  `json:"services"`
	AssignedEmployeeID string    `json:"assignedEmployeeId,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	LastVisit          time.Time `json:"lastVisit"`
	TotalVisits        int       `json:"totalVisits"`
	PreferredServices  []string  `json:"preferredServices,omitempty"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
