package models

import "time"

type Employee struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	// NationalIDImage holds the scanned ID document as a data URI.
	NationalIDImage string    `json:"nationalIdImage"`
	CreatedAt       time.Time `json:"createdAt"`
	IsActive        bool      `json:"isActive"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
