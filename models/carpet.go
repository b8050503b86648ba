package models

import "time"

// Carpet job statuses, in the intended forward order. Transitions are not
// validated; any status may follow any other.
const (
	CarpetPending    = "pending"
	CarpetInProgress = "in-progress"
	CarpetCleaning   = "cleaning"
	CarpetDrying     = "drying"
	CarpetCompleted  = "completed"
	CarpetDelivered  = "delivered"
)

type CarpetSize struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Unit   string  `json:"unit"` // feet or meters
}

type CarpetDetails struct {
	Type      string     `json:"type"` // area, runner, oriental, berber, shag, other
	Size      CarpetSize `json:"size"`
	Material  string     `json:"material"`
	Color     string     `json:"color"`
	Condition string     `json:"condition"` // excellent, good, fair, poor
	Stains    []string   `json:"stains,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

type CarpetServices struct {
	Cleaning   string `json:"cleaning"`   // basic, deep, stain-removal, sanitization
	Drying     string `json:"drying"`     // air-dry, dehumidifier, fan-assisted
	Protection string `json:"protection"` // stain-guard, anti-microbial, none
}

type CarpetTimeline struct {
	DropOff             time.Time  `json:"dropOff"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion,omitempty"`
	ActualCompletion    *time.Time `json:"actualCompletion,omitempty"`
	Pickup              *time.Time `json:"pickup,omitempty"`
}

type CarpetPricing struct {
	BasePrice          float64 `json:"basePrice"`
	AdditionalServices float64 `json:"additionalServices"`
	TotalPrice         float64 `json:"totalPrice"`
	Deposit            float64 `json:"deposit"`
	Balance            float64 `json:"balance"`
}

type Carpet struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customerId"`
	EmployeeID    string         `json:"employeeId"`
	CarpetDetails CarpetDetails  `json:"carpetDetails"`
	Services      CarpetServices `json:"services"`
	Status        string         `json:"status"`
	Timeline      CarpetTimeline `json:"timeline"`
	Pricing       CarpetPricing  `json:"pricing"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// IsActiveStatus reports whether the job still needs work, i.e. it has not
// reached completed or delivered (and counts toward employee workload).
func IsActiveStatus(status string) bool {
	switch status {
	case CarpetPending, CarpetInProgress, CarpetCleaning, CarpetDrying:
		return true
	}
	return false
}
