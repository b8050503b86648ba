package storage

import (
	"context"
	"encoding/json"
	"log"
)

// Collection keys. Each key holds one JSON array; collections are loaded
// and replaced whole on every operation.
const (
	customersKey   = "carwash:customers"
	employeesKey   = "carwash:employees"
	attendanceKey  = "carwash:attendance"
	assignmentsKey = "carwash:assignments"
	carpetsKey     = "carwash:carpets"
)

// Stores bundles the per-entity repositories over a shared KV.
type Stores struct {
	Customers   *CustomerStore
	Employees   *EmployeeStore
	Attendance  *AttendanceStore
	Assignments *AssignmentStore
	Carpets     *CarpetStore
}

func NewStores(kv KV) *Stores {
	employees := NewEmployeeStore(kv)
	attendance := NewAttendanceStore(kv, employees)
	return &Stores{
		Customers:   NewCustomerStore(kv),
		Employees:   employees,
		Attendance:  attendance,
		Assignments: NewAssignmentStore(kv, attendance),
		Carpets:     NewCarpetStore(kv),
	}
}

// loadCollection reads and decodes one collection. Store or decode failures
// are logged and degrade to the empty collection.
func loadCollection[T any](ctx context.Context, kv KV, key string) []T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		log.Printf("Error loading %s: %v", key, err)
		return nil
	}
	if raw == "" {
		return nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("Error decoding %s: %v", key, err)
		return nil
	}
	return records
}

// saveCollection replaces one collection. Failures are logged and the write
// is dropped.
func saveCollection[T any](ctx context.Context, kv KV, key string, records []T) {
	raw, err := json.Marshal(records)
	if err != nil {
		log.Printf("Error encoding %s: %v", key, err)
		return
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		log.Printf("Error saving %s: %v", key, err)
	}
}
