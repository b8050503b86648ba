package storage

import (
	"context"
	"strings"

	"carwash-backend/models"
)

// EmployeeStore owns the employees collection.
type EmployeeStore struct {
	kv KV
}

func NewEmployeeStore(kv KV) *EmployeeStore {
	return &EmployeeStore{kv: kv}
}

func (s *EmployeeStore) Load(ctx context.Context) []models.Employee {
	return loadCollection[models.Employee](ctx, s.kv, employeesKey)
}

func (s *EmployeeStore) Save(ctx context.Context, employees []models.Employee) {
	saveCollection(ctx, s.kv, employeesKey, employees)
}

func (s *EmployeeStore) Add(ctx context.Context, employee models.Employee) {
	employees := s.Load(ctx)
	employees = append(employees, employee)
	s.Save(ctx, employees)
}

func (s *EmployeeStore) Update(ctx context.Context, employee models.Employee) bool {
	employees := s.Load(ctx)
	for i := range employees {
		if employees[i].ID == employee.ID {
			employees[i] = employee
			s.Save(ctx, employees)
			return true
		}
	}
	return false
}

func (s *EmployeeStore) Delete(ctx context.Context, id string) {
	employees := s.Load(ctx)
	filtered := employees[:0]
	for _, e := range employees {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	s.Save(ctx, filtered)
}

func (s *EmployeeStore) Find(ctx context.Context, id string) (models.Employee, bool) {
	for _, e := range s.Load(ctx) {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// Active returns employees with the active flag set.
func (s *EmployeeStore) Active(ctx context.Context) []models.Employee {
	var active []models.Employee
	for _, e := range s.Load(ctx) {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active
}

// Search matches names and email case-insensitively; phone and national ID
// are matched on the raw query.
func (s *EmployeeStore) Search(ctx context.Context, query string) []models.Employee {
	needle := strings.ToLower(query)

	var matches []models.Employee
	for _, e := range s.Load(ctx) {
		if strings.Contains(strings.ToLower(e.FirstName), needle) ||
			strings.Contains(strings.ToLower(e.LastName), needle) ||
			strings.Contains(strings.ToLower(e.Email), needle) ||
			strings.Contains(e.Phone, query) ||
			strings.Contains(e.NationalID, query) {
			matches = append(matches, e)
		}
	}
	return matches
}
