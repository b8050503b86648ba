package storage

import (
	"context"
	"strings"

	"carwash-backend/models"
)

// CustomerStore owns the customers collection.
type CustomerStore struct {
	kv KV
}

func NewCustomerStore(kv KV) *CustomerStore {
	return &CustomerStore{kv: kv}
}

func (s *CustomerStore) Load(ctx context.Context) []models.Customer {
	return loadCollection[models.Customer](ctx, s.kv, customersKey)
}

func (s *CustomerStore) Save(ctx context.Context, customers []models.Customer) {
	saveCollection(ctx, s.kv, customersKey, customers)
}

func (s *CustomerStore) Add(ctx context.Context, customer models.Customer) {
	customers := s.Load(ctx)
	customers = append(customers, customer)
	s.Save(ctx, customers)
}

// Update replaces the record with the same ID. Unknown IDs are a no-op.
func (s *CustomerStore) Update(ctx context.Context, customer models.Customer) bool {
	customers := s.Load(ctx)
	for i := range customers {
		if customers[i].ID == customer.ID {
			customers[i] = customer
			s.Save(ctx, customers)
			return true
		}
	}
	return false
}

func (s *CustomerStore) Delete(ctx context.Context, id string) {
	customers := s.Load(ctx)
	filtered := customers[:0]
	for _, c := range customers {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.Save(ctx, filtered)
}

func (s *CustomerStore) Find(ctx context.Context, id string) (models.Customer, bool) {
	for _, c := range s.Load(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Search matches a case-insensitive substring over names, email, plate,
// make and model. Phone is matched on the raw query, so a query with
// letters never matches a phone number.
func (s *CustomerStore) Search(ctx context.Context, query string) []models.Customer {
	needle := strings.ToLower(query)

	var matches []models.Customer
	for _, c := range s.Load(ctx) {
		if strings.Contains(strings.ToLower(c.FirstName), needle) ||
			strings.Contains(strings.ToLower(c.LastName), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(c.Phone, query) ||
			strings.Contains(strings.ToLower(c.Vehicle.LicensePlate), needle) ||
			strings.Contains(strings.ToLower(c.Vehicle.Make), needle) ||
			strings.Contains(strings.ToLower(c.Vehicle.Model), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}
