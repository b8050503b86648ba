package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeStore_ActiveFilter(t *testing.T) {
	ctx := context.Background()
	store := NewEmployeeStore(NewMemoryKV())

	active := newTestEmployee("Ada", true)
	inactive := newTestEmployee("Ben", false)
	store.Add(ctx, active)
	store.Add(ctx, inactive)

	result := store.Active(ctx)
	require.Len(t, result, 1)
	assert.Equal(t, active.ID, result[0].ID)
}

func TestEmployeeStore_SearchNationalIDIsRawContainment(t *testing.T) {
	ctx := context.Background()
	store := NewEmployeeStore(NewMemoryKV())

	employee := newTestEmployee("Ada", true)
	employee.NationalID = "AB-998877"
	store.Add(ctx, employee)

	assert.Len(t, store.Search(ctx, "998877"), 1)
	assert.Len(t, store.Search(ctx, "AB-99"), 1)
	// National ID matching is case-sensitive by construction.
	assert.Empty(t, store.Search(ctx, "ab-99"))
}

func TestEmployeeStore_RoundTripPreservesTimestamps(t *testing.T) {
	ctx := context.Background()
	store := NewEmployeeStore(NewMemoryKV())

	employee := newTestEmployee("Ada", true)
	store.Add(ctx, employee)

	loaded, ok := store.Find(ctx, employee.ID)
	require.True(t, ok)
	assert.True(t, loaded.CreatedAt.Equal(employee.CreatedAt))
	assert.Equal(t, employee.NationalIDImage, loaded.NationalIDImage)
}
