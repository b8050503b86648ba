package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carwash-backend/models"
	"carwash-backend/utils"
)

func newTestEmployee(first string, active bool) models.Employee {
	return models.Employee{
		ID:              uuid.NewString(),
		FirstName:       first,
		LastName:        "Worker",
		Email:           first + "@carwash.test",
		Phone:           "5550001",
		NationalID:      "A1234567",
		NationalIDImage: "data:image/png;base64,xxxx",
		CreatedAt:       time.Now(),
		IsActive:        active,
	}
}

func newAttendanceFixture() (*EmployeeStore, *AttendanceStore) {
	kv := NewMemoryKV()
	employees := NewEmployeeStore(kv)
	return employees, NewAttendanceStore(kv, employees)
}

func TestAttendanceStore_MarkIsLastWriteWinsPerDay(t *testing.T) {
	ctx := context.Background()
	employees, attendance := newAttendanceFixture()

	employee := newTestEmployee("Dina", true)
	employees.Add(ctx, employee)

	attendance.Mark(ctx, employee.ID, true, "on time")
	attendance.Mark(ctx, employee.ID, false, "went home sick")
	attendance.Mark(ctx, employee.ID, true, "back again")

	records := attendance.Today(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, employee.ID, records[0].EmployeeID)
	assert.True(t, records[0].IsPresent)
	assert.Equal(t, "back again", records[0].Notes)
	assert.Equal(t, utils.Today(), records[0].Date)
}

func TestAttendanceStore_CheckInOnlyWhenPresent(t *testing.T) {
	ctx := context.Background()
	employees, attendance := newAttendanceFixture()

	present := newTestEmployee("Omar", true)
	absent := newTestEmployee("Lena", true)
	employees.Add(ctx, present)
	employees.Add(ctx, absent)

	presentRecord := attendance.Mark(ctx, present.ID, true, "")
	absentRecord := attendance.Mark(ctx, absent.ID, false, "sick leave")

	assert.NotNil(t, presentRecord.CheckInTime)
	assert.Nil(t, absentRecord.CheckInTime)
	// No write path produces a check-out time.
	assert.Nil(t, presentRecord.CheckOutTime)
}

func TestAttendanceStore_PresentTodayIntersectsActiveAndPresent(t *testing.T) {
	ctx := context.Background()
	employees, attendance := newAttendanceFixture()

	activePresent := newTestEmployee("Ada", true)
	activeAbsent := newTestEmployee("Ben", true)
	inactivePresent := newTestEmployee("Cleo", false)
	activeUnmarked := newTestEmployee("Dan", true)

	for _, e := range []models.Employee{activePresent, activeAbsent, inactivePresent, activeUnmarked} {
		employees.Add(ctx, e)
	}

	attendance.Mark(ctx, activePresent.ID, true, "")
	attendance.Mark(ctx, activeAbsent.ID, false, "")
	attendance.Mark(ctx, inactivePresent.ID, true, "")

	present := attendance.PresentToday(ctx)
	require.Len(t, present, 1)
	assert.Equal(t, activePresent.ID, present[0].ID)
}
