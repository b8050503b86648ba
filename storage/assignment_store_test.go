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

func newAssignmentFixture() (*EmployeeStore, *AttendanceStore, *AssignmentStore) {
	kv := NewMemoryKV()
	employees := NewEmployeeStore(kv)
	attendance := NewAttendanceStore(kv, employees)
	return employees, attendance, NewAssignmentStore(kv, attendance)
}

func newTestAssignment(employeeID string, start time.Time, status string, end *time.Time) models.WorkAssignment {
	return models.WorkAssignment{
		ID:                  uuid.NewString(),
		EmployeeID:          employeeID,
		CustomerID:          uuid.NewString(),
		VehicleLicensePlate: "ABC-123",
		Services:            []string{"exterior-wash"},
		StartTime:           start,
		EndTime:             end,
		Status:              status,
	}
}

func TestAssignmentStore_ForEmployeeFiltersByDay(t *testing.T) {
	ctx := context.Background()
	_, _, assignments := newAssignmentFixture()

	employeeID := uuid.NewString()
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	assignments.Add(ctx, newTestAssignment(employeeID, now, models.AssignmentInProgress, nil))
	assignments.Add(ctx, newTestAssignment(employeeID, yesterday, models.AssignmentCompleted, nil))
	assignments.Add(ctx, newTestAssignment(uuid.NewString(), now, models.AssignmentInProgress, nil))

	assert.Len(t, assignments.ForEmployee(ctx, employeeID, ""), 1)
	assert.Len(t, assignments.ForEmployee(ctx, employeeID, utils.DayKey(yesterday)), 1)
	assert.Len(t, assignments.Today(ctx), 2)
}

func TestAssignmentStore_DailyPerformanceAveragesCompletedDurations(t *testing.T) {
	ctx := context.Background()
	_, _, assignments := newAssignmentFixture()

	employeeID := uuid.NewString()
	start := time.Now().Add(-3 * time.Hour)

	end30 := start.Add(30 * time.Minute)
	end60 := start.Add(60 * time.Minute)
	assignments.Add(ctx, newTestAssignment(employeeID, start, models.AssignmentCompleted, &end30))
	assignments.Add(ctx, newTestAssignment(employeeID, start, models.AssignmentCompleted, &end60))
	assignments.Add(ctx, newTestAssignment(employeeID, start, models.AssignmentInProgress, nil))

	perf := assignments.DailyPerformance(ctx, employeeID, "")
	assert.Equal(t, 3, perf.TotalAssignments)
	assert.Equal(t, 2, perf.CompletedAssignments)
	assert.InDelta(t, 45.0, perf.AverageServiceTime, 0.001)
	assert.Equal(t, 0.0, perf.TotalRevenue)
}

func TestAssignmentStore_CompletedWithoutEndTimeDilutesAverage(t *testing.T) {
	ctx := context.Background()
	_, _, assignments := newAssignmentFixture()

	employeeID := uuid.NewString()
	start := time.Now().Add(-2 * time.Hour)
	end := start.Add(60 * time.Minute)

	assignments.Add(ctx, newTestAssignment(employeeID, start, models.AssignmentCompleted, &end))
	// Completed but no end time: contributes nothing to the duration sum
	// while still counting in the divisor.
	assignments.Add(ctx, newTestAssignment(employeeID, start, models.AssignmentCompleted, nil))

	perf := assignments.DailyPerformance(ctx, employeeID, "")
	assert.Equal(t, 2, perf.CompletedAssignments)
	assert.InDelta(t, 30.0, perf.AverageServiceTime, 0.001)
}

func TestAssignmentStore_DailyReportGatedByTodaysAttendance(t *testing.T) {
	ctx := context.Background()
	employees, attendance, assignments := newAssignmentFixture()

	presentEmployee := newTestEmployee("Here", true)
	absentEmployee := newTestEmployee("Gone", true)
	employees.Add(ctx, presentEmployee)
	employees.Add(ctx, absentEmployee)
	attendance.Mark(ctx, presentEmployee.ID, true, "")

	yesterday := time.Now().Add(-24 * time.Hour)
	assignments.Add(ctx, newTestAssignment(presentEmployee.ID, yesterday, models.AssignmentCompleted, nil))
	assignments.Add(ctx, newTestAssignment(absentEmployee.ID, yesterday, models.AssignmentCompleted, nil))

	// Reporting on yesterday still gates on today's presence, so the
	// absent employee's history is missing from the report.
	report := assignments.DailyReport(ctx, utils.DayKey(yesterday))
	require.Len(t, report, 1)
	assert.Equal(t, presentEmployee.ID, report[0].EmployeeID)
	assert.Equal(t, 1, report[0].TotalAssignments)
}
