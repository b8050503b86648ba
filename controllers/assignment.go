package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carwash-backend/models"
	"carwash-backend/storage"
	"carwash-backend/utils"
)

// CreateAssignmentInput defines the expected JSON structure for creating an assignment
type CreateAssignmentInput struct {
	EmployeeID          string   `json:"employeeId" binding:"required"`
	CustomerID          string   `json:"customerId" binding:"required"`
	VehicleLicensePlate string   `json:"vehicleLicensePlate" binding:"required"`
	Services            []string `json:"services" binding:"required,min=1"`
	Notes               string   `json:"notes"`
}

// UpdateAssignmentInput defines the expected JSON structure for updating an assignment
type UpdateAssignmentInput struct {
	Services []string   `json:"services"`
	EndTime  *time.Time `json:"endTime"`
	Status   *string    `json:"status" binding:"omitempty,oneof=in-progress completed cancelled"`
	Notes    *string    `json:"notes"`
}

type AssignmentController struct {
	assignments *storage.AssignmentStore
	attendance  *storage.AttendanceStore
}

func NewAssignmentController(assignments *storage.AssignmentStore, attendance *storage.AttendanceStore) *AssignmentController {
	return &AssignmentController{assignments: assignments, attendance: attendance}
}

// employeeAvailable reports whether the employee is active and marked
// present today, the only eligibility rule for receiving new work.
func employeeAvailable(c *gin.Context, attendance *storage.AttendanceStore, employeeID string) bool {
	for _, e := range attendance.PresentToday(c.Request.Context()) {
		if e.ID == employeeID {
			return true
		}
	}
	return false
}

// CreateAssignment starts a new work assignment for a present employee
func (ac *AssignmentController) CreateAssignment(c *gin.Context) {
	var input CreateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !employeeAvailable(c, ac.attendance, input.EmployeeID) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Employee is not available for work today")
		return
	}

	assignment := models.WorkAssignment{
		ID:                  uuid.NewString(),
		EmployeeID:          input.EmployeeID,
		CustomerID:          input.CustomerID,
		VehicleLicensePlate: input.VehicleLicensePlate,
		Services:            input.Services,
		StartTime:           time.Now(),
		Status:              models.AssignmentInProgress,
		Notes:               input.Notes,
	}

	ac.assignments.Add(c.Request.Context(), assignment)
	c.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment updates an existing assignment
func (ac *AssignmentController) UpdateAssignment(c *gin.Context) {
	ctx := c.Request.Context()

	assignment, ok := ac.assignments.Find(ctx, c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Assignment not found")
		return
	}

	var input UpdateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Services != nil {
		assignment.Services = input.Services
	}
	if input.EndTime != nil {
		assignment.EndTime = input.EndTime
	}
	if input.Status != nil {
		// The end time is the caller's to set; completing without one is
		// allowed and the assignment then contributes 0 to the duration sum.
		assignment.Status = *input.Status
	}
	if input.Notes != nil {
		assignment.Notes = *input.Notes
	}

	ac.assignments.Update(ctx, assignment)
	c.JSON(http.StatusOK, assignment)
}

// GetTodayAssignments lists assignments started today
func (ac *AssignmentController) GetTodayAssignments(c *gin.Context) {
	c.JSON(http.StatusOK, ac.assignments.Today(c.Request.Context()))
}

// GetEmployeeAssignments lists one employee's assignments for ?date= (default today)
func (ac *AssignmentController) GetEmployeeAssignments(c *gin.Context) {
	assignments := ac.assignments.ForEmployee(c.Request.Context(), c.Param("id"), c.Query("date"))
	c.JSON(http.StatusOK, assignments)
}

// GetEmployeePerformance returns one employee's daily rollup for ?date= (default today)
func (ac *AssignmentController) GetEmployeePerformance(c *gin.Context) {
	performance := ac.assignments.DailyPerformance(c.Request.Context(), c.Param("id"), c.Query("date"))
	c.JSON(http.StatusOK, performance)
}

// GetPerformanceReport returns the daily rollup for every employee present today
func (ac *AssignmentController) GetPerformanceReport(c *gin.Context) {
	report := ac.assignments.DailyReport(c.Request.Context(), c.Query("date"))
	c.JSON(http.StatusOK, report)
}
