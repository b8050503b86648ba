package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash-backend/storage"
	"carwash-backend/utils"
)

// MarkAttendanceInput defines the expected JSON structure for marking attendance
type MarkAttendanceInput struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	IsPresent  *bool  `json:"isPresent" binding:"required"`
	Notes      string `json:"notes"`
}

type AttendanceController struct {
	attendance *storage.AttendanceStore
	employees  *storage.EmployeeStore
}

func NewAttendanceController(attendance *storage.AttendanceStore, employees *storage.EmployeeStore) *AttendanceController {
	return &AttendanceController{attendance: attendance, employees: employees}
}

// MarkAttendance records presence for an employee today. Repeated calls on
// the same day replace the earlier record.
func (ac *AttendanceController) MarkAttendance(c *gin.Context) {
	var input MarkAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, ok := ac.employees.Find(ctx, input.EmployeeID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	record := ac.attendance.Mark(ctx, input.EmployeeID, *input.IsPresent, input.Notes)
	c.JSON(http.StatusCreated, record)
}

// GetTodayAttendance lists all attendance records for the current day
func (ac *AttendanceController) GetTodayAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, ac.attendance.Today(c.Request.Context()))
}

// GetPresentEmployees lists employees eligible for new work today
func (ac *AttendanceController) GetPresentEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, ac.attendance.PresentToday(c.Request.Context()))
}
