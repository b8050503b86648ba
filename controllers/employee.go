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

// CreateEmployeeInput defines the expected JSON structure for creating an employee
type CreateEmployeeInput struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	NationalID      string `json:"nationalId" binding:"required"`
	NationalIDImage string `json:"nationalIdImage" binding:"required"`
}

// UpdateEmployeeInput defines the expected JSON structure for updating an employee
type UpdateEmployeeInput struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	NationalID      *string `json:"nationalId"`
	NationalIDImage *string `json:"nationalIdImage"`
	IsActive        *bool   `json:"isActive"`
}

type EmployeeController struct {
	employees *storage.EmployeeStore
	carpets   *storage.CarpetStore
}

func NewEmployeeController(employees *storage.EmployeeStore, carpets *storage.CarpetStore) *EmployeeController {
	return &EmployeeController{employees: employees, carpets: carpets}
}

// CreateEmployee registers a new employee
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var input CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	employee := models.Employee{
		ID:              uuid.NewString(),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		NationalID:      input.NationalID,
		NationalIDImage: input.NationalIDImage,
		CreatedAt:       time.Now(),
		IsActive:        true,
	}

	ec.employees.Add(c.Request.Context(), employee)
	c.JSON(http.StatusCreated, employee)
}

// GetEmployees lists employees; supports ?q= search and ?active=true
func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, ec.employees.Search(ctx, query))
		return
	}
	if c.Query("active") == "true" {
		c.JSON(http.StatusOK, ec.employees.Active(ctx))
		return
	}

	c.JSON(http.StatusOK, ec.employees.Load(ctx))
}

// GetEmployee retrieves a specific employee by ID
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employee, ok := ec.employees.Find(c.Request.Context(), c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	employee, ok := ec.employees.Find(ctx, c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	var input UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		employee.Phone = *input.Phone
	}
	if input.NationalID != nil {
		employee.NationalID = *input.NationalID
	}
	if input.NationalIDImage != nil {
		employee.NationalIDImage = *input.NationalIDImage
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	ec.employees.Update(ctx, employee)
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee. References from carpets, assignments
// and attendance are left dangling on purpose; lookups fall back to
// "Unknown Employee".
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, ok := ec.employees.Find(ctx, id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	ec.employees.Delete(ctx, id)
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

// GetEmployeeWorkload lists the employee's carpet jobs still in an active status
func (ec *EmployeeController) GetEmployeeWorkload(c *gin.Context) {
	carpets := ec.carpets.Workload(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, carpets)
}
