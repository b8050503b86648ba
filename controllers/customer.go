package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carwash-backend/models"
	"carwash-backend/storage"
	"carwash-backend/utils"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	FirstName          string   `json:"firstName" binding:"required"`
	LastName           string   `json:"lastName" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	Phone              string   `json:"phone" binding:"required"`
	VehicleMake        string   `json:"vehicleMake" binding:"required"`
	VehicleModel       string   `json:"vehicleModel" binding:"required"`
	VehicleYear        int      `json:"vehicleYear" binding:"required"`
	LicensePlate       string   `json:"licensePlate" binding:"required"`
	VehicleColor       string   `json:"vehicleColor"`
	Services           []string `json:"services" binding:"required,min=1"`
	AssignedEmployeeID string   `json:"assignedEmployeeId"`
	Notes              string   `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	FirstName          *string    `json:"firstName"`
	LastName           *string    `json:"lastName"`
	Email              *string    `json:"email"`
	Phone              *string    `json:"phone"`
	VehicleMake        *string    `json:"vehicleMake"`
	VehicleModel       *string    `json:"vehicleModel"`
	VehicleYear        *int       `json:"vehicleYear"`
	LicensePlate       *string    `json:"licensePlate"`
	VehicleColor       *string    `json:"vehicleColor"`
	Services           []string   `json:"services"`
	AssignedEmployeeID *string    `json:"assignedEmployeeId"`
	Notes              *string    `json:"notes"`
	LastVisit          *time.Time `json:"lastVisit"`
	TotalVisits        *int       `json:"totalVisits"`
}

type CustomerController struct {
	customers   *storage.CustomerStore
	assignments *storage.AssignmentStore
	attendance  *storage.AttendanceStore
}

func NewCustomerController(customers *storage.CustomerStore, assignments *storage.AssignmentStore, attendance *storage.AttendanceStore) *CustomerController {
	return &CustomerController{customers: customers, assignments: assignments, attendance: attendance}
}

// CreateCustomer registers a new customer with their vehicle. Assigning an
// employee is optional, goes through the present-today gate, and starts an
// in-progress work assignment for the visit in the same call.
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.AssignedEmployeeID != "" && !employeeAvailable(c, cc.attendance, input.AssignedEmployeeID) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Employee is not available for work today")
		return
	}

	licensePlate := strings.ToUpper(strings.TrimSpace(input.LicensePlate))

	now := time.Now()
	customer := models.Customer{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Vehicle: models.Vehicle{
			Make:         input.VehicleMake,
			Model:        input.VehicleModel,
			Year:         input.VehicleYear,
			LicensePlate: licensePlate,
			Color:        input.VehicleColor,
		},
		Services:           input.Services,
		AssignedEmployeeID: input.AssignedEmployeeID,
		Notes:              input.Notes,
		CreatedAt:          now,
		LastVisit:          now,
		TotalVisits:        1,
		PreferredServices:  input.Services,
	}

	ctx := c.Request.Context()
	cc.customers.Add(ctx, customer)

	if input.AssignedEmployeeID != "" {
		cc.assignments.Add(ctx, models.WorkAssignment{
			ID:                  uuid.NewString(),
			EmployeeID:          input.AssignedEmployeeID,
			CustomerID:          customer.ID,
			VehicleLicensePlate: licensePlate,
			Services:            input.Services,
			StartTime:           now,
			Status:              models.AssignmentInProgress,
			Notes:               input.Notes,
		})
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists all customers, optionally filtered by a search query
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, cc.customers.Search(ctx, query))
		return
	}

	c.JSON(http.StatusOK, cc.customers.Load(ctx))
}

// GetCustomer retrieves a specific customer by ID
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, ok := cc.customers.Find(c.Request.Context(), c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	ctx := c.Request.Context()

	customer, ok := cc.customers.Find(ctx, c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		customer.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.VehicleMake != nil {
		customer.Vehicle.Make = *input.VehicleMake
	}
	if input.VehicleModel != nil {
		customer.Vehicle.Model = *input.VehicleModel
	}
	if input.VehicleYear != nil {
		customer.Vehicle.Year = *input.VehicleYear
	}
	if input.LicensePlate != nil {
		customer.Vehicle.LicensePlate = *input.LicensePlate
	}
	if input.VehicleColor != nil {
		customer.Vehicle.Color = *input.VehicleColor
	}
	if input.Services != nil {
		customer.Services = input.Services
	}
	if input.AssignedEmployeeID != nil {
		customer.AssignedEmployeeID = *input.AssignedEmployeeID
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.LastVisit != nil {
		customer.LastVisit = *input.LastVisit
	}
	if input.TotalVisits != nil {
		customer.TotalVisits = *input.TotalVisits
	}

	cc.customers.Update(ctx, customer)
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer. Carpet jobs and assignments referencing
// the customer keep their IDs and render as "Unknown Customer" downstream.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, ok := cc.customers.Find(ctx, id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	cc.customers.Delete(ctx, id)
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
