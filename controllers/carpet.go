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

// CreateCarpetInput defines the expected JSON structure for creating a carpet job
type CreateCarpetInput struct {
	CustomerID          string     `json:"customerId" binding:"required"`
	EmployeeID          string     `json:"employeeId" binding:"required"`
	CarpetType          string     `json:"carpetType" binding:"required,oneof=area runner oriental berber shag other"`
	Length              float64    `json:"length" binding:"required,gt=0"`
	Width               float64    `json:"width" binding:"required,gt=0"`
	Unit                string     `json:"unit" binding:"required,oneof=feet meters"`
	Material            string     `json:"material" binding:"required"`
	Color               string     `json:"color" binding:"required"`
	Condition           string     `json:"condition" binding:"required,oneof=excellent good fair poor"`
	Stains              []string   `json:"stains"`
	CleaningService     string     `json:"cleaningService" binding:"required,oneof=basic deep stain-removal sanitization"`
	DryingService       string     `json:"dryingService" binding:"required,oneof=air-dry dehumidifier fan-assisted"`
	ProtectionService   string     `json:"protectionService" binding:"required,oneof=stain-guard anti-microbial none"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion"`
	Notes               string     `json:"notes"`
	Deposit             float64    `json:"deposit"`
}

// UpdateCarpetInput defines the expected JSON structure for updating a carpet job.
// Pricing fields are absent on purpose: pricing is fixed at creation.
type UpdateCarpetInput struct {
	EmployeeID          *string    `json:"employeeId"`
	Material            *string    `json:"material"`
	Color               *string    `json:"color"`
	Condition           *string    `json:"condition" binding:"omitempty,oneof=excellent good fair poor"`
	Stains              []string   `json:"stains"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion"`
	Notes               *string    `json:"notes"`
}

// UpdateCarpetStatusInput carries the new status for a carpet job
type UpdateCarpetStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending in-progress cleaning drying completed delivered"`
}

type CarpetController struct {
	carpets    *storage.CarpetStore
	attendance *storage.AttendanceStore
}

func NewCarpetController(carpets *storage.CarpetStore, attendance *storage.AttendanceStore) *CarpetController {
	return &CarpetController{carpets: carpets, attendance: attendance}
}

// CreateCarpet registers a new carpet cleaning job. The price is computed
// here, once, from the selected service tiers and the carpet size.
func (cc *CarpetController) CreateCarpet(c *gin.Context) {
	var input CreateCarpetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !employeeAvailable(c, cc.attendance, input.EmployeeID) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Employee is not available for work today")
		return
	}

	size := models.CarpetSize{Length: input.Length, Width: input.Width, Unit: input.Unit}
	services := models.CarpetServices{
		Cleaning:   input.CleaningService,
		Drying:     input.DryingService,
		Protection: input.ProtectionService,
	}

	now := time.Now()
	carpet := models.Carpet{
		ID:         uuid.NewString(),
		CustomerID: input.CustomerID,
		EmployeeID: input.EmployeeID,
		CarpetDetails: models.CarpetDetails{
			Type:      input.CarpetType,
			Size:      size,
			Material:  input.Material,
			Color:     input.Color,
			Condition: input.Condition,
			Stains:    input.Stains,
			Notes:     input.Notes,
		},
		Services: services,
		Status:   models.CarpetPending,
		Timeline: models.CarpetTimeline{
			DropOff:             now,
			EstimatedCompletion: input.EstimatedCompletion,
		},
		Pricing:   models.CalculatePricing(size, services, input.Deposit),
		CreatedAt: now,
		UpdatedAt: now,
	}

	cc.carpets.Add(c.Request.Context(), carpet)
	c.JSON(http.StatusCreated, carpet)
}

// GetCarpets lists carpet jobs with optional ?q=, ?status=, ?customerId=,
// ?employeeId= filters (first match wins, in that order)
func (cc *CarpetController) GetCarpets(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case c.Query("q") != "":
		c.JSON(http.StatusOK, cc.carpets.Search(ctx, c.Query("q")))
	case c.Query("status") != "":
		c.JSON(http.StatusOK, cc.carpets.ByStatus(ctx, c.Query("status")))
	case c.Query("customerId") != "":
		c.JSON(http.StatusOK, cc.carpets.ByCustomer(ctx, c.Query("customerId")))
	case c.Query("employeeId") != "":
		c.JSON(http.StatusOK, cc.carpets.ByEmployee(ctx, c.Query("employeeId")))
	default:
		c.JSON(http.StatusOK, cc.carpets.Load(ctx))
	}
}

// GetCarpet retrieves a specific carpet job by ID
func (cc *CarpetController) GetCarpet(c *gin.Context) {
	carpet, ok := cc.carpets.Find(c.Request.Context(), c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Carpet job not found")
		return
	}
	c.JSON(http.StatusOK, carpet)
}

// UpdateCarpet updates carpet details. Pricing is never recomputed, even
// when the edit would change the priced size or services.
func (cc *CarpetController) UpdateCarpet(c *gin.Context) {
	ctx := c.Request.Context()

	carpet, ok := cc.carpets.Find(ctx, c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Carpet job not found")
		return
	}

	var input UpdateCarpetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.EmployeeID != nil {
		carpet.EmployeeID = *input.EmployeeID
	}
	if input.Material != nil {
		carpet.CarpetDetails.Material = *input.Material
	}
	if input.Color != nil {
		carpet.CarpetDetails.Color = *input.Color
	}
	if input.Condition != nil {
		carpet.CarpetDetails.Condition = *input.Condition
	}
	if input.Stains != nil {
		carpet.CarpetDetails.Stains = input.Stains
	}
	if input.EstimatedCompletion != nil {
		carpet.Timeline.EstimatedCompletion = input.EstimatedCompletion
	}
	if input.Notes != nil {
		carpet.CarpetDetails.Notes = *input.Notes
	}

	cc.carpets.Update(ctx, carpet)
	c.JSON(http.StatusOK, carpet)
}

// UpdateCarpetStatus moves a job to any status; completed and delivered
// stamp their timeline entries
func (cc *CarpetController) UpdateCarpetStatus(c *gin.Context) {
	var input UpdateCarpetStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	if !cc.carpets.UpdateStatus(ctx, id, input.Status) {
		utils.RespondWithError(c, http.StatusNotFound, "Carpet job not found")
		return
	}

	carpet, _ := cc.carpets.Find(ctx, id)
	c.JSON(http.StatusOK, carpet)
}

// DeleteCarpet removes a carpet job
func (cc *CarpetController) DeleteCarpet(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, ok := cc.carpets.Find(ctx, id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Carpet job not found")
		return
	}

	cc.carpets.Delete(ctx, id)
	c.JSON(http.StatusOK, gin.H{"message": "Carpet job deleted successfully"})
}

// GetCarpetStats returns the aggregate dashboard counters
func (cc *CarpetController) GetCarpetStats(c *gin.Context) {
	c.JSON(http.StatusOK, cc.carpets.Stats(c.Request.Context()))
}
