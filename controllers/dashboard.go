package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash-backend/storage"
)

type DashboardController struct {
	stores *storage.Stores
}

func NewDashboardController(stores *storage.Stores) *DashboardController {
	return &DashboardController{stores: stores}
}

// GetDashboardOverview composes the front-desk view: carpet counters and
// revenue, who is working today, and today's activity.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	ctx := c.Request.Context()

	stats := dc.stores.Carpets.Stats(ctx)
	presentEmployees := dc.stores.Attendance.PresentToday(ctx)
	todayAssignments := dc.stores.Assignments.Today(ctx)
	todayCarpets := dc.stores.Carpets.Today(ctx)

	response := gin.H{
		"carpetStats":      stats,
		"totalCustomers":   len(dc.stores.Customers.Load(ctx)),
		"presentEmployees": len(presentEmployees),
		"todayAssignments": len(todayAssignments),
		"todayCarpets":     todayCarpets,
	}

	c.JSON(http.StatusOK, response)
}
