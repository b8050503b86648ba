package controllers

import (
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"carwash-backend/storage"
	"carwash-backend/utils"
)

// ExportController produces the CSV downloads for the list screens. Each
// export is a flat column projection of its collection; referential misses
// render as "Unknown Customer" / "Unknown Employee".
type ExportController struct {
	stores *storage.Stores
}

func NewExportController(stores *storage.Stores) *ExportController {
	return &ExportController{stores: stores}
}

func writeCSV(c *gin.Context, name string, header []string, rows [][]string) {
	filename := fmt.Sprintf("carwash-%s-%s.csv", name, utils.Today())
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(header); err != nil {
		log.Printf("Error writing %s export: %v", name, err)
		return
	}
	if err := w.WriteAll(rows); err != nil {
		log.Printf("Error writing %s export: %v", name, err)
	}
}

func (ec *ExportController) customerName(c *gin.Context, id string) string {
	if id == "" {
		return ""
	}
	customer, ok := ec.stores.Customers.Find(c.Request.Context(), id)
	if !ok {
		return "Unknown Customer"
	}
	return customer.FullName()
}

func (ec *ExportController) employeeName(c *gin.Context, id string) string {
	if id == "" {
		return ""
	}
	employee, ok := ec.stores.Employees.Find(c.Request.Context(), id)
	if !ok {
		return "Unknown Employee"
	}
	return employee.FullName()
}

// ExportCustomers streams the customer list as CSV
func (ec *ExportController) ExportCustomers(c *gin.Context) {
	header := []string{
		"First Name", "Last Name", "Email", "Phone",
		"Vehicle Make", "Vehicle Model", "Vehicle Year", "License Plate", "Vehicle Color",
		"Services", "Assigned Employee", "Total Visits", "Last Visit", "Notes",
	}

	var rows [][]string
	for _, customer := range ec.stores.Customers.Load(c.Request.Context()) {
		rows = append(rows, []string{
			customer.FirstName,
			customer.LastName,
			customer.Email,
			customer.Phone,
			customer.Vehicle.Make,
			customer.Vehicle.Model,
			fmt.Sprintf("%d", customer.Vehicle.Year),
			customer.Vehicle.LicensePlate,
			customer.Vehicle.Color,
			strings.Join(customer.Services, "; "),
			ec.employeeName(c, customer.AssignedEmployeeID),
			fmt.Sprintf("%d", customer.TotalVisits),
			utils.DayKey(customer.LastVisit),
			customer.Notes,
		})
	}

	writeCSV(c, "customers", header, rows)
}

// ExportEmployees streams the employee list as CSV
func (ec *ExportController) ExportEmployees(c *gin.Context) {
	header := []string{
		"First Name", "Last Name", "Email", "Phone", "National ID", "Active", "Created",
	}

	var rows [][]string
	for _, employee := range ec.stores.Employees.Load(c.Request.Context()) {
		active := "No"
		if employee.IsActive {
			active = "Yes"
		}
		rows = append(rows, []string{
			employee.FirstName,
			employee.LastName,
			employee.Email,
			employee.Phone,
			employee.NationalID,
			active,
			utils.DayKey(employee.CreatedAt),
		})
	}

	writeCSV(c, "employees", header, rows)
}

// ExportCarpets streams the carpet job list as CSV
func (ec *ExportController) ExportCarpets(c *gin.Context) {
	header := []string{
		"ID", "Customer", "Employee", "Type", "Size", "Material", "Color",
		"Status", "Drop-off Date", "Completion Date", "Total Price",
	}

	var rows [][]string
	for _, carpet := range ec.stores.Carpets.Load(c.Request.Context()) {
		completion := ""
		if carpet.Timeline.ActualCompletion != nil {
			completion = utils.DayKey(*carpet.Timeline.ActualCompletion)
		}
		size := fmt.Sprintf("%gx%g %s",
			carpet.CarpetDetails.Size.Length,
			carpet.CarpetDetails.Size.Width,
			carpet.CarpetDetails.Size.Unit)

		rows = append(rows, []string{
			carpet.ID,
			ec.customerName(c, carpet.CustomerID),
			ec.employeeName(c, carpet.EmployeeID),
			carpet.CarpetDetails.Type,
			size,
			carpet.CarpetDetails.Material,
			carpet.CarpetDetails.Color,
			carpet.Status,
			utils.DayKey(carpet.Timeline.DropOff),
			completion,
			fmt.Sprintf("$%.2f", carpet.Pricing.TotalPrice),
		})
	}

	writeCSV(c, "carpet-jobs", header, rows)
}

// ExportPerformance streams the daily performance report as CSV for
// ?date= (default today)
func (ec *ExportController) ExportPerformance(c *gin.Context) {
	header := []string{
		"Employee", "Date", "Total Assignments", "Completed", "Average Service Time (min)",
	}

	var rows [][]string
	for _, p := range ec.stores.Assignments.DailyReport(c.Request.Context(), c.Query("date")) {
		rows = append(rows, []string{
			ec.employeeName(c, p.EmployeeID),
			p.Date,
			fmt.Sprintf("%d", p.TotalAssignments),
			fmt.Sprintf("%d", p.CompletedAssignments),
			fmt.Sprintf("%.1f", p.AverageServiceTime),
		})
	}

	writeCSV(c, "performance", header, rows)
}
