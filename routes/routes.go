package routes

import (
	"carwash-backend/config"
	"carwash-backend/controllers"
	"carwash-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(stores *storage.Stores) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	customerController := controllers.NewCustomerController(stores.Customers, stores.Assignments, stores.Attendance)
	employeeController := controllers.NewEmployeeController(stores.Employees, stores.Carpets)
	attendanceController := controllers.NewAttendanceController(stores.Attendance, stores.Employees)
	assignmentController := controllers.NewAssignmentController(stores.Assignments, stores.Attendance)
	carpetController := controllers.NewCarpetController(stores.Carpets, stores.Attendance)
	dashboardController := controllers.NewDashboardController(stores)
	exportController := controllers.NewExportController(stores)

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Employee routes
		employees := api.Group("/employees")
		{
			employees.POST("", employeeController.CreateEmployee)
			employees.GET("", employeeController.GetEmployees)
			employees.GET("/:id", employeeController.GetEmployee)
			employees.PUT("/:id", employeeController.UpdateEmployee)
			employees.DELETE("/:id", employeeController.DeleteEmployee)
			employees.GET("/:id/workload", employeeController.GetEmployeeWorkload)
			employees.GET("/:id/assignments", assignmentController.GetEmployeeAssignments)
			employees.GET("/:id/performance", assignmentController.GetEmployeePerformance)
		}

		// Attendance routes
		attendance := api.Group("/attendance")
		{
			attendance.POST("", attendanceController.MarkAttendance)
			attendance.GET("/today", attendanceController.GetTodayAttendance)
			attendance.GET("/present", attendanceController.GetPresentEmployees)
		}

		// Work assignment routes
		assignments := api.Group("/assignments")
		{
			assignments.POST("", assignmentController.CreateAssignment)
			assignments.GET("/today", assignmentController.GetTodayAssignments)
			assignments.PUT("/:id", assignmentController.UpdateAssignment)
		}

		// Carpet job routes
		carpets := api.Group("/carpets")
		{
			carpets.POST("", carpetController.CreateCarpet)
			carpets.GET("", carpetController.GetCarpets)
			carpets.GET("/stats", carpetController.GetCarpetStats)
			carpets.GET("/:id", carpetController.GetCarpet)
			carpets.PUT("/:id", carpetController.UpdateCarpet)
			carpets.PATCH("/:id/status", carpetController.UpdateCarpetStatus)
			carpets.DELETE("/:id", carpetController.DeleteCarpet)
		}

		// Reports routes
		api.GET("/reports/performance", assignmentController.GetPerformanceReport)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// CSV export routes
		exports := api.Group("/exports")
		{
			exports.GET("/customers", exportController.ExportCustomers)
			exports.GET("/employees", exportController.ExportEmployees)
			exports.GET("/carpets", exportController.ExportCarpets)
			exports.GET("/performance", exportController.ExportPerformance)
		}
	}

	return r
}
