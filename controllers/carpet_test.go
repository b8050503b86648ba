package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carwash-backend/models"
	"carwash-backend/storage"
)

func newTestRouter() (*gin.Engine, *storage.Stores) {
	gin.SetMode(gin.TestMode)
	stores := storage.NewStores(storage.NewMemoryKV())

	carpetController := NewCarpetController(stores.Carpets, stores.Attendance)
	assignmentController := NewAssignmentController(stores.Assignments, stores.Attendance)
	customerController := NewCustomerController(stores.Customers, stores.Assignments, stores.Attendance)

	r := gin.New()
	r.POST("/api/carpets", carpetController.CreateCarpet)
	r.PATCH("/api/carpets/:id/status", carpetController.UpdateCarpetStatus)
	r.POST("/api/assignments", assignmentController.CreateAssignment)
	r.POST("/api/customers", customerController.CreateCustomer)
	return r, stores
}

func seedPresentEmployee(t *testing.T, stores *storage.Stores) models.Employee {
	t.Helper()
	ctx := context.Background()
	employee := models.Employee{
		ID:              uuid.NewString(),
		FirstName:       "Noor",
		LastName:        "Hassan",
		Email:           "noor@carwash.test",
		Phone:           "5550001",
		NationalID:      "B7654321",
		NationalIDImage: "data:image/png;base64,xxxx",
		CreatedAt:       time.Now(),
		IsActive:        true,
	}
	stores.Employees.Add(ctx, employee)
	stores.Attendance.Mark(ctx, employee.ID, true, "")
	return employee
}

func carpetPayload(employeeID string) map[string]any {
	return map[string]any{
		"customerId":        uuid.NewString(),
		"employeeId":        employeeID,
		"carpetType":        "area",
		"length":            12,
		"width":             10,
		"unit":              "feet",
		"material":          "wool",
		"color":             "red",
		"condition":         "good",
		"cleaningService":   "deep",
		"dryingService":     "dehumidifier",
		"protectionService": "stain-guard",
		"deposit":           20,
	}
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCarpet_PricesJobAtCreation(t *testing.T) {
	r, stores := newTestRouter()
	employee := seedPresentEmployee(t, stores)

	w := postJSON(r, "/api/carpets", carpetPayload(employee.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var carpet models.Carpet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &carpet))
	assert.Equal(t, models.CarpetPending, carpet.Status)
	assert.Equal(t, 127.5, carpet.Pricing.TotalPrice)
	assert.Equal(t, 107.5, carpet.Pricing.Balance)
	assert.False(t, carpet.Timeline.DropOff.IsZero())
}

func TestCreateCarpet_RejectsEmployeeNotPresentToday(t *testing.T) {
	r, stores := newTestRouter()
	ctx := context.Background()

	// Active but never marked present today.
	employee := models.Employee{ID: uuid.NewString(), FirstName: "Idle", IsActive: true}
	stores.Employees.Add(ctx, employee)

	w := postJSON(r, "/api/carpets", carpetPayload(employee.ID))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, stores.Carpets.Load(ctx))
}

func TestCreateAssignment_RejectsInactiveEmployee(t *testing.T) {
	r, stores := newTestRouter()
	ctx := context.Background()

	employee := models.Employee{ID: uuid.NewString(), FirstName: "Retired", IsActive: false}
	stores.Employees.Add(ctx, employee)
	// Present today, but inactive employees are never eligible.
	stores.Attendance.Mark(ctx, employee.ID, true, "")

	payload := map[string]any{
		"employeeId":          employee.ID,
		"customerId":          uuid.NewString(),
		"vehicleLicensePlate": "ABC-123",
		"services":            []string{"exterior-wash"},
	}
	w := postJSON(r, "/api/assignments", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateCarpetStatus_RejectsUnknownStatus(t *testing.T) {
	r, stores := newTestRouter()
	employee := seedPresentEmployee(t, stores)

	created := postJSON(r, "/api/carpets", carpetPayload(employee.ID))
	require.Equal(t, http.StatusCreated, created.Code)

	var carpet models.Carpet
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &carpet))

	body, _ := json.Marshal(map[string]string{"status": "teleported"})
	req := httptest.NewRequest(http.MethodPatch, "/api/carpets/"+carpet.ID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
