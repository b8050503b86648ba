package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carwash-backend/models"
	"carwash-backend/storage"
)

func TestExportCarpets_DanglingReferencesRenderAsUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stores := storage.NewStores(storage.NewMemoryKV())
	exportController := NewExportController(stores)

	r := gin.New()
	r.GET("/api/exports/carpets", exportController.ExportCarpets)

	carpet := models.Carpet{
		ID:         uuid.NewString(),
		CustomerID: uuid.NewString(), // never stored
		EmployeeID: uuid.NewString(), // never stored
		CarpetDetails: models.CarpetDetails{
			Type: "area",
			Size: models.CarpetSize{Length: 8, Width: 5, Unit: "feet"},
		},
		Status: models.CarpetPending,
	}
	stores.Carpets.Add(context.Background(), carpet)

	req := httptest.NewRequest(http.MethodGet, "/api/exports/carpets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "carwash-carpet-jobs-")

	body := w.Body.String()
	assert.Contains(t, body, "Unknown Customer")
	assert.Contains(t, body, "Unknown Employee")
	assert.Contains(t, body, "8x5 feet")
}

type failingResponseWriter struct {
	*httptest.ResponseRecorder
}

func (w *failingResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("client closed connection")
}

func TestWriteCSVSurvivesBrokenConnection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(&failingResponseWriter{httptest.NewRecorder()})

	assert.NotPanics(t, func() {
		writeCSV(c, "customers", []string{"ID", "Name"}, [][]string{{"c1", "Dana Odeh"}})
	})
}
