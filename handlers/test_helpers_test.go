package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ocdi_app_go/config"
	"ocdi_app_go/db"
	"ocdi_app_go/models"
	"ocdi_app_go/templates"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared-memory name isolates tests from each other
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(&models.Expediente{}, &models.Escaneo{}, &models.Actuacion{})
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB
	return testDB
}

func setupEcho(t *testing.T, method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	renderer, err := templates.New()
	assert.NoError(t, err)
	e.Renderer = renderer

	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{Environment: "test", ImportAuthor: "prueba"})

	return e, c, rec
}

func strPtr(s string) *string {
	return &s
}

func intPtr(n int) *int {
	return &n
}

func sembrarExpediente(t *testing.T, num string, anio int) models.Expediente {
	exp := models.Expediente{
		NumeroExpediente: num,
		Anio:             intPtr(anio),
		PlazoInd:         models.PlazoPorDefecto,
		PlazoInv:         models.PlazoPorDefecto,
	}
	assert.NoError(t, db.DB.Create(&exp).Error)
	return exp
}
