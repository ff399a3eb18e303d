package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ocdi_app_go/db"
	"ocdi_app_go/models"
)

func TestDashboardHandler(t *testing.T) {
	setupTestDB(t)

	vencida := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	enTramite := models.EstadoEnTramite
	exp := models.Expediente{
		NumeroExpediente:    "2024-001",
		Anio:                intPtr(2024),
		Mes:                 strPtr("ENERO"),
		EstadoProceso:       &enTramite,
		PlazoInd:            models.PlazoPorDefecto,
		PlazoInv:            models.PlazoPorDefecto,
		FechaVencimientoInd: &vencida,
	}
	assert.NoError(t, db.DB.Create(&exp).Error)

	_, c, rec := setupEcho(t, http.MethodGet, "/dashboard", nil)
	assert.NoError(t, DashboardHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-001")
	assert.Contains(t, rec.Body.String(), "Vencido hace 3 días")
}

func TestAutosHandler(t *testing.T) {
	setupTestDB(t)

	exp := models.Expediente{
		NumeroExpediente:     "2024-001",
		Anio:                 intPtr(2024),
		NombreAbogado:        strPtr("GARCÍA"),
		PlazoInd:             models.PlazoPorDefecto,
		PlazoInv:             models.PlazoPorDefecto,
		FechaAutoAperturaInd: strPtr("2024-01-15"),
	}
	assert.NoError(t, db.DB.Create(&exp).Error)

	_, c, rec := setupEcho(t, http.MethodGet, "/autos?anio=2024", nil)
	assert.NoError(t, AutosHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "APERTURA INDAGACIÓN PREVIA")
	assert.Contains(t, rec.Body.String(), "GARCÍA")
}
