package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ocdi_app_go/db"
	"ocdi_app_go/models"
	"ocdi_app_go/services"
)

// DashboardHandler renders the aggregated view. The whole table is loaded
// and aggregated in memory; the office's volume (a few thousand cases) makes
// that cheaper than a dozen grouped queries.
func DashboardHandler(c echo.Context) error {
	var exps []models.Expediente
	if err := db.DB.Find(&exps).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el dashboard")
	}

	stats := services.CalcularDashboard(exps, time.Now())

	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"Titulo": "Dashboard",
		"Stats":  stats,
	})
}
