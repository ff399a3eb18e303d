package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ocdi_app_go/db"
	"ocdi_app_go/models"
	"ocdi_app_go/services"
)

const mimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func anioSeleccionado(c echo.Context) string {
	anio := c.QueryParam("anio")
	if _, err := strconv.Atoi(anio); err != nil {
		return strconv.Itoa(time.Now().Year())
	}
	return anio
}

func matrizDelAnio(anio string) (*services.MatrizAutos, error) {
	var exps []models.Expediente
	if err := db.DB.Find(&exps).Error; err != nil {
		return nil, err
	}
	return services.CalcularMatrizAutos(exps, anio), nil
}

// AutosHandler renders the legal-order cross-tabs for one year.
func AutosHandler(c echo.Context) error {
	matriz, err := matrizDelAnio(anioSeleccionado(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo calcular la matriz de autos")
	}

	anios, _ := services.AniosDistintos(db.DB)
	if len(anios) == 0 {
		anios = []int{time.Now().Year()}
	}

	return c.Render(http.StatusOK, "autos.html", echo.Map{
		"Titulo": "Autos",
		"Matriz": matriz,
		"Tipos":  services.TiposAuto,
		"Meses":  models.Meses,
		"Anios":  anios,
	})
}

// ExportarAutosHandler serves the two-sheet cross-tab workbook.
func ExportarAutosHandler(c echo.Context) error {
	anio := anioSeleccionado(c)
	matriz, err := matrizDelAnio(anio)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo calcular la matriz de autos")
	}

	buf, err := services.ExportarAutos(matriz)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo generar el archivo")
	}

	nombre := fmt.Sprintf("OCDI_Autos_%s.xlsx", anio)
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+nombre)
	return c.Blob(http.StatusOK, mimeXlsx, buf.Bytes())
}
