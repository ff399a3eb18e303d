package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ocdi_app_go/db"
	"ocdi_app_go/services"
)

// ExportarCompletoHandler serves the full unfiltered workbook.
func ExportarCompletoHandler(c echo.Context) error {
	buf, err := services.ExportarCompleto(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo generar el archivo")
	}

	nombre := "OCDI_Expedientes_" + time.Now().Format("20060102") + ".xlsx"
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+nombre)
	return c.Blob(http.StatusOK, mimeXlsx, buf.Bytes())
}

// ExportarFormHandler renders the filtered-report builder with the values
// actually present in the table as filter options.
func ExportarFormHandler(c echo.Context) error {
	anios, _ := services.AniosDistintos(db.DB)
	abogados, _ := services.AbogadosDistintos(db.DB)
	etapas, _ := services.EtapasDistintas(db.DB)
	estados, _ := services.EstadosDistintos(db.DB)

	return c.Render(http.StatusOK, "exportar.html", echo.Map{
		"Titulo":   "Exportar",
		"Anios":    anios,
		"Abogados": abogados,
		"Etapas":   etapas,
		"Estados":  estados,
		"Bloques":  services.BloquesExport,
	})
}

func filtroDesdeForm(c echo.Context) services.FiltroExport {
	form, err := c.FormParams()
	if err != nil {
		return services.FiltroExport{}
	}
	return services.FiltroExport{
		Anios:    form["anios"],
		Abogados: form["abogados"],
		Etapas:   form["etapas"],
		Estados:  form["estados"],

		FechaDesde: c.FormValue("fecha_desde"),
		FechaHasta: c.FormValue("fecha_hasta"),

		SoloVencidos: c.FormValue("solo_vencidos") != "",
		Proximos30:   c.FormValue("proximos_30") != "",
		Proximos60:   c.FormValue("proximos_60") != "",

		Bloques: form["bloques"],
	}
}

// ExportarFiltradoHandler builds and serves the configurable report.
func ExportarFiltradoHandler(c echo.Context) error {
	filtro := filtroDesdeForm(c)

	buf, err := services.ExportarFiltrado(db.DB, filtro, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo generar el reporte")
	}

	nombre := "OCDI_Reporte_" + time.Now().Format("20060102") + ".xlsx"
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+nombre)
	return c.Blob(http.StatusOK, mimeXlsx, buf.Bytes())
}
