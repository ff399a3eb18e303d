package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ocdi_app_go/config"
	"ocdi_app_go/db"
	"ocdi_app_go/services"
)

func autorImportacion(c echo.Context) string {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg.ImportAuthor
	}
	return "Importación Excel"
}

// ImportarFormHandler renders the upload page.
func ImportarFormHandler(c echo.Context) error {
	total, _ := services.ContarExpedientes(db.DB)
	return c.Render(http.StatusOK, "importar.html", echo.Map{
		"Titulo":  "Importar",
		"Mensaje": mensajeFlash(c),
		"Total":   total,
	})
}

// ImportarExcelHandler processes the uploaded workbook and re-renders the
// page with the run summary. Row-level problems are listed, not fatal.
func ImportarExcelHandler(c echo.Context) error {
	total, _ := services.ContarExpedientes(db.DB)

	archivo, err := c.FormFile("archivo")
	if err != nil {
		return c.Render(http.StatusBadRequest, "importar.html", echo.Map{
			"Titulo": "Importar",
			"Error":  "Seleccione un archivo .xlsx.",
			"Total":  total,
		})
	}

	src, err := archivo.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo abrir el archivo")
	}
	defer src.Close()

	resultado, err := services.ImportarExcel(db.DB, src, autorImportacion(c))
	if err != nil {
		return c.Render(http.StatusBadRequest, "importar.html", echo.Map{
			"Titulo": "Importar",
			"Error":  "El archivo no se pudo leer como libro de Excel: " + err.Error(),
			"Total":  total,
		})
	}

	total, _ = services.ContarExpedientes(db.DB)
	return c.Render(http.StatusOK, "importar.html", echo.Map{
		"Titulo":    "Importar",
		"Resultado": resultado,
		"Total":     total,
	})
}

// LimpiarBaseDatosHandler wipes every table for a clean re-import.
func LimpiarBaseDatosHandler(c echo.Context) error {
	if err := services.LimpiarBaseDatos(db.DB); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo vaciar la base de datos")
	}
	return c.Redirect(http.StatusSeeOther, "/importar?msg=bd_limpia")
}
