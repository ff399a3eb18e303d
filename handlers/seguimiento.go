package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"ocdi_app_go/db"
	"ocdi_app_go/models"
	"ocdi_app_go/services"
)

func anioSeguimiento(c echo.Context) int {
	if anio, err := strconv.Atoi(c.QueryParam("anio")); err == nil {
		return anio
	}
	return time.Now().Year()
}

// SeguimientoHandler renders the monthly note grid: one row per case, one
// editable cell per month. The selected year scopes the notes only, never
// the case rows: an older case keeps its notes for later years reachable.
func SeguimientoHandler(c echo.Context) error {
	anio := anioSeguimiento(c)

	filtro := services.FiltroExpedientes{
		Q:       c.QueryParam("q"),
		Abogado: c.QueryParam("abogado"),
	}
	exps, err := services.ListarExpedientes(db.DB, filtro)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el seguimiento")
	}

	actuaciones, err := services.ActuacionesDelAnio(db.DB, anio)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el seguimiento")
	}

	anios, _ := services.AniosDistintos(db.DB)
	if len(anios) == 0 {
		anios = []int{anio}
	}

	return c.Render(http.StatusOK, "seguimiento.html", echo.Map{
		"Titulo":      "Seguimiento",
		"Mensaje":     mensajeFlash(c),
		"Anio":        anio,
		"Anios":       anios,
		"Filtro":      filtro,
		"Meses":       models.Meses,
		"Expedientes": exps,
		"Actuaciones": actuaciones,
	})
}

// GuardarActuacionHandler saves one grid cell and returns to the grid. An
// empty description deletes the note for that key.
func GuardarActuacionHandler(c echo.Context) error {
	expedienteID, err := strconv.ParseUint(c.FormValue("expediente_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "expediente inválido")
	}
	anio, err := strconv.Atoi(c.FormValue("anio"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "año inválido")
	}
	mes := c.FormValue("mes")
	if models.MesOrdinal(mes) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "mes inválido")
	}

	var creadoPor *string
	if v := strings.TrimSpace(c.FormValue("creado_por")); v != "" {
		creadoPor = &v
	}

	err = services.GuardarActuacion(db.DB, uint(expedienteID), anio, mes, c.FormValue("descripcion"), creadoPor)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo guardar la actuación")
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/seguimiento?anio=%d&msg=actuacion_guardada", anio))
}
