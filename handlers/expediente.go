package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ocdi_app_go/db"
	"ocdi_app_go/models"
	"ocdi_app_go/services"
)

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return uint(id), nil
}

// mensajeFlash translates the msg query param set by redirects into the
// banner text the layout shows.
func mensajeFlash(c echo.Context) string {
	switch c.QueryParam("msg") {
	case "creado":
		return "Expediente creado."
	case "actualizado":
		return "Expediente actualizado."
	case "eliminado":
		return "Expediente " + c.QueryParam("n") + " eliminado."
	case "no_encontrado":
		return "El expediente solicitado no existe."
	case "actuacion_guardada":
		return "Actuación guardada."
	case "bd_limpia":
		return "Base de datos vaciada."
	}
	return ""
}

// ListaExpedientesHandler renders the searchable case list with both phase
// alerts per row.
func ListaExpedientesHandler(c echo.Context) error {
	filtro := services.FiltroExpedientes{
		Q:       c.QueryParam("q"),
		Anio:    c.QueryParam("anio"),
		Etapa:   c.QueryParam("etapa"),
		Abogado: c.QueryParam("abogado"),
	}

	exps, err := services.ListarExpedientes(db.DB, filtro)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el listado")
	}

	hoy := time.Now()
	filas := make([]services.ExpedienteConAlerta, len(exps))
	for i, e := range exps {
		filas[i] = services.EnriquecerAlertas(e, hoy)
	}

	anios, _ := services.AniosDistintos(db.DB)
	abogados, _ := services.AbogadosDistintos(db.DB)

	return c.Render(http.StatusOK, "expedientes_lista.html", echo.Map{
		"Titulo":      "Expedientes",
		"Mensaje":     mensajeFlash(c),
		"Expedientes": filas,
		"Filtro":      filtro,
		"Anios":       anios,
		"Abogados":    abogados,
		"Total":       len(filas),
	})
}

// DetalleExpedienteHandler renders one case with its scan log and notes.
func DetalleExpedienteHandler(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	exp, err := services.ObtenerExpediente(db.DB, id)
	if errors.Is(err, services.ErrExpedienteNoEncontrado) {
		return c.Redirect(http.StatusSeeOther, "/?msg=no_encontrado")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el expediente")
	}

	hoy := time.Now()
	return c.Render(http.StatusOK, "expediente_detalle.html", echo.Map{
		"Titulo":     "Expediente " + exp.NumeroExpediente,
		"Expediente": exp,
		"AlertaInd":  services.CalcularAlerta(exp.FechaVencimientoInd, hoy),
		"AlertaInv":  services.CalcularAlerta(exp.FechaVencimientoInv, hoy),
	})
}

func renderFormulario(c echo.Context, titulo, accion string, exp *models.Expediente, escaneos []models.Escaneo, errores []string) error {
	estado := http.StatusOK
	if len(errores) > 0 {
		estado = http.StatusBadRequest
	}
	return c.Render(estado, "expediente_form.html", echo.Map{
		"Titulo":     titulo,
		"Accion":     accion,
		"Expediente": exp,
		"Escaneos":   escaneos,
		"Errores":    errores,
		"Etapas":     models.Etapas,
		"Estados":    models.Estados,
		"Meses":      models.Meses,
	})
}

// NuevoExpedienteHandler renders the empty creation form.
func NuevoExpedienteHandler(c echo.Context) error {
	exp := &models.Expediente{
		PlazoInd: models.PlazoPorDefecto,
		PlazoInv: models.PlazoPorDefecto,
	}
	return renderFormulario(c, "Nuevo expediente", "/expedientes/nuevo", exp, nil, nil)
}

// CrearExpedienteHandler validates and stores a new case; on validation
// errors the form comes back with what was typed.
func CrearExpedienteHandler(c echo.Context) error {
	exp := expedienteDesdeForm(c)
	escaneos := escaneosDesdeForm(c)

	if errores := services.ValidarExpediente(exp); len(errores) > 0 {
		return renderFormulario(c, "Nuevo expediente", "/expedientes/nuevo", exp, escaneos, errores)
	}

	if err := services.CrearExpediente(db.DB, exp, escaneos); err != nil {
		return renderFormulario(c, "Nuevo expediente", "/expedientes/nuevo", exp, escaneos,
			[]string{"No se pudo guardar el expediente. Verifique los datos."})
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/expedientes/%d?msg=creado", exp.ID))
}

// EditarExpedienteHandler renders the edit form pre-filled.
func EditarExpedienteHandler(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	exp, err := services.ObtenerExpediente(db.DB, id)
	if errors.Is(err, services.ErrExpedienteNoEncontrado) {
		return c.Redirect(http.StatusSeeOther, "/?msg=no_encontrado")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el expediente")
	}

	accion := fmt.Sprintf("/expedientes/%d/editar", id)
	return renderFormulario(c, "Editar "+exp.NumeroExpediente, accion, exp, exp.Escaneos, nil)
}

// ActualizarExpedienteHandler applies the edit form as a full replace.
func ActualizarExpedienteHandler(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	exp := expedienteDesdeForm(c)
	escaneos := escaneosDesdeForm(c)
	accion := fmt.Sprintf("/expedientes/%d/editar", id)

	if errores := services.ValidarExpediente(exp); len(errores) > 0 {
		return renderFormulario(c, "Editar expediente", accion, exp, escaneos, errores)
	}

	err = services.ActualizarExpediente(db.DB, id, exp, escaneos)
	if errors.Is(err, services.ErrExpedienteNoEncontrado) {
		return c.Redirect(http.StatusSeeOther, "/?msg=no_encontrado")
	}
	if err != nil {
		return renderFormulario(c, "Editar expediente", accion, exp, escaneos,
			[]string{"No se pudo guardar el expediente. Verifique los datos."})
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/expedientes/%d?msg=actualizado", id))
}

// EliminarExpedienteHandler deletes a case and its children, then goes back
// to the list with a flash naming the removed case.
func EliminarExpedienteHandler(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	numero, err := services.EliminarExpediente(db.DB, id)
	if errors.Is(err, services.ErrExpedienteNoEncontrado) {
		return c.Redirect(http.StatusSeeOther, "/?msg=no_encontrado")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo eliminar el expediente")
	}

	return c.Redirect(http.StatusSeeOther, "/?msg=eliminado&n="+url.QueryEscape(numero))
}
