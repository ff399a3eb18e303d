package handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ocdi_app_go/models"
	"ocdi_app_go/services"
)

// expedienteDesdeForm builds a case from the submitted form. Date inputs run
// through NormalizarFecha so only ISO dates (or nothing) reach the store;
// blank text fields become absent rather than empty strings.
func expedienteDesdeForm(c echo.Context) *models.Expediente {
	texto := func(nombre string) *string {
		v := strings.TrimSpace(c.FormValue(nombre))
		if v == "" {
			return nil
		}
		return &v
	}
	fecha := func(nombre string) *string {
		return services.NormalizarFecha(c.FormValue(nombre))
	}
	marca := func(nombre string) string {
		v := strings.TrimSpace(c.FormValue(nombre))
		if v == "" {
			return "NO"
		}
		return v
	}
	entero := func(nombre string) *int {
		n, err := strconv.Atoi(strings.TrimSpace(c.FormValue(nombre)))
		if err != nil {
			return nil
		}
		return &n
	}
	plazo := func(nombre string) int {
		if n, err := strconv.Atoi(strings.TrimSpace(c.FormValue(nombre))); err == nil && n > 0 {
			return n
		}
		return models.PlazoPorDefecto
	}

	return &models.Expediente{
		NumeroExpediente: strings.TrimSpace(c.FormValue("n_expediente")),
		Anio:             entero("anio"),
		Mes:              texto("mes"),
		OrigenProceso:    texto("origen_proceso"),
		NumeroRadicado:   texto("n_radicado"),
		FechaRadicado:    fecha("fecha_radicado"),
		FechaSiias:       fecha("fecha_siias"),
		IngresoSiias:     marca("ingreso_siias"),
		IngresoSiad:      marca("ingreso_siad"),
		FechaIngresoSiad: fecha("fecha_ingreso_siad"),
		IngresoSid4:      marca("ingreso_sid4"),

		NombreAbogado:  texto("nombre_abogado"),
		Impedimento:    marca("impedimento"),
		Investigado:    texto("investigado"),
		PerfilIndagado: texto("perfil_indagado"),
		EntidadOrigen:  texto("entidad_origen"),
		Quejoso:        texto("quejoso"),

		Asunto:                 texto("asunto"),
		Tipologia:              texto("tipologia"),
		DescripcionTipologia:   texto("descripcion_tipologia"),
		RelacionadoSiniestro:   marca("relacionado_siniestro"),
		ResponsableSiniestro:   texto("responsable_siniestro"),
		RelacionadoAcoso:       marca("relacionado_acoso"),
		ResponsableAcoso:       texto("responsable_acoso"),
		RelacionadoCorrupcion:  marca("relacionado_corrupcion"),
		ValoresInstitucionales: texto("valores_institucionales"),
		// Free text on purpose: legacy sheets hold ranges like "2023 a 2024"
		FechaHechos: texto("fecha_hechos"),

		FechaAperturaIndagacion: fecha("fecha_apertura_indagacion"),
		NumeroAutoAperturaInd:   texto("numero_auto_apertura_ind"),
		FechaAutoAperturaInd:    fecha("fecha_auto_apertura_ind"),
		PlazoInd:                plazo("plazo_ind"),
		FechaVencimientoInd:     fecha("fecha_vencimiento_ind"),
		NumeroAutoTrasladoInd:   texto("numero_auto_traslado_ind"),
		FechaAutoTrasladoInd:    fecha("fecha_auto_traslado_ind"),
		NumeroAutoArchivoInd:    texto("numero_auto_archivo_ind"),
		FechaAutoArchivoInd:     fecha("fecha_auto_archivo_ind"),

		FechaAperturaInvestigacion: fecha("fecha_apertura_investigacion"),
		NumeroAutoAperturaInv:      texto("numero_auto_apertura_inv"),
		FechaAutoAperturaInv:       fecha("fecha_auto_apertura_inv"),
		PlazoInv:                   plazo("plazo_inv"),
		FechaVencimientoInv:        fecha("fecha_vencimiento_inv"),
		NumeroAutoTrasladoInv:      texto("numero_auto_traslado_inv"),
		FechaAutoTrasladoInv:       fecha("fecha_auto_traslado_inv"),
		NumeroAutoArchivoInv:       texto("numero_auto_archivo_inv"),
		FechaAutoArchivoInv:        fecha("fecha_auto_archivo_inv"),

		Etapa:                texto("etapa"),
		EstadoProceso:        texto("estado_proceso"),
		ObservacionesFinales: texto("observaciones_finales"),
	}
}

// escaneosDesdeForm reads the scan-log rows submitted as parallel field
// arrays, preserving row order. Rows left blank come back as empty Escaneo
// values; the service drops those on save.
func escaneosDesdeForm(c echo.Context) []models.Escaneo {
	form, err := c.FormParams()
	if err != nil {
		return nil
	}
	fechas := form["escaneo_fecha"]
	folios := form["escaneo_folio"]
	responsables := form["escaneo_responsable"]

	n := len(fechas)
	if len(folios) > n {
		n = len(folios)
	}
	if len(responsables) > n {
		n = len(responsables)
	}

	en := func(valores []string, i int) string {
		if i < len(valores) {
			return valores[i]
		}
		return ""
	}
	opcional := func(v string) *string {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}
		return &v
	}

	escaneos := make([]models.Escaneo, 0, n)
	for i := 0; i < n; i++ {
		escaneos = append(escaneos, models.Escaneo{
			FechaEscaner: services.NormalizarFecha(en(fechas, i)),
			Folio:        opcional(en(folios, i)),
			Responsable:  opcional(en(responsables, i)),
		})
	}
	return escaneos
}
