package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"ocdi_app_go/models"
)

// FiltroExport selects which rows and which field blocks go into the
// filtered spreadsheet export.
type FiltroExport struct {
	Anios    []string
	Abogados []string
	Etapas   []string
	Estados  []string

	FechaDesde string // over fecha_radicado
	FechaHasta string

	SoloVencidos bool
	Proximos30   bool
	Proximos60   bool

	Bloques []string
}

// BloquesExport lists the selectable field blocks in sheet order.
var BloquesExport = []string{
	"identificacion", "partes", "asunto", "indagacion", "investigacion", "cierre", "escaneos",
}

// columnaExport pairs a header with the accessor producing its cell value.
type columnaExport struct {
	Titulo string
	Valor  func(*models.Expediente) interface{}
}

func vp(get func(*models.Expediente) *string) func(*models.Expediente) interface{} {
	return func(e *models.Expediente) interface{} {
		if s := get(e); s != nil {
			return *s
		}
		return nil
	}
}

var columnasPorBloque = map[string][]columnaExport{
	"identificacion": {
		{"N° EXPEDIENTE", func(e *models.Expediente) interface{} { return e.NumeroExpediente }},
		{"AÑO", func(e *models.Expediente) interface{} {
			if e.Anio != nil {
				return *e.Anio
			}
			return nil
		}},
		{"MES", vp(func(e *models.Expediente) *string { return e.Mes })},
		{"ORIGEN", vp(func(e *models.Expediente) *string { return e.OrigenProceso })},
		{"N° RADICADO", vp(func(e *models.Expediente) *string { return e.NumeroRadicado })},
		{"FECHA RADICADO", vp(func(e *models.Expediente) *string { return e.FechaRadicado })},
		{"FECHA SIIAS", vp(func(e *models.Expediente) *string { return e.FechaSiias })},
		{"INGRESO SIIAS", func(e *models.Expediente) interface{} { return e.IngresoSiias }},
		{"INGRESO SIAD", func(e *models.Expediente) interface{} { return e.IngresoSiad }},
		{"FECHA SIAD", vp(func(e *models.Expediente) *string { return e.FechaIngresoSiad })},
		{"INGRESO SID4", func(e *models.Expediente) interface{} { return e.IngresoSid4 }},
	},
	"partes": {
		{"ABOGADO", vp(func(e *models.Expediente) *string { return e.NombreAbogado })},
		{"IMPEDIMENTO", func(e *models.Expediente) interface{} { return e.Impedimento }},
		{"INVESTIGADO", vp(func(e *models.Expediente) *string { return e.Investigado })},
		{"PERFIL", vp(func(e *models.Expediente) *string { return e.PerfilIndagado })},
		{"ENTIDAD ORIGEN", vp(func(e *models.Expediente) *string { return e.EntidadOrigen })},
		{"QUEJOSO", vp(func(e *models.Expediente) *string { return e.Quejoso })},
	},
	"asunto": {
		{"ASUNTO", vp(func(e *models.Expediente) *string { return e.Asunto })},
		{"TIPOLOGÍA", vp(func(e *models.Expediente) *string { return e.Tipologia })},
		{"DESC. TIPOLOGÍA", vp(func(e *models.Expediente) *string { return e.DescripcionTipologia })},
		{"SINIESTRO", func(e *models.Expediente) interface{} { return e.RelacionadoSiniestro }},
		{"RESP. SINIESTRO", vp(func(e *models.Expediente) *string { return e.ResponsableSiniestro })},
		{"ACOSO/MALTRATO", func(e *models.Expediente) interface{} { return e.RelacionadoAcoso }},
		{"RESP. ACOSO", vp(func(e *models.Expediente) *string { return e.ResponsableAcoso })},
		{"CORRUPCIÓN", func(e *models.Expediente) interface{} { return e.RelacionadoCorrupcion }},
		{"VALORES INST.", vp(func(e *models.Expediente) *string { return e.ValoresInstitucionales })},
		{"FECHA HECHOS", vp(func(e *models.Expediente) *string { return e.FechaHechos })},
	},
	"indagacion": {
		{"F. APERTURA IND.", vp(func(e *models.Expediente) *string { return e.FechaAperturaIndagacion })},
		{"AUTO APERTURA IND.", vp(func(e *models.Expediente) *string { return e.NumeroAutoAperturaInd })},
		{"F. AUTO AP. IND.", vp(func(e *models.Expediente) *string { return e.FechaAutoAperturaInd })},
		{"PLAZO IND. (días)", func(e *models.Expediente) interface{} { return e.PlazoInd }},
		{"F. VENC. IND.", vp(func(e *models.Expediente) *string { return e.FechaVencimientoInd })},
		{"AUTO TRASLADO IND.", vp(func(e *models.Expediente) *string { return e.NumeroAutoTrasladoInd })},
		{"F. TRASLADO IND.", vp(func(e *models.Expediente) *string { return e.FechaAutoTrasladoInd })},
		{"AUTO ARCHIVO IND.", vp(func(e *models.Expediente) *string { return e.NumeroAutoArchivoInd })},
		{"F. ARCHIVO IND.", vp(func(e *models.Expediente) *string { return e.FechaAutoArchivoInd })},
	},
	"investigacion": {
		{"F. APERTURA INV.", vp(func(e *models.Expediente) *string { return e.FechaAperturaInvestigacion })},
		{"AUTO APERTURA INV.", vp(func(e *models.Expediente) *string { return e.NumeroAutoAperturaInv })},
		{"F. AUTO AP. INV.", vp(func(e *models.Expediente) *string { return e.FechaAutoAperturaInv })},
		{"PLAZO INV. (días)", func(e *models.Expediente) interface{} { return e.PlazoInv }},
		{"F. VENC. INV.", vp(func(e *models.Expediente) *string { return e.FechaVencimientoInv })},
		{"AUTO TRASLADO INV.", vp(func(e *models.Expediente) *string { return e.NumeroAutoTrasladoInv })},
		{"F. TRASLADO INV.", vp(func(e *models.Expediente) *string { return e.FechaAutoTrasladoInv })},
		{"AUTO ARCHIVO INV.", vp(func(e *models.Expediente) *string { return e.NumeroAutoArchivoInv })},
		{"F. ARCHIVO INV.", vp(func(e *models.Expediente) *string { return e.FechaAutoArchivoInv })},
	},
	"cierre": {
		{"ETAPA", vp(func(e *models.Expediente) *string { return e.Etapa })},
		{"ESTADO", vp(func(e *models.Expediente) *string { return e.EstadoProceso })},
		{"OBSERVACIONES", vp(func(e *models.Expediente) *string { return e.ObservacionesFinales })},
		{"CREADO POR", vp(func(e *models.Expediente) *string { return e.CreatedBy })},
		{"FECHA CREACIÓN", func(e *models.Expediente) interface{} { return e.CreatedAt.Format("2006-01-02 15:04") }},
	},
}

// reglaVencimiento is one deadline row-filter. Rules are evaluated top-down
// and the first active one wins; they are mutually exclusive by priority,
// not by nesting.
type reglaVencimiento struct {
	Activa func(FiltroExport) bool
	Cumple func(*models.Expediente, time.Time) bool
}

var reglasVencimiento = []reglaVencimiento{
	{
		Activa: func(f FiltroExport) bool { return f.SoloVencidos },
		Cumple: func(e *models.Expediente, hoy time.Time) bool {
			return fechaEnRango(e.FechaVencimientoInd, hoy, -1<<30, -1) ||
				fechaEnRango(e.FechaVencimientoInv, hoy, -1<<30, -1)
		},
	},
	{
		Activa: func(f FiltroExport) bool { return f.Proximos30 },
		Cumple: func(e *models.Expediente, hoy time.Time) bool {
			return fechaEnRango(e.FechaVencimientoInd, hoy, 0, 30) ||
				fechaEnRango(e.FechaVencimientoInv, hoy, 0, 30)
		},
	},
	{
		Activa: func(f FiltroExport) bool { return f.Proximos60 },
		Cumple: func(e *models.Expediente, hoy time.Time) bool {
			return fechaEnRango(e.FechaVencimientoInd, hoy, 0, 60) ||
				fechaEnRango(e.FechaVencimientoInv, hoy, 0, 60)
		},
	},
}

func fechaEnRango(fecha *string, hoy time.Time, desde, hasta int) bool {
	t, ok := fechaParseada(fecha)
	if !ok {
		return false
	}
	d := DiasEntre(hoy, t)
	return d >= desde && d <= hasta
}

// FiltrarParaExport loads the rows the filtered export will contain. The
// scalar filters run in SQL; the deadline rule runs over parsed dates in Go
// so non-date values can never match by accident.
func FiltrarParaExport(db *gorm.DB, filtro FiltroExport, hoy time.Time) ([]models.Expediente, error) {
	query := db.Model(&models.Expediente{})
	if len(filtro.Anios) > 0 {
		query = query.Where("anio IN ?", filtro.Anios)
	}
	if len(filtro.Abogados) > 0 {
		query = query.Where("nombre_abogado IN ?", filtro.Abogados)
	}
	if len(filtro.Etapas) > 0 {
		query = query.Where("etapa IN ?", filtro.Etapas)
	}
	if len(filtro.Estados) > 0 {
		query = query.Where("estado_proceso IN ?", filtro.Estados)
	}
	if filtro.FechaDesde != "" {
		query = query.Where("fecha_radicado >= ?", filtro.FechaDesde)
	}
	if filtro.FechaHasta != "" {
		query = query.Where("fecha_radicado <= ?", filtro.FechaHasta)
	}

	var exps []models.Expediente
	if err := query.Order("anio DESC, n_expediente DESC").Find(&exps).Error; err != nil {
		return nil, fmt.Errorf("failed to load export rows: %w", err)
	}

	for _, regla := range reglasVencimiento {
		if !regla.Activa(filtro) {
			continue
		}
		filtradas := exps[:0]
		for i := range exps {
			if regla.Cumple(&exps[i], hoy) {
				filtradas = append(filtradas, exps[i])
			}
		}
		exps = filtradas
		break
	}
	return exps, nil
}

// Workbook colors shared by every export.
const (
	colorEncabezado = "1B4F8A"
	colorZebra      = "EBF3FD"
	colorVencido    = "FADADD"
	colorProximo    = "FFF9C4"
)

type estilosExport struct {
	encabezado int
	zebra      int
	vencido    int
	proximo    int
}

func crearEstilos(f *excelize.File) (estilosExport, error) {
	var est estilosExport
	var err error

	est.encabezado, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorEncabezado}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return est, err
	}
	est.zebra, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorZebra}},
	})
	if err != nil {
		return est, err
	}
	est.vencido, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorVencido}},
	})
	if err != nil {
		return est, err
	}
	est.proximo, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorProximo}},
	})
	return est, err
}

func escribirEncabezados(f *excelize.File, hoja string, titulos []string, estilo int) error {
	for i, titulo := range titulos {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(hoja, celda, titulo); err != nil {
			return err
		}
	}
	ultima, _ := excelize.CoordinatesToCellName(len(titulos), 1)
	return f.SetCellStyle(hoja, "A1", ultima, estilo)
}

// columnasSeleccionadas assembles the export columns for the chosen blocks
// in canonical block order.
func columnasSeleccionadas(bloques []string) []columnaExport {
	seleccion := map[string]bool{}
	for _, b := range bloques {
		seleccion[b] = true
	}
	var cols []columnaExport
	for _, b := range BloquesExport {
		if b == "escaneos" || !seleccion[b] {
			continue
		}
		cols = append(cols, columnasPorBloque[b]...)
	}
	return cols
}

// ExportarCompleto renders the full unfiltered workbook: every field block
// plus the audit timestamps, ordered by year and case number.
func ExportarCompleto(db *gorm.DB) (*bytes.Buffer, error) {
	var exps []models.Expediente
	if err := db.Order("anio, n_expediente").Find(&exps).Error; err != nil {
		return nil, fmt.Errorf("failed to load expedientes: %w", err)
	}

	cols := columnasSeleccionadas(BloquesExport)
	cols = append(cols, columnaExport{"ÚLTIMA ACTUALIZACIÓN", func(e *models.Expediente) interface{} {
		return e.UpdatedAt.Format("2006-01-02 15:04")
	}})

	f := excelize.NewFile()
	defer f.Close()
	const hoja = "EXPEDIENTES"
	f.SetSheetName("Sheet1", hoja)

	est, err := crearEstilos(f)
	if err != nil {
		return nil, err
	}

	titulos := make([]string, len(cols))
	for i, c := range cols {
		titulos[i] = c.Titulo
	}
	if err := escribirEncabezados(f, hoja, titulos, est.encabezado); err != nil {
		return nil, err
	}
	f.SetRowHeight(hoja, 1, 40)

	for ri := range exps {
		fila := ri + 2
		for ci, col := range cols {
			celda, _ := excelize.CoordinatesToCellName(ci+1, fila)
			if v := col.Valor(&exps[ri]); v != nil {
				f.SetCellValue(hoja, celda, v)
			}
		}
		if fila%2 == 0 {
			desde, _ := excelize.CoordinatesToCellName(1, fila)
			hasta, _ := excelize.CoordinatesToCellName(len(cols), fila)
			f.SetCellStyle(hoja, desde, hasta, est.zebra)
		}
	}

	ajustarAnchos(f, hoja, titulos, 40)
	f.SetPanes(hoja, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	return f.WriteToBuffer()
}

// ExportarFiltrado renders the configurable export: selected blocks plus two
// computed alert columns, urgency row highlighting, an optional ESCANEOS
// sheet and a RESUMEN sheet describing the applied filters.
func ExportarFiltrado(db *gorm.DB, filtro FiltroExport, hoy time.Time) (*bytes.Buffer, error) {
	if len(filtro.Bloques) == 0 {
		filtro.Bloques = BloquesExport
	}

	exps, err := FiltrarParaExport(db, filtro, hoy)
	if err != nil {
		return nil, err
	}

	cols := columnasSeleccionadas(filtro.Bloques)

	f := excelize.NewFile()
	defer f.Close()
	const hoja = "EXPEDIENTES"
	f.SetSheetName("Sheet1", hoja)

	est, err := crearEstilos(f)
	if err != nil {
		return nil, err
	}

	titulos := make([]string, 0, len(cols)+2)
	for _, c := range cols {
		titulos = append(titulos, c.Titulo)
	}
	titulos = append(titulos, "ALERTA VENC. IND.", "ALERTA VENC. INV.")
	if err := escribirEncabezados(f, hoja, titulos, est.encabezado); err != nil {
		return nil, err
	}
	f.SetRowHeight(hoja, 1, 36)

	for ri := range exps {
		e := &exps[ri]
		fila := ri + 2
		alertaInd := CalcularAlerta(e.FechaVencimientoInd, hoy)
		alertaInv := CalcularAlerta(e.FechaVencimientoInv, hoy)

		for ci, col := range cols {
			celda, _ := excelize.CoordinatesToCellName(ci+1, fila)
			if v := col.Valor(e); v != nil {
				f.SetCellValue(hoja, celda, v)
			}
		}
		celdaInd, _ := excelize.CoordinatesToCellName(len(cols)+1, fila)
		celdaInv, _ := excelize.CoordinatesToCellName(len(cols)+2, fila)
		f.SetCellValue(hoja, celdaInd, alertaInd.Texto)
		f.SetCellValue(hoja, celdaInv, alertaInv.Texto)

		desde, _ := excelize.CoordinatesToCellName(1, fila)
		hasta, _ := excelize.CoordinatesToCellName(len(titulos), fila)
		switch {
		case alertaInd.Clase == AlertaVencido || alertaInv.Clase == AlertaVencido:
			f.SetCellStyle(hoja, desde, hasta, est.vencido)
		case alertaInd.Clase == AlertaProximo || alertaInv.Clase == AlertaProximo:
			f.SetCellStyle(hoja, desde, hasta, est.proximo)
		case fila%2 == 0:
			f.SetCellStyle(hoja, desde, hasta, est.zebra)
		}
	}

	ajustarAnchos(f, hoja, titulos, 45)
	f.SetPanes(hoja, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if contieneBloque(filtro.Bloques, "escaneos") {
		if err := hojaEscaneos(f, db, exps, est); err != nil {
			return nil, err
		}
	}
	if err := hojaResumen(f, filtro, len(exps), hoy); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func contieneBloque(bloques []string, nombre string) bool {
	for _, b := range bloques {
		if b == nombre {
			return true
		}
	}
	return false
}

func hojaEscaneos(f *excelize.File, db *gorm.DB, exps []models.Expediente, est estilosExport) error {
	const hoja = "ESCANEOS"
	if _, err := f.NewSheet(hoja); err != nil {
		return err
	}
	titulos := []string{"N° EXPEDIENTE", "AÑO", "FECHA ESCÁNER", "FOLIO", "RESPONSABLE"}
	if err := escribirEncabezados(f, hoja, titulos, est.encabezado); err != nil {
		return err
	}

	fila := 2
	for i := range exps {
		e := &exps[i]
		var escaneos []models.Escaneo
		if err := db.Where("expediente_id = ?", e.ID).Order("id").Find(&escaneos).Error; err != nil {
			return fmt.Errorf("failed to load escaneos for expediente %d: %w", e.ID, err)
		}
		for _, esc := range escaneos {
			f.SetCellValue(hoja, fmt.Sprintf("A%d", fila), e.NumeroExpediente)
			if e.Anio != nil {
				f.SetCellValue(hoja, fmt.Sprintf("B%d", fila), *e.Anio)
			}
			if esc.FechaEscaner != nil {
				f.SetCellValue(hoja, fmt.Sprintf("C%d", fila), *esc.FechaEscaner)
			}
			if esc.Folio != nil {
				f.SetCellValue(hoja, fmt.Sprintf("D%d", fila), *esc.Folio)
			}
			if esc.Responsable != nil {
				f.SetCellValue(hoja, fmt.Sprintf("E%d", fila), *esc.Responsable)
			}
			fila++
		}
	}
	return nil
}

func hojaResumen(f *excelize.File, filtro FiltroExport, totalFilas int, hoy time.Time) error {
	const hoja = "RESUMEN"
	if _, err := f.NewSheet(hoja); err != nil {
		return err
	}

	tituloEstilo, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		return err
	}
	f.SetCellValue(hoja, "A1", "REPORTE OCDI — RESUMEN")
	f.SetCellStyle(hoja, "A1", "A1", tituloEstilo)
	f.SetCellValue(hoja, "A2", "Generado el: "+hoy.Format("02/01/2006"))
	f.SetCellValue(hoja, "A3", fmt.Sprintf("Total de expedientes en reporte: %d", totalFilas))
	f.SetCellValue(hoja, "A4", "Filtros aplicados: "+DescribirFiltros(filtro))
	f.SetColWidth(hoja, "A", "A", 80)
	return nil
}

// DescribirFiltros renders the applied filters for the RESUMEN sheet and
// the export filename choice.
func DescribirFiltros(filtro FiltroExport) string {
	var partes []string
	if len(filtro.Anios) > 0 {
		partes = append(partes, "Años: "+strings.Join(filtro.Anios, ", "))
	}
	if len(filtro.Abogados) > 0 {
		partes = append(partes, "Abogados: "+strings.Join(filtro.Abogados, ", "))
	}
	if len(filtro.Etapas) > 0 {
		partes = append(partes, "Etapas: "+strings.Join(filtro.Etapas, ", "))
	}
	if len(filtro.Estados) > 0 {
		partes = append(partes, "Estados: "+strings.Join(filtro.Estados, ", "))
	}
	if filtro.FechaDesde != "" {
		partes = append(partes, "Fecha desde: "+filtro.FechaDesde)
	}
	if filtro.FechaHasta != "" {
		partes = append(partes, "Fecha hasta: "+filtro.FechaHasta)
	}
	if filtro.SoloVencidos {
		partes = append(partes, "Solo vencidos")
	} else if filtro.Proximos30 {
		partes = append(partes, "Próximos 30 días")
	} else if filtro.Proximos60 {
		partes = append(partes, "Próximos 60 días")
	}
	if len(partes) == 0 {
		return "Ninguno"
	}
	return strings.Join(partes, ", ")
}

// ExportarAutos renders the legal-order workbook: one sheet tipo×mes with a
// totals row, one sheet abogado×tipo.
func ExportarAutos(m *MatrizAutos) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	est, err := crearEstilos(f)
	if err != nil {
		return nil, err
	}
	negrita, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 9}})

	// Sheet 1: by month
	hoja1 := fmt.Sprintf("Autos por Mes %s", m.Anio)
	f.SetSheetName("Sheet1", hoja1)

	titulos := append(append([]string{"TIPO DE AUTO"}, models.Meses...), "TOTAL")
	if err := escribirEncabezados(f, hoja1, titulos, est.encabezado); err != nil {
		return nil, err
	}
	f.SetRowHeight(hoja1, 1, 30)

	for ri, tipo := range TiposAuto {
		fila := ri + 2
		f.SetCellValue(hoja1, fmt.Sprintf("A%d", fila), tipo.Nombre)
		f.SetCellStyle(hoja1, fmt.Sprintf("A%d", fila), fmt.Sprintf("A%d", fila), negrita)
		for ci, mes := range models.Meses {
			if v := m.Tabla[tipo.Nombre][mes]; v > 0 {
				celda, _ := excelize.CoordinatesToCellName(ci+2, fila)
				f.SetCellValue(hoja1, celda, v)
			}
		}
		celdaTotal, _ := excelize.CoordinatesToCellName(len(models.Meses)+2, fila)
		f.SetCellValue(hoja1, celdaTotal, m.TotalesTipo[tipo.Nombre])
	}

	filaTotal := len(TiposAuto) + 2
	f.SetCellValue(hoja1, fmt.Sprintf("A%d", filaTotal), "TOTAL GENERAL")
	for ci, mes := range models.Meses {
		if v := m.TotalesMes[mes]; v > 0 {
			celda, _ := excelize.CoordinatesToCellName(ci+2, filaTotal)
			f.SetCellValue(hoja1, celda, v)
		}
	}
	celdaGran, _ := excelize.CoordinatesToCellName(len(models.Meses)+2, filaTotal)
	f.SetCellValue(hoja1, celdaGran, m.TotalGeneral)
	desdeTotal, _ := excelize.CoordinatesToCellName(1, filaTotal)
	f.SetCellStyle(hoja1, desdeTotal, celdaGran, est.encabezado)

	f.SetColWidth(hoja1, "A", "A", 36)

	// Sheet 2: by lawyer
	hoja2 := fmt.Sprintf("Autos por Abogado %s", m.Anio)
	if _, err := f.NewSheet(hoja2); err != nil {
		return nil, err
	}
	titulos2 := []string{"ABOGADO"}
	for _, tipo := range TiposAuto {
		titulos2 = append(titulos2, tipo.Nombre)
	}
	titulos2 = append(titulos2, "TOTAL")
	if err := escribirEncabezados(f, hoja2, titulos2, est.encabezado); err != nil {
		return nil, err
	}
	f.SetRowHeight(hoja2, 1, 50)

	for ri, abogado := range m.Abogados() {
		fila := ri + 2
		f.SetCellValue(hoja2, fmt.Sprintf("A%d", fila), abogado)
		total := 0
		for ci, tipo := range TiposAuto {
			v := m.TablaAbogado[abogado][tipo.Nombre]
			total += v
			if v > 0 {
				celda, _ := excelize.CoordinatesToCellName(ci+2, fila)
				f.SetCellValue(hoja2, celda, v)
			}
		}
		celdaTotal, _ := excelize.CoordinatesToCellName(len(TiposAuto)+2, fila)
		f.SetCellValue(hoja2, celdaTotal, total)
	}
	f.SetColWidth(hoja2, "A", "A", 32)

	return f.WriteToBuffer()
}

// ajustarAnchos sizes every column to its header width, capped.
func ajustarAnchos(f *excelize.File, hoja string, titulos []string, maxAncho float64) {
	for i, titulo := range titulos {
		ancho := float64(len([]rune(titulo)) + 4)
		if ancho > maxAncho {
			ancho = maxAncho
		}
		if ancho < 12 {
			ancho = 12
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(hoja, col, col, ancho)
	}
}
