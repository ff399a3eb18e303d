package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"ocdi_app_go/models"
)

// ResultadoImport summarizes one spreadsheet import run.
type ResultadoImport struct {
	Insertados int
	Omitidos   int
	Errores    []string
	HojaUsada  string
}

// hojaEncabezado is the sheet the legacy workbook stores its data in.
const hojaEncabezado = "ENCABEZADO"

// columnaImportada binds one 1-indexed spreadsheet column to the field it
// fills, through its coercion function. Layout changes only touch this table.
type columnaImportada struct {
	Col     int
	Asignar func(e *models.Expediente, valor string)
}

// mapaColumnas covers columns 1-51 of the ENCABEZADO sheet. Columns 15, 35
// and 44 are intentionally absent: 15 is an ambiguous opening date that can
// belong to either phase, 35 and 44 hold derived alert text.
var mapaColumnas = []columnaImportada{
	{1, func(e *models.Expediente, v string) { e.NumeroExpediente = strings.TrimSpace(v) }},
	{2, func(e *models.Expediente, v string) { e.Anio = entero(v) }},
	{3, func(e *models.Expediente, v string) { e.Mes = texto(v) }},
	{4, func(e *models.Expediente, v string) { e.OrigenProceso = texto(v) }},
	{5, func(e *models.Expediente, v string) { e.NumeroRadicado = texto(v) }},
	{6, func(e *models.Expediente, v string) { e.FechaRadicado = fechaCelda(v) }},
	{7, func(e *models.Expediente, v string) { e.FechaSiias = fechaCelda(v) }},
	{8, func(e *models.Expediente, v string) { e.IngresoSiias = marcaSiNo(v) }},
	{9, func(e *models.Expediente, v string) { e.IngresoSiad = marcaSiNo(v) }},
	{10, func(e *models.Expediente, v string) { e.FechaIngresoSiad = fechaCelda(v) }},
	{11, func(e *models.Expediente, v string) { e.IngresoSid4 = marcaSiNo(v) }},
	{12, func(e *models.Expediente, v string) { e.NombreAbogado = texto(v) }},
	{13, func(e *models.Expediente, v string) { e.Impedimento = marcaSiNo(v) }},
	{14, func(e *models.Expediente, v string) { e.Investigado = texto(v) }},
	{16, func(e *models.Expediente, v string) { e.Etapa = texto(v) }},
	{17, func(e *models.Expediente, v string) { e.PerfilIndagado = texto(v) }},
	{18, func(e *models.Expediente, v string) { e.EntidadOrigen = texto(v) }},
	{19, func(e *models.Expediente, v string) { e.Quejoso = texto(v) }},
	{20, func(e *models.Expediente, v string) { e.Asunto = texto(v) }},
	{21, func(e *models.Expediente, v string) { e.Tipologia = texto(v) }},
	{22, func(e *models.Expediente, v string) { e.DescripcionTipologia = texto(v) }},
	{23, func(e *models.Expediente, v string) { e.RelacionadoSiniestro = marcaSiNo(v) }},
	{24, func(e *models.Expediente, v string) { e.ResponsableSiniestro = texto(v) }},
	{25, func(e *models.Expediente, v string) { e.RelacionadoAcoso = marcaSiNo(v) }},
	{26, func(e *models.Expediente, v string) { e.ResponsableAcoso = texto(v) }},
	{27, func(e *models.Expediente, v string) { e.RelacionadoCorrupcion = marcaSiNo(v) }},
	{28, func(e *models.Expediente, v string) { e.ValoresInstitucionales = texto(v) }},
	{29, func(e *models.Expediente, v string) { e.FechaHechos = texto(v) }},
	{30, func(e *models.Expediente, v string) { e.FechaAperturaIndagacion = fechaCelda(v) }},
	{31, func(e *models.Expediente, v string) { e.NumeroAutoAperturaInd = texto(v) }},
	{32, func(e *models.Expediente, v string) { e.FechaAutoAperturaInd = fechaCelda(v) }},
	{33, func(e *models.Expediente, v string) { e.PlazoInd = plazoCelda(v) }},
	{34, func(e *models.Expediente, v string) { e.FechaVencimientoInd = fechaCelda(v) }},
	{36, func(e *models.Expediente, v string) { e.NumeroAutoTrasladoInd = texto(v) }},
	{37, func(e *models.Expediente, v string) { e.FechaAutoTrasladoInd = fechaCelda(v) }},
	{38, func(e *models.Expediente, v string) { e.NumeroAutoArchivoInd = texto(v) }},
	{39, func(e *models.Expediente, v string) { e.FechaAutoArchivoInd = fechaCelda(v) }},
	{40, func(e *models.Expediente, v string) { e.FechaAperturaInvestigacion = fechaCelda(v) }},
	{41, func(e *models.Expediente, v string) { e.NumeroAutoAperturaInv = texto(v) }},
	{42, func(e *models.Expediente, v string) { e.FechaAutoAperturaInv = fechaCelda(v) }},
	{43, func(e *models.Expediente, v string) { e.FechaVencimientoInv = fechaCelda(v) }},
	{45, func(e *models.Expediente, v string) { e.PlazoInv = plazoCelda(v) }},
	{46, func(e *models.Expediente, v string) { e.NumeroAutoTrasladoInv = texto(v) }},
	{47, func(e *models.Expediente, v string) { e.FechaAutoTrasladoInv = fechaCelda(v) }},
	{48, func(e *models.Expediente, v string) { e.NumeroAutoArchivoInv = texto(v) }},
	{49, func(e *models.Expediente, v string) { e.FechaAutoArchivoInv = fechaCelda(v) }},
	{50, func(e *models.Expediente, v string) { e.EstadoProceso = texto(v) }},
	{51, func(e *models.Expediente, v string) { e.ObservacionesFinales = texto(v) }},
}

// texto trims and collapses empty strings to absent.
func texto(valor string) *string {
	s := strings.TrimSpace(valor)
	if s == "" {
		return nil
	}
	return &s
}

// marcaSiNo is for the yes/no flag columns: blank defaults to "NO".
func marcaSiNo(valor string) string {
	s := strings.TrimSpace(valor)
	if s == "" {
		return "NO"
	}
	return s
}

// entero parses via float-then-int, absent on failure. Spreadsheets often
// hold integers as "2024.0".
func entero(valor string) *int {
	s := strings.TrimSpace(valor)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

// plazoCelda parses a deadline length, defaulting to 180 days when blank,
// unparseable or zero.
func plazoCelda(valor string) int {
	if n := entero(valor); n != nil && *n != 0 {
		return *n
	}
	return models.PlazoPorDefecto
}

// fechaCelda coerces one spreadsheet cell to an ISO date pointer. String
// layouts are tried first (excelize returns styled cells as display text),
// then a raw Excel serial number. Years before 1950 are spreadsheet
// artifacts and discarded, as is anything unparseable, so error markers
// like "#VALUE!" never reach the store.
func fechaCelda(valor string) *string {
	s := strings.TrimSpace(valor)
	if s == "" || s == "0" {
		return nil
	}
	if iso := NormalizarFecha(s); iso != nil {
		return iso
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil && t.Year() >= 1950 {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}

// MapearFila maps one data row of the ENCABEZADO sheet to a case through
// the declarative column table. Cells are 1-indexed; short rows read as
// blanks.
func MapearFila(fila []string) *models.Expediente {
	celda := func(idx int) string {
		if idx-1 < len(fila) {
			return fila[idx-1]
		}
		return ""
	}
	exp := &models.Expediente{
		PlazoInd: models.PlazoPorDefecto,
		PlazoInv: models.PlazoPorDefecto,
	}
	for _, col := range mapaColumnas {
		col.Asignar(exp, celda(col.Col))
	}
	return exp
}

// ElegirHoja picks the sheet to import: the literal ENCABEZADO name first,
// else the first sheet whose A1 mentions EXPEDIENTE, else the first sheet.
func ElegirHoja(f *excelize.File) string {
	hojas := f.GetSheetList()
	for _, hoja := range hojas {
		if hoja == hojaEncabezado {
			return hoja
		}
	}
	for _, hoja := range hojas {
		a1, err := f.GetCellValue(hoja, "A1")
		if err == nil && strings.Contains(strings.ToUpper(a1), "EXPEDIENTE") {
			return hoja
		}
	}
	return hojas[0]
}

// ImportarExcel reads an uploaded workbook and inserts one case per data
// row. A bad row is recorded and skipped, never aborting the batch; rows
// already inserted stay committed. Duplicates on (n_expediente, anio) and
// rows with a blank case number count as omitidos.
func ImportarExcel(db *gorm.DB, archivo io.Reader, creadoPor string) (*ResultadoImport, error) {
	f, err := excelize.OpenReader(archivo)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo: %w", err)
	}
	defer f.Close()

	resultado := &ResultadoImport{Errores: []string{}}

	hoja := ElegirHoja(f)
	resultado.HojaUsada = hoja

	filas, err := f.GetRows(hoja)
	if err != nil {
		return nil, fmt.Errorf("error al leer la hoja %s: %w", hoja, err)
	}

	// Row 1 is the header.
	for i, fila := range filas {
		if i == 0 {
			continue
		}
		numFila := i + 1

		if filaVacia(fila) {
			continue
		}

		exp := MapearFila(fila)
		if exp.NumeroExpediente == "" {
			resultado.Omitidos++
			continue
		}

		var existentes int64
		if err := db.Model(&models.Expediente{}).
			Where("n_expediente = ? AND anio = ?", exp.NumeroExpediente, exp.Anio).
			Count(&existentes).Error; err != nil {
			resultado.Errores = append(resultado.Errores, fmt.Sprintf("Fila %d: %v", numFila, err))
			continue
		}
		if existentes > 0 {
			resultado.Omitidos++
			continue
		}

		exp.CreatedBy = &creadoPor
		if err := db.Create(exp).Error; err != nil {
			resultado.Errores = append(resultado.Errores, fmt.Sprintf("Fila %d: %v", numFila, err))
			continue
		}
		resultado.Insertados++
	}

	return resultado, nil
}

func filaVacia(fila []string) bool {
	for _, v := range fila {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// LimpiarBaseDatos wipes the three tables ahead of a clean re-import and
// resets the autoincrement counters so ids start from 1 again.
func LimpiarBaseDatos(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Actuacion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Escaneo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Expediente{}).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM sqlite_sequence WHERE name IN ('expedientes','escaneos','actuaciones')").Error
	})
}
