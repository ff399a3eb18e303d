package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"ocdi_app_go/models"
)

// filaImport writes one data row into the sheet, keyed by 1-based column.
func filaImport(t *testing.T, f *excelize.File, hoja string, fila int, celdas map[int]interface{}) {
	for col, valor := range celdas {
		celda, err := excelize.CoordinatesToCellName(col, fila)
		assert.NoError(t, err)
		assert.NoError(t, f.SetCellValue(hoja, celda, valor))
	}
}

func libroImport(t *testing.T, filas []map[int]interface{}) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "ENCABEZADO")
	f.SetCellValue("ENCABEZADO", "A1", "N. EXPEDIENTE")
	for i, celdas := range filas {
		filaImport(t, f, "ENCABEZADO", i+2, celdas)
	}
	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf
}

func TestMapearFila(t *testing.T) {
	fila := make([]string, 51)
	fila[0] = "  2024-001 "
	fila[1] = "2024.0"
	fila[2] = "MARZO"
	fila[11] = "GARCÍA"
	fila[22] = "" // siniestro flag blank
	fila[29] = "05/03/2024"
	fila[32] = "" // plazo blank
	fila[33] = "#VALUE!"
	fila[49] = "EN TRÁMITE"

	exp := MapearFila(fila)
	assert.Equal(t, "2024-001", exp.NumeroExpediente)
	assert.Equal(t, 2024, *exp.Anio)
	assert.Equal(t, "MARZO", *exp.Mes)
	assert.Equal(t, "GARCÍA", *exp.NombreAbogado)
	assert.Equal(t, "NO", exp.RelacionadoSiniestro)
	assert.Equal(t, "2024-03-05", *exp.FechaAperturaIndagacion)
	assert.Equal(t, models.PlazoPorDefecto, exp.PlazoInd)
	// A non-date literal never reaches the store
	assert.Nil(t, exp.FechaVencimientoInd)
	assert.Equal(t, "EN TRÁMITE", *exp.EstadoProceso)
}

func TestMapearFilaCorta(t *testing.T) {
	exp := MapearFila([]string{"2024-002"})
	assert.Equal(t, "2024-002", exp.NumeroExpediente)
	assert.Nil(t, exp.Anio)
	assert.Equal(t, models.PlazoPorDefecto, exp.PlazoInd)
	assert.Equal(t, models.PlazoPorDefecto, exp.PlazoInv)
	assert.Equal(t, "NO", exp.IngresoSiias)
}

func TestFechaCeldaSerialExcel(t *testing.T) {
	// 45352 is 2024-03-01; tiny serials are pre-1950 artifacts
	assert.Equal(t, "2024-03-01", *fechaCelda("45352"))
	assert.Nil(t, fechaCelda("10"))
}

func TestImportarExcelOmiteFilaSinNumero(t *testing.T) {
	db := setupTestDB(t)

	buf := libroImport(t, []map[int]interface{}{
		{1: "2024-001", 2: 2024, 3: "ENERO"},
		{1: "", 2: 2024, 3: "FEBRERO", 12: "GARCÍA"},
	})

	resultado, err := ImportarExcel(db, bytes.NewReader(buf.Bytes()), "prueba")
	assert.NoError(t, err)
	assert.Equal(t, "ENCABEZADO", resultado.HojaUsada)
	assert.Equal(t, 1, resultado.Insertados)
	assert.Equal(t, 1, resultado.Omitidos)
	assert.Empty(t, resultado.Errores)

	total, err := ContarExpedientes(db)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestImportarExcelOmiteDuplicados(t *testing.T) {
	db := setupTestDB(t)

	buf := libroImport(t, []map[int]interface{}{
		{1: "2024-001", 2: 2024},
	})
	resultado, err := ImportarExcel(db, bytes.NewReader(buf.Bytes()), "prueba")
	assert.NoError(t, err)
	assert.Equal(t, 1, resultado.Insertados)

	// Re-importing the same workbook inserts nothing
	buf = libroImport(t, []map[int]interface{}{
		{1: "2024-001", 2: 2024},
	})
	resultado, err = ImportarExcel(db, bytes.NewReader(buf.Bytes()), "prueba")
	assert.NoError(t, err)
	assert.Zero(t, resultado.Insertados)
	assert.Equal(t, 1, resultado.Omitidos)
}

func TestImportarExcelFechaInvalidaNoFalla(t *testing.T) {
	db := setupTestDB(t)

	buf := libroImport(t, []map[int]interface{}{
		{1: "2024-003", 2: 2024, 34: "#VALUE!", 43: "sin definir"},
	})
	resultado, err := ImportarExcel(db, bytes.NewReader(buf.Bytes()), "prueba")
	assert.NoError(t, err)
	assert.Equal(t, 1, resultado.Insertados)
	assert.Empty(t, resultado.Errores)

	var exp models.Expediente
	assert.NoError(t, db.Where("n_expediente = ?", "2024-003").First(&exp).Error)
	assert.Nil(t, exp.FechaVencimientoInd)
	assert.Nil(t, exp.FechaVencimientoInv)
}

func TestImportarExcelArchivoInvalido(t *testing.T) {
	db := setupTestDB(t)

	resultado, err := ImportarExcel(db, bytes.NewReader([]byte("no es un xlsx")), "prueba")
	assert.Error(t, err)
	assert.Nil(t, resultado)

	total, _ := ContarExpedientes(db)
	assert.Zero(t, total)
}

func TestElegirHojaPorCeldaA1(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "RESUMEN")
	f.SetCellValue("RESUMEN", "A1", "Totales")
	f.NewSheet("DATOS")
	f.SetCellValue("DATOS", "A1", "N° Expediente")

	assert.Equal(t, "DATOS", ElegirHoja(f))
}

func TestElegirHojaPorDefecto(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "OTRA")
	assert.Equal(t, "OTRA", ElegirHoja(f))
}

func TestLimpiarBaseDatos(t *testing.T) {
	db := setupTestDB(t)

	exp := expedienteBase("2024-001", 2024)
	assert.NoError(t, db.Create(&exp).Error)
	assert.NoError(t, db.Create(&models.Escaneo{ExpedienteID: exp.ID, Folio: strPtr("1-10")}).Error)
	assert.NoError(t, db.Create(&models.Actuacion{ExpedienteID: exp.ID, Anio: 2024, Mes: "ENERO", Descripcion: "Auto"}).Error)

	assert.NoError(t, LimpiarBaseDatos(db))

	total, _ := ContarExpedientes(db)
	assert.Zero(t, total)
	var escaneos, actuaciones int64
	db.Model(&models.Escaneo{}).Count(&escaneos)
	db.Model(&models.Actuacion{}).Count(&actuaciones)
	assert.Zero(t, escaneos)
	assert.Zero(t, actuaciones)
}
