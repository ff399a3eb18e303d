package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"ocdi_app_go/db"
	"ocdi_app_go/models"
)

func cuerpoConArchivo(t *testing.T, contenido []byte) (*bytes.Buffer, string) {
	cuerpo := &bytes.Buffer{}
	escritor := multipart.NewWriter(cuerpo)
	parte, err := escritor.CreateFormFile("archivo", "expedientes.xlsx")
	assert.NoError(t, err)
	_, err = parte.Write(contenido)
	assert.NoError(t, err)
	assert.NoError(t, escritor.Close())
	return cuerpo, escritor.FormDataContentType()
}

func libroPrueba(t *testing.T) []byte {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "ENCABEZADO")
	f.SetCellValue("ENCABEZADO", "A1", "N. EXPEDIENTE")
	f.SetCellValue("ENCABEZADO", "A2", "2024-010")
	f.SetCellValue("ENCABEZADO", "B2", 2024)
	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestImportarExcelHandler(t *testing.T) {
	setupTestDB(t)

	cuerpo, mime := cuerpoConArchivo(t, libroPrueba(t))
	_, c, rec := setupEcho(t, http.MethodPost, "/importar", cuerpo)
	c.Request().Header.Set("Content-Type", mime)

	assert.NoError(t, ImportarExcelHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ENCABEZADO")

	var exp models.Expediente
	assert.NoError(t, db.DB.Where("n_expediente = ?", "2024-010").First(&exp).Error)
	// Rows created by the import carry the configured author
	assert.Equal(t, "prueba", *exp.CreatedBy)
}

func TestImportarExcelHandlerArchivoInvalido(t *testing.T) {
	setupTestDB(t)

	cuerpo, mime := cuerpoConArchivo(t, []byte("esto no es un xlsx"))
	_, c, rec := setupEcho(t, http.MethodPost, "/importar", cuerpo)
	c.Request().Header.Set("Content-Type", mime)

	assert.NoError(t, ImportarExcelHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no se pudo leer")
}

func TestImportarExcelHandlerSinArchivo(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(t, http.MethodPost, "/importar", nil)
	assert.NoError(t, ImportarExcelHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seleccione un archivo")
}

func TestLimpiarBaseDatosHandler(t *testing.T) {
	setupTestDB(t)
	sembrarExpediente(t, "2024-001", 2024)

	_, c, rec := setupEcho(t, http.MethodPost, "/importar/limpiar", nil)
	assert.NoError(t, LimpiarBaseDatosHandler(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/importar?msg=bd_limpia", rec.Header().Get("Location"))

	var total int64
	db.DB.Model(&models.Expediente{}).Count(&total)
	assert.Zero(t, total)
}
