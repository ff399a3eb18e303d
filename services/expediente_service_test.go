package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ocdi_app_go/models"
)

func TestValidarExpediente(t *testing.T) {
	errores := ValidarExpediente(&models.Expediente{})
	assert.Len(t, errores, 2)

	exp := expedienteBase("2024-001", 2024)
	assert.Empty(t, ValidarExpediente(&exp))
}

func TestCrearExpedienteConEscaneos(t *testing.T) {
	db := setupTestDB(t)

	exp := expedienteBase("2024-001", 2024)
	escaneos := []models.Escaneo{
		{FechaEscaner: strPtr("2024-02-01"), Folio: strPtr("1-100")},
		{}, // empty row from the form, dropped
		{Folio: strPtr("101-200")},
	}
	assert.NoError(t, CrearExpediente(db, &exp, escaneos))
	assert.NotZero(t, exp.ID)

	cargado, err := ObtenerExpediente(db, exp.ID)
	assert.NoError(t, err)
	assert.Len(t, cargado.Escaneos, 2)
}

func TestObtenerExpedienteNoEncontrado(t *testing.T) {
	db := setupTestDB(t)

	_, err := ObtenerExpediente(db, 999)
	assert.ErrorIs(t, err, ErrExpedienteNoEncontrado)
}

func TestActualizarExpedienteReemplazaCampos(t *testing.T) {
	db := setupTestDB(t)

	exp := expedienteBase("2024-001", 2024)
	exp.NombreAbogado = strPtr("GARCÍA")
	exp.Asunto = strPtr("Queja inicial")
	exp.CreatedBy = strPtr("ana")
	assert.NoError(t, CrearExpediente(db, &exp, nil))

	// The edit form resubmits every field; the cleared asunto must become
	// NULL, not keep its old value.
	editado := expedienteBase("2024-001", 2024)
	editado.NombreAbogado = strPtr("RAMÍREZ")
	assert.NoError(t, ActualizarExpediente(db, exp.ID, &editado, nil))

	cargado, err := ObtenerExpediente(db, exp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "RAMÍREZ", *cargado.NombreAbogado)
	assert.Nil(t, cargado.Asunto)
	// Audit fields survive the replace
	assert.Equal(t, "ana", *cargado.CreatedBy)
}

func TestActualizarExpedienteReemplazaEscaneos(t *testing.T) {
	db := setupTestDB(t)

	exp := expedienteBase("2024-001", 2024)
	assert.NoError(t, CrearExpediente(db, &exp, []models.Escaneo{
		{Folio: strPtr("1-50")},
		{Folio: strPtr("51-90")},
	}))

	editado := expedienteBase("2024-001", 2024)
	assert.NoError(t, ActualizarExpediente(db, exp.ID, &editado, []models.Escaneo{
		{Folio: strPtr("1-200")},
	}))

	cargado, err := ObtenerExpediente(db, exp.ID)
	assert.NoError(t, err)
	assert.Len(t, cargado.Escaneos, 1)
	assert.Equal(t, "1-200", *cargado.Escaneos[0].Folio)

	// Submitting no rows clears the log entirely
	assert.NoError(t, ActualizarExpediente(db, exp.ID, &editado, nil))
	cargado, err = ObtenerExpediente(db, exp.ID)
	assert.NoError(t, err)
	assert.Empty(t, cargado.Escaneos)
}

func TestActualizarExpedienteNoEncontrado(t *testing.T) {
	db := setupTestDB(t)

	exp := expedienteBase("2024-001", 2024)
	err := ActualizarExpediente(db, 999, &exp, nil)
	assert.ErrorIs(t, err, ErrExpedienteNoEncontrado)
}

func TestEliminarExpedienteConHijos(t *testing.T) {
	db := setupTestDB(t)

	exp := expedienteBase("2024-001", 2024)
	assert.NoError(t, CrearExpediente(db, &exp, []models.Escaneo{{Folio: strPtr("1-10")}}))
	assert.NoError(t, db.Create(&models.Actuacion{
		ExpedienteID: exp.ID, Anio: 2024, Mes: "ENERO", Descripcion: "Auto de apertura",
	}).Error)

	numero, err := EliminarExpediente(db, exp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2024-001", numero)

	var escaneos, actuaciones int64
	db.Model(&models.Escaneo{}).Count(&escaneos)
	db.Model(&models.Actuacion{}).Count(&actuaciones)
	assert.Zero(t, escaneos)
	assert.Zero(t, actuaciones)

	_, err = EliminarExpediente(db, exp.ID)
	assert.ErrorIs(t, err, ErrExpedienteNoEncontrado)
}

func TestListarExpedientesFiltros(t *testing.T) {
	db := setupTestDB(t)

	a := expedienteBase("2024-001", 2024)
	a.Investigado = strPtr("PÉREZ JUAN")
	a.Etapa = strPtr("INDAGACIÓN PREVIA")
	a.NombreAbogado = strPtr("GARCÍA")

	b := expedienteBase("2024-002", 2024)
	b.Asunto = strPtr("Pérdida de elementos")

	c := expedienteBase("2023-005", 2023)
	c.NombreAbogado = strPtr("GARCÍA")

	for _, e := range []models.Expediente{a, b, c} {
		exp := e
		assert.NoError(t, db.Create(&exp).Error)
	}

	// Free text hits case number, investigado and asunto
	exps, err := ListarExpedientes(db, FiltroExpedientes{Q: "PÉREZ"})
	assert.NoError(t, err)
	assert.Len(t, exps, 1)
	assert.Equal(t, "2024-001", exps[0].NumeroExpediente)

	exps, err = ListarExpedientes(db, FiltroExpedientes{Anio: "2024"})
	assert.NoError(t, err)
	assert.Len(t, exps, 2)

	exps, err = ListarExpedientes(db, FiltroExpedientes{Abogado: "GARC"})
	assert.NoError(t, err)
	assert.Len(t, exps, 2)

	// Newest first
	exps, err = ListarExpedientes(db, FiltroExpedientes{})
	assert.NoError(t, err)
	assert.Equal(t, "2024-002", exps[0].NumeroExpediente)
	assert.Equal(t, "2023-005", exps[2].NumeroExpediente)
}

func TestListasDistintas(t *testing.T) {
	db := setupTestDB(t)

	a := expedienteBase("2024-001", 2024)
	a.NombreAbogado = strPtr("RAMÍREZ")
	a.Etapa = strPtr("INDAGACIÓN PREVIA")

	b := expedienteBase("2023-001", 2023)
	b.NombreAbogado = strPtr("GARCÍA")

	c := expedienteBase("2023-002", 2023)
	c.NombreAbogado = strPtr("GARCÍA")

	for _, e := range []models.Expediente{a, b, c} {
		exp := e
		assert.NoError(t, db.Create(&exp).Error)
	}

	abogados, err := AbogadosDistintos(db)
	assert.NoError(t, err)
	assert.Equal(t, []string{"GARCÍA", "RAMÍREZ"}, abogados)

	anios, err := AniosDistintos(db)
	assert.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, anios)

	etapas, err := EtapasDistintas(db)
	assert.NoError(t, err)
	assert.Equal(t, []string{"INDAGACIÓN PREVIA"}, etapas)
}
