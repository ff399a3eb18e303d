package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ocdi_app_go/models"
)

func fixtureAutos() []models.Expediente {
	a := expedienteBase("2024-001", 2024)
	a.NombreAbogado = strPtr("GARCÍA")
	a.FechaAutoAperturaInd = strPtr("2024-01-10")
	a.FechaAutoTrasladoInd = strPtr("2024-03-22")

	b := expedienteBase("2024-002", 2024)
	b.NombreAbogado = strPtr("RAMÍREZ")
	b.FechaAutoAperturaInd = strPtr("2024-01-28")
	b.FechaAutoAperturaInv = strPtr("2024-07-01")

	// Outside the selected year plus one unassigned archive order
	c := expedienteBase("2023-009", 2023)
	c.FechaAutoAperturaInd = strPtr("2023-05-05")
	c.FechaAutoArchivoInv = strPtr("2024-11-30")

	return []models.Expediente{a, b, c}
}

func TestMatrizAutosConteos(t *testing.T) {
	m := CalcularMatrizAutos(fixtureAutos(), "2024")

	assert.Equal(t, 2, m.Tabla["APERTURA INDAGACIÓN PREVIA"]["ENERO"])
	assert.Equal(t, 1, m.Tabla["TRASLADO INDAGACIÓN PREVIA"]["MARZO"])
	assert.Equal(t, 1, m.Tabla["APERTURA INVESTIGACIÓN DISC."]["JULIO"])
	assert.Equal(t, 1, m.Tabla["ARCHIVO INVESTIGACIÓN DISC."]["NOVIEMBRE"])
	// The 2023 opening order stays out
	assert.Zero(t, m.Tabla["APERTURA INDAGACIÓN PREVIA"]["MAYO"])
}

func TestMatrizAutosTotalesConsistentes(t *testing.T) {
	m := CalcularMatrizAutos(fixtureAutos(), "2024")

	sumaMeses := 0
	for _, mes := range models.Meses {
		sumaMeses += m.TotalesMes[mes]
	}
	sumaTipos := 0
	for _, tipo := range TiposAuto {
		sumaTipos += m.TotalesTipo[tipo.Nombre]
	}

	assert.Equal(t, m.TotalGeneral, sumaMeses)
	assert.Equal(t, m.TotalGeneral, sumaTipos)
	assert.Equal(t, 5, m.TotalGeneral)
}

func TestMatrizAutosPorAbogado(t *testing.T) {
	m := CalcularMatrizAutos(fixtureAutos(), "2024")

	assert.Equal(t, 2, m.TablaAbogado["GARCÍA"]["APERTURA INDAGACIÓN PREVIA"]+
		m.TablaAbogado["GARCÍA"]["TRASLADO INDAGACIÓN PREVIA"])
	assert.Equal(t, 1, m.TablaAbogado["RAMÍREZ"]["APERTURA INVESTIGACIÓN DISC."])
	// Lawyer defaults to the sentinel when unassigned
	assert.Equal(t, 1, m.TablaAbogado["Sin asignar"]["ARCHIVO INVESTIGACIÓN DISC."])

	assert.Equal(t, []string{"GARCÍA", "RAMÍREZ", "Sin asignar"}, m.Abogados())
}

func TestMatrizAutosAnioVacio(t *testing.T) {
	m := CalcularMatrizAutos(fixtureAutos(), "2020")
	assert.Zero(t, m.TotalGeneral)
	assert.Empty(t, m.TablaAbogado)
}
