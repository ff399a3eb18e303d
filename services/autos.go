package services

import (
	"sort"

	"ocdi_app_go/models"
)

// TipoAuto binds one legal-order type to the date column that records it.
type TipoAuto struct {
	Nombre string
	Fecha  func(*models.Expediente) *string
}

// TiposAuto lists the six order types in report order: opening, transfer and
// archive for each of the two phases.
var TiposAuto = []TipoAuto{
	{"APERTURA INDAGACIÓN PREVIA", func(e *models.Expediente) *string { return e.FechaAutoAperturaInd }},
	{"TRASLADO INDAGACIÓN PREVIA", func(e *models.Expediente) *string { return e.FechaAutoTrasladoInd }},
	{"ARCHIVO INDAGACIÓN PREVIA", func(e *models.Expediente) *string { return e.FechaAutoArchivoInd }},
	{"APERTURA INVESTIGACIÓN DISC.", func(e *models.Expediente) *string { return e.FechaAutoAperturaInv }},
	{"TRASLADO INVESTIGACIÓN DISC.", func(e *models.Expediente) *string { return e.FechaAutoTrasladoInv }},
	{"ARCHIVO INVESTIGACIÓN DISC.", func(e *models.Expediente) *string { return e.FechaAutoArchivoInv }},
}

// MatrizAutos is the year's cross-tabulation of legal orders: one table by
// order type and month, one by lawyer and order type. All totals are sums
// over the tables, never computed separately, so they stay consistent by
// construction.
type MatrizAutos struct {
	Anio         string
	Tabla        map[string]map[string]int // tipo -> mes -> cantidad
	TablaAbogado map[string]map[string]int // abogado -> tipo -> cantidad
	TotalesMes   map[string]int
	TotalesTipo  map[string]int
	TotalGeneral int
}

// CalcularMatrizAutos scans every case and tallies each order whose date
// falls within the selected year.
func CalcularMatrizAutos(exps []models.Expediente, anio string) *MatrizAutos {
	m := &MatrizAutos{
		Anio:         anio,
		Tabla:        map[string]map[string]int{},
		TablaAbogado: map[string]map[string]int{},
		TotalesMes:   map[string]int{},
		TotalesTipo:  map[string]int{},
	}
	for _, tipo := range TiposAuto {
		m.Tabla[tipo.Nombre] = map[string]int{}
		for _, mes := range models.Meses {
			m.Tabla[tipo.Nombre][mes] = 0
		}
	}

	for _, tipo := range TiposAuto {
		for i := range exps {
			e := &exps[i]
			fecha := tipo.Fecha(e)
			t, ok := fechaParseada(fecha)
			if !ok || t.Format("2006") != anio {
				continue
			}

			mes := models.Meses[int(t.Month())-1]
			m.Tabla[tipo.Nombre][mes]++

			abogado := e.AbogadoOSinAsignar()
			if m.TablaAbogado[abogado] == nil {
				m.TablaAbogado[abogado] = map[string]int{}
				for _, t2 := range TiposAuto {
					m.TablaAbogado[abogado][t2.Nombre] = 0
				}
			}
			m.TablaAbogado[abogado][tipo.Nombre]++
		}
	}

	// Totals derived exclusively from the tipo×mes table.
	for _, tipo := range TiposAuto {
		for _, mes := range models.Meses {
			n := m.Tabla[tipo.Nombre][mes]
			m.TotalesMes[mes] += n
			m.TotalesTipo[tipo.Nombre] += n
		}
	}
	for _, tipo := range TiposAuto {
		m.TotalGeneral += m.TotalesTipo[tipo.Nombre]
	}

	return m
}

// Abogados returns the lawyers present in the matrix in sorted order.
func (m *MatrizAutos) Abogados() []string {
	abogados := make([]string, 0, len(m.TablaAbogado))
	for a := range m.TablaAbogado {
		abogados = append(abogados, a)
	}
	sort.Strings(abogados)
	return abogados
}
