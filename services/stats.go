package services

import (
	"sort"
	"strconv"
	"time"

	"ocdi_app_go/models"
)

// ConteoGrupo is one bar of a grouped count on the dashboard.
type ConteoGrupo struct {
	Etiqueta string `json:"etiqueta"`
	Cantidad int    `json:"cantidad"`
}

// PuntoTendencia is one point of the monthly intake trend.
type PuntoTendencia struct {
	Anio     int    `json:"anio"`
	Mes      string `json:"mes"`
	Cantidad int    `json:"cantidad"`
}

// ExpedienteConAlerta pairs a case with both phase alerts for rendering.
type ExpedienteConAlerta struct {
	models.Expediente
	AlertaInd Alerta `json:"alerta_ind"`
	AlertaInv Alerta `json:"alerta_inv"`
}

// DashboardStats aggregates everything the dashboard view shows.
type DashboardStats struct {
	Total int

	PorEtapa     []ConteoGrupo
	PorEstado    []ConteoGrupo
	PorAbogado   []ConteoGrupo
	PorAnio      []ConteoGrupo
	PorOrigen    []ConteoGrupo
	PorTipologia []ConteoGrupo

	Tendencia    []PuntoTendencia
	TendenciaMax int

	Vencidos int
	Prox30   int
	Prox60   int

	Proximos  []ExpedienteConAlerta
	Recientes []models.Expediente
}

const (
	maxProximos      = 15
	maxRecientes     = 10
	maxPuntosTrend   = 24
	topOrigenes      = 10
	topTipologias    = 8
	ventanaProximos  = 60
	claveSinFechaOrd = "9999" // sorts after any real ISO date
)

// EnriquecerAlertas attaches both phase alerts to a case.
func EnriquecerAlertas(e models.Expediente, hoy time.Time) ExpedienteConAlerta {
	return ExpedienteConAlerta{
		Expediente: e,
		AlertaInd:  CalcularAlerta(e.FechaVencimientoInd, hoy),
		AlertaInv:  CalcularAlerta(e.FechaVencimientoInv, hoy),
	}
}

// CalcularDashboard computes every dashboard aggregate over the given case
// set. Pure given hoy; the caller decides whether the set is pre-filtered.
func CalcularDashboard(exps []models.Expediente, hoy time.Time) *DashboardStats {
	stats := &DashboardStats{Total: len(exps)}

	stats.PorEtapa = agrupar(exps, 0, func(e *models.Expediente) string {
		return etiqueta(e.Etapa, "Sin etapa")
	})
	stats.PorEstado = agrupar(exps, 0, func(e *models.Expediente) string {
		return etiqueta(e.EstadoProceso, "Sin estado")
	})
	stats.PorAbogado = agrupar(exps, 0, func(e *models.Expediente) string {
		return e.AbogadoOSinAsignar()
	})
	stats.PorAnio = agrupar(exps, 0, func(e *models.Expediente) string {
		if e.Anio == nil {
			return "—"
		}
		return strconv.Itoa(*e.Anio)
	})
	stats.PorOrigen = agrupar(exps, topOrigenes, func(e *models.Expediente) string {
		return etiqueta(e.OrigenProceso, "Sin especificar")
	})
	stats.PorTipologia = agrupar(exps, topTipologias, func(e *models.Expediente) string {
		return etiqueta(e.Tipologia, "Sin especificar")
	})

	stats.Tendencia, stats.TendenciaMax = tendenciaMensual(exps)
	stats.Vencidos, stats.Prox30, stats.Prox60 = contarVencimientos(exps, hoy)
	stats.Proximos = listaProximos(exps, hoy)
	stats.Recientes = recientes(exps)

	return stats
}

func etiqueta(valor *string, sentinela string) string {
	if valor == nil || *valor == "" {
		return sentinela
	}
	return *valor
}

// agrupar counts cases per label, descending by count (label as tie-break).
// topN > 0 truncates the result.
func agrupar(exps []models.Expediente, topN int, clave func(*models.Expediente) string) []ConteoGrupo {
	conteos := map[string]int{}
	for i := range exps {
		conteos[clave(&exps[i])]++
	}

	grupos := make([]ConteoGrupo, 0, len(conteos))
	for et, n := range conteos {
		grupos = append(grupos, ConteoGrupo{Etiqueta: et, Cantidad: n})
	}
	sort.Slice(grupos, func(i, j int) bool {
		if grupos[i].Cantidad != grupos[j].Cantidad {
			return grupos[i].Cantidad > grupos[j].Cantidad
		}
		return grupos[i].Etiqueta < grupos[j].Etiqueta
	})

	if topN > 0 && len(grupos) > topN {
		grupos = grupos[:topN]
	}
	return grupos
}

// tendenciaMensual groups intake by (anio, mes) pairs present in the data,
// sorted ascending by year then month ordinal, keeping the last 24 points.
// The max is floored at 1 so chart scaling never divides by zero.
func tendenciaMensual(exps []models.Expediente) ([]PuntoTendencia, int) {
	type claveMes struct {
		anio int
		ord  int
	}
	conteos := map[claveMes]int{}
	for i := range exps {
		e := &exps[i]
		if e.Anio == nil || e.Mes == nil {
			continue
		}
		ord := models.MesOrdinal(*e.Mes)
		if ord == 0 {
			continue
		}
		conteos[claveMes{*e.Anio, ord}]++
	}

	claves := make([]claveMes, 0, len(conteos))
	for k := range conteos {
		claves = append(claves, k)
	}
	sort.Slice(claves, func(i, j int) bool {
		if claves[i].anio != claves[j].anio {
			return claves[i].anio < claves[j].anio
		}
		return claves[i].ord < claves[j].ord
	})

	if len(claves) > maxPuntosTrend {
		claves = claves[len(claves)-maxPuntosTrend:]
	}

	puntos := make([]PuntoTendencia, 0, len(claves))
	max := 1
	for _, k := range claves {
		n := conteos[k]
		puntos = append(puntos, PuntoTendencia{Anio: k.anio, Mes: models.Meses[k.ord-1], Cantidad: n})
		if n > max {
			max = n
		}
	}
	return puntos, max
}

// fechaParseada returns the parsed deadline, or ok=false for nil or values
// that are not date-shaped. Buckets must never match on raw strings.
func fechaParseada(fecha *string) (time.Time, bool) {
	if fecha == nil || *fecha == "" {
		return time.Time{}, false
	}
	t, err := ParseFecha(*fecha)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// contarVencimientos evaluates each phase deadline independently and ORs the
// results: a case counts once per bucket even when both phases qualify.
func contarVencimientos(exps []models.Expediente, hoy time.Time) (vencidos, prox30, prox60 int) {
	enRango := func(fecha *string, desde, hasta int) bool {
		t, ok := fechaParseada(fecha)
		if !ok {
			return false
		}
		d := DiasEntre(hoy, t)
		return d >= desde && d <= hasta
	}
	vencida := func(fecha *string) bool {
		t, ok := fechaParseada(fecha)
		return ok && DiasEntre(hoy, t) < 0
	}

	for i := range exps {
		e := &exps[i]
		if !e.EstadoCerrado() && (vencida(e.FechaVencimientoInd) || vencida(e.FechaVencimientoInv)) {
			vencidos++
		}
		if enRango(e.FechaVencimientoInd, 0, 30) || enRango(e.FechaVencimientoInv, 0, 30) {
			prox30++
		}
		if enRango(e.FechaVencimientoInd, 31, 60) || enRango(e.FechaVencimientoInv, 31, 60) {
			prox60++
		}
	}
	return
}

// listaProximos builds the upcoming/overdue shortlist: cases due within 60
// days or already overdue (and not archived), ordered by the overdue phase's
// date when one exists (indagación checked first) else the soonest deadline.
func listaProximos(exps []models.Expediente, hoy time.Time) []ExpedienteConAlerta {
	enVentana := func(fecha *string) bool {
		t, ok := fechaParseada(fecha)
		if !ok {
			return false
		}
		d := DiasEntre(hoy, t)
		return d >= 0 && d <= ventanaProximos
	}
	vencida := func(fecha *string) (string, bool) {
		t, ok := fechaParseada(fecha)
		if !ok || DiasEntre(hoy, t) >= 0 {
			return "", false
		}
		return t.Format("2006-01-02"), true
	}

	type candidato struct {
		exp   ExpedienteConAlerta
		clave string
	}
	var candidatos []candidato

	for i := range exps {
		e := exps[i]
		vencIndISO, vencInd := vencida(e.FechaVencimientoInd)
		vencInvISO, vencInv := vencida(e.FechaVencimientoInv)
		vencidaActiva := !e.EstadoCerrado() && (vencInd || vencInv)

		if !enVentana(e.FechaVencimientoInd) && !enVentana(e.FechaVencimientoInv) && !vencidaActiva {
			continue
		}

		// Sort key mirrors the legacy ordering: an overdue indagación date
		// wins, then an overdue investigación date, else the soonest of the
		// two deadlines with a high sentinel for absent ones.
		clave := claveSinFechaOrd
		switch {
		case vencInd:
			clave = vencIndISO
		case vencInv:
			clave = vencInvISO
		default:
			if t, ok := fechaParseada(e.FechaVencimientoInd); ok {
				clave = t.Format("2006-01-02")
			}
			if t, ok := fechaParseada(e.FechaVencimientoInv); ok {
				if iso := t.Format("2006-01-02"); iso < clave {
					clave = iso
				}
			}
		}

		candidatos = append(candidatos, candidato{exp: EnriquecerAlertas(e, hoy), clave: clave})
	}

	sort.SliceStable(candidatos, func(i, j int) bool {
		return candidatos[i].clave < candidatos[j].clave
	})
	if len(candidatos) > maxProximos {
		candidatos = candidatos[:maxProximos]
	}

	lista := make([]ExpedienteConAlerta, len(candidatos))
	for i, c := range candidatos {
		lista[i] = c.exp
	}
	return lista
}

func recientes(exps []models.Expediente) []models.Expediente {
	ordenados := make([]models.Expediente, len(exps))
	copy(ordenados, exps)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].CreatedAt.After(ordenados[j].CreatedAt)
	})
	if len(ordenados) > maxRecientes {
		ordenados = ordenados[:maxRecientes]
	}
	return ordenados
}
