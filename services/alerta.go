package services

import (
	"fmt"
	"time"
)

// Alert classes, also used as CSS classes in the views and to pick row
// fills in the Excel exports.
const (
	AlertaSinPlazo = "sin-plazo"
	AlertaVencido  = "vencido"
	AlertaProximo  = "proximo"
	AlertaVigente  = "vigente"
)

// Alerta is the deadline evaluation for one phase of an expediente.
type Alerta struct {
	Dias  *int   `json:"dias"`
	Clase string `json:"clase"`
	Texto string `json:"texto"`
}

// CalcularAlerta classifies a deadline date against hoy. A nil, empty or
// unparseable deadline folds into sin-plazo; it never errors.
func CalcularAlerta(fechaVencimiento *string, hoy time.Time) Alerta {
	if fechaVencimiento == nil || *fechaVencimiento == "" {
		return Alerta{Clase: AlertaSinPlazo, Texto: "Sin plazo"}
	}
	fv, err := ParseFecha(*fechaVencimiento)
	if err != nil {
		return Alerta{Clase: AlertaSinPlazo, Texto: "Sin plazo"}
	}

	dias := DiasEntre(hoy, fv)
	switch {
	case dias < 0:
		return Alerta{Dias: &dias, Clase: AlertaVencido, Texto: fmt.Sprintf("Vencido hace %d días", -dias)}
	case dias <= 30:
		return Alerta{Dias: &dias, Clase: AlertaProximo, Texto: fmt.Sprintf("Vence en %d días", dias)}
	default:
		return Alerta{Dias: &dias, Clase: AlertaVigente, Texto: fmt.Sprintf("%d días restantes", dias)}
	}
}
