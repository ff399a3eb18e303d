package services

import (
	"fmt"
	"strings"
	"time"
)

// Accepted input layouts for dates typed or pasted by users, tried in order.
// Storage is always ISO (YYYY-MM-DD) so string ordering matches date ordering.
var layoutsFecha = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// ParseFecha parses a stored ISO date string.
func ParseFecha(fecha string) (time.Time, error) {
	parsedTime, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}
	return parsedTime, nil
}

// NormalizarFecha coerces free-form input to an ISO date pointer, or nil when
// the value is empty or not date-shaped. A non-date value is never kept: the
// store only ever holds ISO dates or nothing.
func NormalizarFecha(valor string) *string {
	s := strings.TrimSpace(valor)
	if s == "" || s == "0" {
		return nil
	}
	for _, layout := range layoutsFecha {
		if t, err := time.Parse(layout, s); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}

// DiasEntre returns whole calendar days from desde to hasta, negative when
// hasta is in the past. Both arguments are truncated to their dates first.
func DiasEntre(desde, hasta time.Time) int {
	d := time.Date(desde.Year(), desde.Month(), desde.Day(), 0, 0, 0, 0, time.UTC)
	h := time.Date(hasta.Year(), hasta.Month(), hasta.Day(), 0, 0, 0, 0, time.UTC)
	return int(h.Sub(d).Hours() / 24)
}
