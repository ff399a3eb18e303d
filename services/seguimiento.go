package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"ocdi_app_go/models"
)

// Free text typed into the monthly grid goes straight back into HTML, so it
// is stripped of any markup before it is stored.
var politicaTexto = bluemonday.StrictPolicy()

// GuardarActuacion upserts the activity note keyed by (expediente, anio,
// mes): a non-empty description creates or overwrites the note, an empty
// one deletes whatever exists for that key.
func GuardarActuacion(db *gorm.DB, expedienteID uint, anio int, mes, descripcion string, creadoPor *string) error {
	mes = strings.TrimSpace(mes)
	descripcion = strings.TrimSpace(politicaTexto.Sanitize(descripcion))

	var existente models.Actuacion
	err := db.Where("expediente_id = ? AND anio = ? AND mes = ?", expedienteID, anio, mes).
		First(&existente).Error

	switch {
	case err == nil && descripcion != "":
		existente.Descripcion = descripcion
		existente.CreatedBy = creadoPor
		if err := db.Save(&existente).Error; err != nil {
			return fmt.Errorf("failed to update actuacion: %w", err)
		}
	case err == nil:
		if err := db.Delete(&existente).Error; err != nil {
			return fmt.Errorf("failed to delete actuacion: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound) && descripcion != "":
		nueva := models.Actuacion{
			ExpedienteID: expedienteID,
			Anio:         anio,
			Mes:          mes,
			Descripcion:  descripcion,
			CreatedBy:    creadoPor,
		}
		if err := db.Create(&nueva).Error; err != nil {
			return fmt.Errorf("failed to create actuacion: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Empty description for a missing key: nothing to do.
	default:
		return fmt.Errorf("failed to look up actuacion: %w", err)
	}
	return nil
}

// ActuacionesDelAnio loads the year's notes indexed by (expediente_id, mes)
// for the seguimiento grid.
func ActuacionesDelAnio(db *gorm.DB, anio int) (map[uint]map[string]models.Actuacion, error) {
	var actuaciones []models.Actuacion
	if err := db.Where("anio = ?", anio).Find(&actuaciones).Error; err != nil {
		return nil, fmt.Errorf("failed to load actuaciones for %d: %w", anio, err)
	}

	indice := map[uint]map[string]models.Actuacion{}
	for _, a := range actuaciones {
		if indice[a.ExpedienteID] == nil {
			indice[a.ExpedienteID] = map[string]models.Actuacion{}
		}
		indice[a.ExpedienteID][a.Mes] = a
	}
	return indice, nil
}
