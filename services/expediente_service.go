package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ocdi_app_go/models"
)

// ErrExpedienteNoEncontrado signals a lookup by an id that does not exist.
var ErrExpedienteNoEncontrado = errors.New("expediente no encontrado")

// FiltroExpedientes carries the list-view query parameters. Empty fields
// are ignored.
type FiltroExpedientes struct {
	Q       string // free text over n_expediente, investigado, asunto
	Anio    string
	Etapa   string // substring match
	Abogado string // substring match
}

// ListarExpedientes returns cases matching the filter, newest first.
func ListarExpedientes(db *gorm.DB, filtro FiltroExpedientes) ([]models.Expediente, error) {
	query := db.Model(&models.Expediente{})

	if filtro.Q != "" {
		like := "%" + filtro.Q + "%"
		query = query.Where("n_expediente LIKE ? OR investigado LIKE ? OR asunto LIKE ?", like, like, like)
	}
	if filtro.Anio != "" {
		query = query.Where("anio = ?", filtro.Anio)
	}
	if filtro.Etapa != "" {
		query = query.Where("etapa LIKE ?", "%"+filtro.Etapa+"%")
	}
	if filtro.Abogado != "" {
		query = query.Where("nombre_abogado LIKE ?", "%"+filtro.Abogado+"%")
	}

	var exps []models.Expediente
	if err := query.Order("anio DESC, n_expediente DESC").Find(&exps).Error; err != nil {
		return nil, fmt.Errorf("failed to list expedientes: %w", err)
	}
	return exps, nil
}

// ObtenerExpediente loads one case with its children.
func ObtenerExpediente(db *gorm.DB, id uint) (*models.Expediente, error) {
	var exp models.Expediente
	err := db.Preload("Escaneos", func(db *gorm.DB) *gorm.DB { return db.Order("escaneos.id") }).
		Preload("Actuaciones", func(db *gorm.DB) *gorm.DB { return db.Order("actuaciones.anio DESC, actuaciones.id DESC") }).
		First(&exp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExpedienteNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load expediente %d: %w", id, err)
	}
	return &exp, nil
}

// ValidarExpediente collects the form-level validation errors. No partial
// write happens while this returns a non-empty list.
func ValidarExpediente(e *models.Expediente) []string {
	var errores []string
	if e.NumeroExpediente == "" {
		errores = append(errores, "El número de expediente es obligatorio.")
	}
	if e.Anio == nil {
		errores = append(errores, "El año es obligatorio.")
	}
	return errores
}

// CrearExpediente inserts a case and its scan-log rows in one transaction.
// Empty scan rows (no date and no folio) are dropped.
func CrearExpediente(db *gorm.DB, exp *models.Expediente, escaneos []models.Escaneo) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exp).Error; err != nil {
			return fmt.Errorf("failed to create expediente: %w", err)
		}
		return insertarEscaneos(tx, exp.ID, escaneos)
	})
}

// ActualizarExpediente replaces every scalar field of the stored case and
// swaps the scan log wholesale: existing rows are deleted and the submitted
// set re-inserted. Submitting zero rows therefore clears the log.
func ActualizarExpediente(db *gorm.DB, id uint, exp *models.Expediente, escaneos []models.Escaneo) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existente models.Expediente
		if err := tx.First(&existente, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExpedienteNoEncontrado
			}
			return err
		}

		exp.ID = id
		exp.CreatedAt = existente.CreatedAt
		exp.CreatedBy = existente.CreatedBy
		// Select("*") forces a full replace so cleared fields become NULL
		// instead of keeping their previous values.
		if err := tx.Model(&models.Expediente{ID: id}).Select("*").
			Omit("id", "created_at", "created_by").Updates(exp).Error; err != nil {
			return fmt.Errorf("failed to update expediente %d: %w", id, err)
		}

		if err := tx.Where("expediente_id = ?", id).Delete(&models.Escaneo{}).Error; err != nil {
			return fmt.Errorf("failed to clear escaneos: %w", err)
		}
		return insertarEscaneos(tx, id, escaneos)
	})
}

func insertarEscaneos(tx *gorm.DB, expedienteID uint, escaneos []models.Escaneo) error {
	for i := range escaneos {
		esc := escaneos[i]
		if esc.Vacio() {
			continue
		}
		esc.ID = 0
		esc.ExpedienteID = expedienteID
		if err := tx.Create(&esc).Error; err != nil {
			return fmt.Errorf("failed to create escaneo: %w", err)
		}
	}
	return nil
}

// EliminarExpediente removes a case and, through the cascade constraint,
// its escaneos and actuaciones. Returns the case number for the flash
// message on the list view.
func EliminarExpediente(db *gorm.DB, id uint) (string, error) {
	var exp models.Expediente
	if err := db.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrExpedienteNoEncontrado
		}
		return "", err
	}
	if err := db.Select("Escaneos", "Actuaciones").Delete(&exp).Error; err != nil {
		return "", fmt.Errorf("failed to delete expediente %d: %w", id, err)
	}
	return exp.NumeroExpediente, nil
}

// ContarExpedientes returns the total number of stored cases.
func ContarExpedientes(db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Model(&models.Expediente{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// AbogadosDistintos lists the lawyers present in the table, sorted.
func AbogadosDistintos(db *gorm.DB) ([]string, error) {
	var abogados []string
	err := db.Model(&models.Expediente{}).Distinct("nombre_abogado").
		Where("nombre_abogado IS NOT NULL").Order("nombre_abogado").
		Pluck("nombre_abogado", &abogados).Error
	return abogados, err
}

// AniosDistintos lists the years present in the table, newest first.
func AniosDistintos(db *gorm.DB) ([]int, error) {
	var anios []int
	err := db.Model(&models.Expediente{}).Distinct("anio").
		Where("anio IS NOT NULL").Order("anio DESC").
		Pluck("anio", &anios).Error
	return anios, err
}

// EtapasDistintas lists the stage values actually stored, so export filters
// match real data rather than the suggested labels.
func EtapasDistintas(db *gorm.DB) ([]string, error) {
	var etapas []string
	err := db.Model(&models.Expediente{}).Distinct("etapa").
		Where("etapa IS NOT NULL").Order("etapa").
		Pluck("etapa", &etapas).Error
	return etapas, err
}

// EstadosDistintos lists the status values actually stored.
func EstadosDistintos(db *gorm.DB) ([]string, error) {
	var estados []string
	err := db.Model(&models.Expediente{}).Distinct("estado_proceso").
		Where("estado_proceso IS NOT NULL").Order("estado_proceso").
		Pluck("estado_proceso", &estados).Error
	return estados, err
}
