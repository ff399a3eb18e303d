package models

import "time"

// Actuacion is a monthly activity note for a case, keyed by
// (expediente, anio, mes): at most one note per case per month.
type Actuacion struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ExpedienteID uint      `gorm:"column:expediente_id;not null;index:idx_actuacion_clave" json:"expediente_id"`
	Mes          string    `gorm:"column:mes;index:idx_actuacion_clave" json:"mes"`
	Anio         int       `gorm:"column:anio;index:idx_actuacion_clave" json:"anio"`
	Descripcion  string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    *string   `gorm:"column:created_by" json:"created_by"`
}

// TableName specifies the table name for Actuacion model
func (Actuacion) TableName() string {
	return "actuaciones"
}
