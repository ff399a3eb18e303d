package models

// Escaneo records one physical-document digitization entry for a case.
// Rows are owned by their Expediente and replaced wholesale on every edit.
type Escaneo struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	ExpedienteID uint    `gorm:"column:expediente_id;not null;index" json:"expediente_id"`
	FechaEscaner *string `gorm:"column:fecha_escaner" json:"fecha_escaner"`
	Folio        *string `gorm:"column:folio" json:"folio"`
	Responsable  *string `gorm:"column:responsable" json:"responsable"`
}

// TableName specifies the table name for Escaneo model
func (Escaneo) TableName() string {
	return "escaneos"
}

// Vacio reports whether the row carries no data worth persisting.
func (e *Escaneo) Vacio() bool {
	return (e.FechaEscaner == nil || *e.FechaEscaner == "") &&
		(e.Folio == nil || *e.Folio == "")
}
