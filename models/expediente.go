package models

import (
	"time"
)

// Estado values that mark a case as no longer active for deadline alerts
const (
	EstadoEnTramite     = "EN TRÁMITE"
	EstadoAutoArchivo   = "AUTO DE ARCHIVO"
	EstadoArchivado     = "ARCHIVADO"
	EstadoInvestigacion = "INVESTIGACIÓN DISCIPLINARIA"
	EstadoPliegoCargos  = "PLIEGO DE CARGOS"
	EstadoFalloSancion  = "FALLO SANCIONATORIO"
	EstadoFalloAbsuelto = "FALLO ABSOLUTORIO"
)

// Etapa labels offered in the forms. The column itself is a free string:
// there is no enforced transition logic, these are only suggestions.
var Etapas = []string{
	"INDAGACIÓN PREVIA",
	"INVESTIGACIÓN DISCIPLINARIA",
	"ARCHIVADO",
	"SANCIONADO",
	"OTRO",
}

var Estados = []string{
	EstadoEnTramite,
	EstadoAutoArchivo,
	EstadoArchivado,
	EstadoInvestigacion,
	EstadoPliegoCargos,
	EstadoFalloSancion,
	EstadoFalloAbsuelto,
}

// Meses holds the Spanish month names in calendar order; positions map
// month name -> ordinal for trend sorting and the seguimiento grid.
var Meses = []string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// MesOrdinal returns the 1-12 position of a Spanish month name, or 0 when
// the name is not one of the twelve.
func MesOrdinal(mes string) int {
	for i, m := range Meses {
		if m == mes {
			return i + 1
		}
	}
	return 0
}

// PlazoPorDefecto is the default phase deadline length in days.
const PlazoPorDefecto = 180

// Expediente is a disciplinary case file. Column names follow the legacy
// OCDI schema so existing exports and the import sheet keep lining up.
//
// Date columns are TEXT holding ISO dates (or nothing). The vencimiento
// dates are stored independently and are never recomputed from
// fecha_apertura + plazo; the system trusts whatever was entered.
type Expediente struct {
	ID uint `gorm:"primarykey" json:"id"`

	// Bloque 1: Identificación
	NumeroExpediente string  `gorm:"column:n_expediente;not null" json:"n_expediente"`
	Anio             *int    `gorm:"column:anio" json:"anio"`
	Mes              *string `gorm:"column:mes" json:"mes"`
	OrigenProceso    *string `gorm:"column:origen_proceso" json:"origen_proceso"`
	NumeroRadicado   *string `gorm:"column:n_radicado" json:"n_radicado"`
	FechaRadicado    *string `gorm:"column:fecha_radicado" json:"fecha_radicado"`
	FechaSiias       *string `gorm:"column:fecha_siias" json:"fecha_siias"`
	IngresoSiias     string  `gorm:"column:ingreso_siias;default:NO" json:"ingreso_siias"`
	IngresoSiad      string  `gorm:"column:ingreso_siad;default:NO" json:"ingreso_siad"`
	FechaIngresoSiad *string `gorm:"column:fecha_ingreso_siad" json:"fecha_ingreso_siad"`
	IngresoSid4      string  `gorm:"column:ingreso_sid4;default:NO" json:"ingreso_sid4"`

	// Bloque 2: Asignación y partes
	NombreAbogado  *string `gorm:"column:nombre_abogado" json:"nombre_abogado"`
	Impedimento    string  `gorm:"column:impedimento;default:NO" json:"impedimento"`
	Investigado    *string `gorm:"column:investigado" json:"investigado"`
	PerfilIndagado *string `gorm:"column:perfil_indagado" json:"perfil_indagado"`
	EntidadOrigen  *string `gorm:"column:entidad_origen" json:"entidad_origen"`
	Quejoso        *string `gorm:"column:quejoso" json:"quejoso"`

	// Bloque 3: Asunto y tipología
	Asunto                 *string `gorm:"column:asunto" json:"asunto"`
	Tipologia              *string `gorm:"column:tipologia" json:"tipologia"`
	DescripcionTipologia   *string `gorm:"column:descripcion_tipologia" json:"descripcion_tipologia"`
	RelacionadoSiniestro   string  `gorm:"column:relacionado_siniestro;default:NO" json:"relacionado_siniestro"`
	ResponsableSiniestro   *string `gorm:"column:responsable_siniestro" json:"responsable_siniestro"`
	RelacionadoAcoso       string  `gorm:"column:relacionado_acoso;default:NO" json:"relacionado_acoso"`
	ResponsableAcoso       *string `gorm:"column:responsable_acoso" json:"responsable_acoso"`
	RelacionadoCorrupcion  string  `gorm:"column:relacionado_corrupcion;default:NO" json:"relacionado_corrupcion"`
	ValoresInstitucionales *string `gorm:"column:valores_institucionales" json:"valores_institucionales"`
	FechaHechos            *string `gorm:"column:fecha_hechos" json:"fecha_hechos"`

	// Bloque 4: Indagación Previa
	FechaAperturaIndagacion *string `gorm:"column:fecha_apertura_indagacion" json:"fecha_apertura_indagacion"`
	NumeroAutoAperturaInd   *string `gorm:"column:numero_auto_apertura_ind" json:"numero_auto_apertura_ind"`
	FechaAutoAperturaInd    *string `gorm:"column:fecha_auto_apertura_ind" json:"fecha_auto_apertura_ind"`
	PlazoInd                int     `gorm:"column:plazo_ind;default:180" json:"plazo_ind"`
	FechaVencimientoInd     *string `gorm:"column:fecha_vencimiento_ind" json:"fecha_vencimiento_ind"`
	NumeroAutoTrasladoInd   *string `gorm:"column:numero_auto_traslado_ind" json:"numero_auto_traslado_ind"`
	FechaAutoTrasladoInd    *string `gorm:"column:fecha_auto_traslado_ind" json:"fecha_auto_traslado_ind"`
	NumeroAutoArchivoInd    *string `gorm:"column:numero_auto_archivo_ind" json:"numero_auto_archivo_ind"`
	FechaAutoArchivoInd     *string `gorm:"column:fecha_auto_archivo_ind" json:"fecha_auto_archivo_ind"`

	// Bloque 5: Investigación Disciplinaria
	FechaAperturaInvestigacion *string `gorm:"column:fecha_apertura_investigacion" json:"fecha_apertura_investigacion"`
	NumeroAutoAperturaInv      *string `gorm:"column:numero_auto_apertura_inv" json:"numero_auto_apertura_inv"`
	FechaAutoAperturaInv       *string `gorm:"column:fecha_auto_apertura_inv" json:"fecha_auto_apertura_inv"`
	PlazoInv                   int     `gorm:"column:plazo_inv;default:180" json:"plazo_inv"`
	FechaVencimientoInv        *string `gorm:"column:fecha_vencimiento_inv" json:"fecha_vencimiento_inv"`
	NumeroAutoTrasladoInv      *string `gorm:"column:numero_auto_traslado_inv" json:"numero_auto_traslado_inv"`
	FechaAutoTrasladoInv       *string `gorm:"column:fecha_auto_traslado_inv" json:"fecha_auto_traslado_inv"`
	NumeroAutoArchivoInv       *string `gorm:"column:numero_auto_archivo_inv" json:"numero_auto_archivo_inv"`
	FechaAutoArchivoInv        *string `gorm:"column:fecha_auto_archivo_inv" json:"fecha_auto_archivo_inv"`

	// Bloque 6: Cierre
	Etapa                 *string `gorm:"column:etapa" json:"etapa"`
	EstadoProceso         *string `gorm:"column:estado_proceso" json:"estado_proceso"`
	ObservacionesFinales  *string `gorm:"column:observaciones_finales;type:text" json:"observaciones_finales"`

	// Metadata
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy *string   `gorm:"column:created_by" json:"created_by"`

	// Relationships
	Escaneos    []Escaneo   `gorm:"foreignKey:ExpedienteID;constraint:OnDelete:CASCADE" json:"escaneos,omitempty"`
	Actuaciones []Actuacion `gorm:"foreignKey:ExpedienteID;constraint:OnDelete:CASCADE" json:"actuaciones,omitempty"`
}

// TableName specifies the table name for Expediente model
func (Expediente) TableName() string {
	return "expedientes"
}

// EstadoCerrado reports whether the estado marks the case as archived or
// under a filing order, which excludes it from overdue alerts.
func (e *Expediente) EstadoCerrado() bool {
	if e.EstadoProceso == nil {
		return false
	}
	return *e.EstadoProceso == EstadoAutoArchivo || *e.EstadoProceso == EstadoArchivado
}

// AbogadoOSinAsignar returns the assigned lawyer or the sentinel label.
func (e *Expediente) AbogadoOSinAsignar() string {
	if e.NombreAbogado == nil || *e.NombreAbogado == "" {
		return "Sin asignar"
	}
	return *e.NombreAbogado
}
