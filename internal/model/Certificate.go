package model

import (
	"time"

	"github.com/SeakMengs/MaintCert/internal/constant"
	"gorm.io/datatypes"
)

type Certificate struct {
	BaseModel
	// Both identifiers are assigned by the repository inside the creation transaction and never updated
	NumeroCertificado      string                     `gorm:"type:varchar(50);uniqueIndex;not null;<-:create" json:"numeroCertificado"`
	CodigoValidacion       string                     `gorm:"type:varchar(10);uniqueIndex;not null;<-:create" json:"codigoValidacion"`
	Tipo                   constant.CertificateType   `gorm:"type:varchar(20);not null;index" json:"tipo"`
	Estado                 constant.CertificateStatus `gorm:"type:varchar(20);not null;default:'emitido';index" json:"estado"`
	FechaMantenimiento     time.Time                  `gorm:"type:date;not null" json:"fechaMantenimiento"`
	FechaEmision           time.Time                  `gorm:"type:date;not null" json:"fechaEmision"`
	SolicitudesCliente     string                     `gorm:"type:text" json:"solicitudesCliente"`
	ObservacionesGenerales string                     `gorm:"type:text" json:"observacionesGenerales"`
	ChecklistData          datatypes.JSON             `json:"checklistData"`

	ClienteID     uint         `gorm:"not null;index" json:"clienteId"`
	InstalacionID uint         `gorm:"not null;index" json:"instalacionId"`
	TecnicoID     uint         `gorm:"not null;index" json:"tecnicoId"`
	Cliente       Client       `gorm:"foreignKey:ClienteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cliente"`
	Instalacion   Installation `gorm:"foreignKey:InstalacionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"instalacion"`
	Tecnico       Technician   `gorm:"foreignKey:TecnicoID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"tecnico"`
}

func (c Certificate) TableName() string {
	return "certificados"
}

// CertificateSequence holds the last certificate number handed out for a type within a month
type CertificateSequence struct {
	Tipo      constant.CertificateType `gorm:"type:varchar(20);primaryKey"`
	Year      int                      `gorm:"primaryKey;autoIncrement:false"`
	Month     int                      `gorm:"primaryKey;autoIncrement:false"`
	LastValue int                      `gorm:"not null"`
}

func (cs CertificateSequence) TableName() string {
	return "certificado_secuencias"
}

// Every model managed by the migrate command, in dependency order
var MigrateModels = []any{
	&User{},
	&Company{},
	&Client{},
	&Installation{},
	&Technician{},
	&Certificate{},
	&CertificateSequence{},
}
