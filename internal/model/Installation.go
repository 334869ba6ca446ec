package model

type Installation struct {
	BaseModel
	Nombre      string `gorm:"type:varchar(100);not null" json:"nombre" form:"nombre" binding:"required"`
	Direccion   string `gorm:"type:varchar(255);not null" json:"direccion" form:"direccion" binding:"required"`
	TipoSistema string `gorm:"type:varchar(100)" json:"tipoSistema" form:"tipoSistema"`
	Activo      bool   `gorm:"not null;default:true" json:"activo" form:"activo"`

	ClienteID uint   `gorm:"not null;index" json:"clienteId" form:"clienteId" binding:"required"`
	Cliente   Client `gorm:"foreignKey:ClienteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
}

func (i Installation) TableName() string {
	return "instalaciones"
}
