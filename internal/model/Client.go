package model

type Client struct {
	BaseModel
	Nombre    string `gorm:"type:varchar(100);not null" json:"nombre" form:"nombre" binding:"required"`
	Rut       string `gorm:"type:varchar(12)" json:"rut" form:"rut"`
	Contacto  string `gorm:"type:varchar(100)" json:"contacto" form:"contacto"`
	Telefono  string `gorm:"type:varchar(20)" json:"telefono" form:"telefono"`
	Email     string `gorm:"type:varchar(100)" json:"email" form:"email"`
	Direccion string `gorm:"type:text" json:"direccion" form:"direccion"`
	Activo    bool   `gorm:"not null;default:true" json:"activo" form:"activo"`
}

func (c Client) TableName() string {
	return "clientes"
}
