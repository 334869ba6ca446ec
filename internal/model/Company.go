package model

// Company is the single record describing the services company, always stored with id constant.COMPANY_ID
type Company struct {
	BaseModel
	Nombre    string `gorm:"type:varchar(100);not null" json:"nombre" form:"nombre" binding:"required"`
	Rut       string `gorm:"type:varchar(12)" json:"rut" form:"rut"`
	Direccion string `gorm:"type:text" json:"direccion" form:"direccion"`
	Telefono  string `gorm:"type:varchar(20)" json:"telefono" form:"telefono"`
	Email     string `gorm:"type:varchar(100)" json:"email" form:"email"`
}

func (c Company) TableName() string {
	return "empresa"
}
