package model

type Technician struct {
	BaseModel
	Nombre       string `gorm:"type:varchar(100);not null" json:"nombre" form:"nombre" binding:"required"`
	Especialidad string `gorm:"type:varchar(100)" json:"especialidad" form:"especialidad"`
	Email        string `gorm:"type:varchar(100)" json:"email" form:"email"`
	Telefono     string `gorm:"type:varchar(20)" json:"telefono" form:"telefono"`
	Activo       bool   `gorm:"not null;default:true" json:"activo" form:"activo"`
}

func (t Technician) TableName() string {
	return "tecnicos"
}
