package model

import "github.com/SeakMengs/MaintCert/internal/constant"

type User struct {
	BaseModel
	Username string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"username" form:"username" binding:"required"`
	Password string            `gorm:"type:varchar(255);not null" json:"-" form:"-"`
	Nombre   string            `gorm:"type:varchar(100);not null" json:"nombre" form:"nombre" binding:"required"`
	Email    string            `gorm:"type:varchar(100);uniqueIndex;not null" json:"email" form:"email" binding:"required,email"`
	Rol      constant.UserRole `gorm:"type:varchar(20);not null;default:'tecnico'" json:"rol" form:"rol"`
	Activo   bool              `gorm:"not null;default:true" json:"activo" form:"activo"`
}

func (u User) TableName() string {
	return "usuarios"
}
