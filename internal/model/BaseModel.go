package model

import (
	"time"
)

type BaseModel struct {
	// Internal id, never exposed on the public validation path
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt *time.Time `gorm:"default:CURRENT_TIMESTAMP;not null" json:"-"`
	UpdatedAt *time.Time `gorm:"default:CURRENT_TIMESTAMP;not null" json:"-"`
}
