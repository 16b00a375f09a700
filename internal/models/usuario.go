package models

import "time"

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id_usuario"`

	Nombre       string `gorm:"size:100;not null" json:"nombre"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`

	RolID uint `json:"id_rol"`
	Rol   Rol  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"rol"`

	Activo bool `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
