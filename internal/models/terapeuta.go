package models

import "time"

type Terapeuta struct {
	ID uint `gorm:"primaryKey" json:"id_terapeuta"`

	Nombre       string `gorm:"size:100;not null" json:"nombre"`
	Apellido     string `gorm:"size:100" json:"apellido"`
	Especialidad string `gorm:"size:50" json:"especialidad"`
	Telefono     string `gorm:"size:20" json:"telefono"`
	Email        string `gorm:"size:100" json:"email"`
	Activo       bool   `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
