package models

import "time"

type Servicio struct {
	ID uint `gorm:"primaryKey" json:"id_servicio"`

	Nombre      string  `gorm:"size:100;not null" json:"nombre"`
	Descripcion string  `gorm:"size:255" json:"descripcion"`
	Costo       float64 `json:"costo"`
	Activo      bool    `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
