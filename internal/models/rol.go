package models

import "time"

type Rol struct {
	ID uint `gorm:"primaryKey" json:"id_rol"`

	Nombre  string `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	EsAdmin bool   `gorm:"default:false" json:"es_admin"`

	Permisos []Permiso `gorm:"many2many:rol_permisos;" json:"permisos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Permiso identifica una acción por código "modulo.accion", ej. "citas.crear".
type Permiso struct {
	ID uint `gorm:"primaryKey" json:"id_permiso"`

	Codigo      string `gorm:"size:100;uniqueIndex;not null" json:"codigo"`
	Descripcion string `gorm:"size:255" json:"descripcion"`

	CreatedAt time.Time `json:"created_at"`
}
