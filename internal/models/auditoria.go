package models

import "time"

type Auditoria struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UsuarioID *uint  `json:"id_usuario"`
	Accion    string `gorm:"size:50;not null" json:"accion"`

	Entidad   string `gorm:"size:50" json:"entidad"`
	EntidadID *uint  `json:"id_entidad"`
	Metadata  string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
