package models

import "time"

type Recibo struct {
	ID uint `gorm:"primaryKey" json:"id_recibo"`

	CitaID uint  `gorm:"uniqueIndex" json:"id_cita"`
	Cita   *Cita `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cita,omitempty"`

	NumeroRecibo string    `gorm:"size:20;uniqueIndex" json:"numero_recibo"`
	FechaCobro   time.Time `gorm:"index" json:"fecha_cobro"`
	Total        float64   `json:"total"`
	Estado       string    `gorm:"size:20;default:'Activo'" json:"estado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
