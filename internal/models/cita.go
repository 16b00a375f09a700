package models

import "time"

// Fechas y horas se guardan como texto plano ("2006-01-02", "15:04:05"):
// el conteo de capacidad compara bloques de hora por rango de texto.
type Cita struct {
	ID uint `gorm:"primaryKey" json:"id_cita"`

	PacienteID uint     `gorm:"index" json:"id_paciente"`
	Paciente   Paciente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"paciente"`

	TerapeutaID uint      `gorm:"index" json:"id_terapeuta"`
	Terapeuta   Terapeuta `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"terapeuta"`

	Fecha      string `gorm:"size:10;index:idx_citas_bloque,priority:1" json:"fecha"`
	HoraInicio string `gorm:"size:8;index:idx_citas_bloque,priority:2" json:"hora_inicio"`
	HoraFin    string `gorm:"size:8" json:"hora_fin"`

	Estado      string `gorm:"size:20;default:'Pendiente'" json:"estado"`
	TipoTerapia string `gorm:"size:20" json:"tipo_terapia"`

	DuracionMinutos int     `gorm:"default:60" json:"duracion_minutos"`
	Total           float64 `json:"total"`

	Servicios []Servicio `gorm:"many2many:cita_servicios;" json:"servicios"`
	Recibo    *Recibo    `gorm:"foreignKey:CitaID" json:"recibo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
