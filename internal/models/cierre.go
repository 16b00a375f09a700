package models

import "time"

// Cierre diario de caja: foto financiera del día y candado de escritura.
// El índice único sobre fecha_cierre respalda "un cierre por fecha".
type Cierre struct {
	ID uint `gorm:"primaryKey" json:"id_cierre"`

	FechaCierre string `gorm:"size:10;uniqueIndex" json:"fecha_cierre"`
	HoraCierre  string `gorm:"size:8" json:"hora_cierre"`

	TotalEsperado float64 `json:"total_esperado"`
	TotalCobrado  float64 `json:"total_cobrado"`
	Diferencia    float64 `json:"diferencia"`

	TotalCitas       int `json:"total_citas"`
	CitasPagadas     int `json:"citas_pagadas"`
	CitasPendientes  int `json:"citas_pendientes"`
	CitasConfirmadas int `json:"citas_confirmadas"`
	CitasCompletadas int `json:"citas_completadas"`
	CitasCanceladas  int `json:"citas_canceladas"`

	Notas string `gorm:"type:text" json:"notas"`

	UsuarioCierreID uint    `json:"id_usuario_cierre"`
	UsuarioCierre   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"usuario_cierre"`

	Estado string `gorm:"size:20;default:'Activo'" json:"estado"`

	MotivoReapertura    *string    `gorm:"size:255" json:"motivo_reapertura,omitempty"`
	FechaReapertura     *time.Time `json:"fecha_reapertura,omitempty"`
	UsuarioReaperturaID *uint      `json:"id_usuario_reapertura,omitempty"`
	UsuarioReapertura   *Usuario   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"usuario_reapertura,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
