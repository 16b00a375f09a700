package cierre

import (
	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domrecibo "github.com/rehacentro/clinica-api/internal/domain/recibo"
	"github.com/rehacentro/clinica-api/internal/models"
)

// Resumen agrega el estado financiero y operativo de un día.
type Resumen struct {
	TotalEsperado float64 `json:"total_esperado"`
	TotalCobrado  float64 `json:"total_cobrado"`
	Diferencia    float64 `json:"diferencia"`

	TotalCitas       int `json:"total_citas"`
	CitasPagadas     int `json:"citas_pagadas"`
	CitasPendientes  int `json:"citas_pendientes"`
	CitasConfirmadas int `json:"citas_confirmadas"`
	CitasCompletadas int `json:"citas_completadas"`
	CitasCanceladas  int `json:"citas_canceladas"`
}

// CalcularResumen recorre las citas del día (con su recibo precargado) y los
// recibos activos cobrados dentro del día. "Pagada" = tiene recibo Activo.
func CalcularResumen(citas []models.Cita, recibos []models.Recibo) Resumen {
	var r Resumen

	r.TotalCitas = len(citas)
	for _, c := range citas {
		r.TotalEsperado += c.Total

		switch c.Estado {
		case string(domcita.EstadoPendiente):
			r.CitasPendientes++
		case string(domcita.EstadoConfirmada):
			r.CitasConfirmadas++
		case string(domcita.EstadoCompletada):
			r.CitasCompletadas++
		case string(domcita.EstadoCancelada):
			r.CitasCanceladas++
		}

		if c.Recibo != nil && c.Recibo.Estado == domrecibo.EstadoActivo {
			r.CitasPagadas++
		}
	}

	for _, rec := range recibos {
		r.TotalCobrado += rec.Total
	}

	r.Diferencia = r.TotalCobrado - r.TotalEsperado
	return r
}

// Aplicar vuelca el resumen sobre el registro de cierre.
func (r Resumen) Aplicar(c *models.Cierre) {
	c.TotalEsperado = r.TotalEsperado
	c.TotalCobrado = r.TotalCobrado
	c.Diferencia = r.Diferencia
	c.TotalCitas = r.TotalCitas
	c.CitasPagadas = r.CitasPagadas
	c.CitasPendientes = r.CitasPendientes
	c.CitasConfirmadas = r.CitasConfirmadas
	c.CitasCompletadas = r.CitasCompletadas
	c.CitasCanceladas = r.CitasCanceladas
}
