package cierre

import (
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

// ===============================
// Estados del cierre
// ===============================

const (
	EstadoActivo    = "Activo"
	EstadoReabierto = "Reabierto"
)

const MotivoPorDefecto = "Sin motivo especificado"

// DiaBloqueado: un día está bloqueado sii existe un cierre con estado Activo.
func DiaBloqueado(c *models.Cierre) bool {
	return c != nil && c.Estado == EstadoActivo
}

// PuedeCerrar rechaza cerrar un día que ya tiene un cierre activo.
func PuedeCerrar(existente *models.Cierre) error {
	if existente != nil && existente.Estado == EstadoActivo {
		return httperr.ErrBusinessf(
			"cierre_activo",
			"Ya existe un cierre activo para la fecha %s, debe reabrirlo primero",
			existente.FechaCierre,
		)
	}
	return nil
}

// PuedeReabrir: la reapertura es una transición de un solo uso por ciclo.
func PuedeReabrir(estado string) error {
	if estado == EstadoReabierto {
		return httperr.ErrBusinessf(
			"cierre_reabierto",
			"El cierre ya fue reabierto, debe cerrarse de nuevo antes de otra reapertura",
		)
	}
	return nil
}
