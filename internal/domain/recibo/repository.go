package recibo

import (
	"context"

	"github.com/rehacentro/clinica-api/internal/models"
)

type Repository interface {
	ObtenerCita(ctx context.Context, citaID uint) (*models.Cita, error)

	ExisteReciboParaCita(ctx context.Context, citaID uint) (bool, error)

	// MaxReciboID devuelve el id numérico más alto emitido (cero si no hay).
	MaxReciboID(ctx context.Context) (uint, error)

	// Emitir crea el recibo y marca la cita como Completada en una sola
	// transacción.
	Emitir(ctx context.Context, r *models.Recibo) error

	ObtenerPorID(ctx context.Context, id uint) (*models.Recibo, error)

	ObtenerCompleto(ctx context.Context, id uint) (*models.Recibo, error)

	// Anular marca el recibo como Anulado y, si corresponde, revierte el
	// estado de la cita, en una sola transacción.
	Anular(ctx context.Context, r *models.Recibo, estadoCita string, revertirCita bool) error
}
