package cierre

import (
	"context"

	"github.com/rehacentro/clinica-api/internal/models"
)

type FiltroHistorial struct {
	FechaDesde string
	FechaHasta string
	Page       int
	Limit      int
}

type Repository interface {
	// -------- Datos del día --------
	CitasDelDia(ctx context.Context, fecha string) ([]models.Cita, error)

	RecibosActivosDelDia(ctx context.Context, fecha string) ([]models.Recibo, error)

	// -------- Cierre --------
	ObtenerPorFecha(ctx context.Context, fecha string) (*models.Cierre, error)

	ObtenerPorID(ctx context.Context, id uint) (*models.Cierre, error)

	Crear(ctx context.Context, c *models.Cierre) error

	Actualizar(ctx context.Context, c *models.Cierre) error

	Listar(ctx context.Context, f FiltroHistorial) ([]models.Cierre, int64, error)

	Eliminar(ctx context.Context, id uint) error
}
