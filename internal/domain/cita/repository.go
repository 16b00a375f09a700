package cita

import (
	"context"

	"github.com/rehacentro/clinica-api/internal/models"
)

// Bloque identifica el cubo de capacidad: fecha + hora (rango del bloque)
// + terapeuta + tipo de terapia. ExcluirCitaID se usa al revalidar una
// edición contra sí misma (cero = no excluir).
type Bloque struct {
	Fecha         string
	HoraDesde     string
	HoraHasta     string
	TipoTerapia   string
	TerapeutaID   uint
	ExcluirCitaID uint
}

type Repository interface {
	// -------- Capacidad --------
	ContarEnBloque(ctx context.Context, b Bloque) (int64, error)

	// PacientesOcupadosEnSlot devuelve qué pacientes ya tienen una cita no
	// cancelada en el slot exacto (fecha, hora, terapeuta, tipo).
	PacientesOcupadosEnSlot(
		ctx context.Context,
		fecha string,
		horaInicio string,
		terapeutaID uint,
		tipoTerapia string,
		pacienteIDs []uint,
	) ([]uint, error)

	// -------- Servicios --------
	ObtenerServiciosActivos(
		ctx context.Context,
		ids []uint,
	) ([]models.Servicio, error)

	// -------- Citas --------
	CrearConValidacion(
		ctx context.Context,
		c *models.Cita,
		servicioIDs []uint,
		capacidadMaxima int,
	) error

	CrearLoteConValidacion(
		ctx context.Context,
		citas []*models.Cita,
		servicioIDs []uint,
		capacidadMaxima int,
	) error

	ObtenerPorID(ctx context.Context, id uint) (*models.Cita, error)

	ActualizarConValidacion(
		ctx context.Context,
		c *models.Cita,
		servicioIDs []uint,
		reemplazarServicios bool,
		revalidar bool,
		capacidadMaxima int,
	) error

	Eliminar(ctx context.Context, id uint) error
}
