package cita

import (
	"context"

	"github.com/rehacentro/clinica-api/internal/audit"
	domain "github.com/rehacentro/clinica-api/internal/domain/cita"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil = no modificar.
type ActualizarCitaInput struct {
	CitaID uint

	PacienteID  *uint
	TerapeutaID *uint
	Fecha       *string
	HoraInicio  *string
	TipoTerapia *string
	Estado      *string
	ServicioIDs *[]uint

	UsuarioID uint
}

// ======================================================
// USE CASE
// ======================================================

type ActualizarCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewActualizarCita(repo domain.Repository, audit *audit.Dispatcher) *ActualizarCita {
	return &ActualizarCita{repo: repo, audit: audit}
}

func (uc *ActualizarCita) Execute(
	ctx context.Context,
	in ActualizarCitaInput,
) (*models.Cita, error) {

	c, err := uc.repo.ObtenerPorID(ctx, in.CitaID)
	if err != nil {
		return nil, err
	}

	if in.PacienteID != nil {
		c.PacienteID = *in.PacienteID
	}
	if in.TerapeutaID != nil {
		c.TerapeutaID = *in.TerapeutaID
	}
	if in.Fecha != nil {
		if err := domain.ValidarFecha(*in.Fecha); err != nil {
			return nil, err
		}
		c.Fecha = *in.Fecha
	}
	if in.HoraInicio != nil {
		hora, err := domain.NormalizarHora(*in.HoraInicio)
		if err != nil {
			return nil, err
		}
		c.HoraInicio = hora
		if c.HoraFin, err = domain.HoraFin(hora, c.DuracionMinutos); err != nil {
			return nil, err
		}
	}
	if in.TipoTerapia != nil {
		c.TipoTerapia = *in.TipoTerapia
	}
	if in.Estado != nil {
		if !domain.EstadoValido(*in.Estado) {
			return nil, httperr.ErrBusinessf("estado_invalido", "Estado de cita inválido: %q", *in.Estado)
		}
		c.Estado = *in.Estado
	}

	maxima, err := domain.CapacidadMaxima(c.TipoTerapia)
	if err != nil {
		return nil, err
	}

	// solo se revalida capacidad si la cita sigue ocupando el slot
	revalidar := domain.EsActiva(c.Estado)

	reemplazar := in.ServicioIDs != nil
	var servicioIDs []uint
	if reemplazar {
		servicioIDs = *in.ServicioIDs

		servicios, err := uc.repo.ObtenerServiciosActivos(ctx, servicioIDs)
		if err != nil {
			return nil, err
		}
		var total float64
		for _, s := range servicios {
			total += s.Costo
		}
		c.Total = total
	}

	// las asociaciones precargadas no deben reescribirse en el Save
	c.Servicios = nil
	c.Recibo = nil

	if err := uc.repo.ActualizarConValidacion(ctx, c, servicioIDs, reemplazar, revalidar, maxima); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &in.UsuarioID,
		Accion:    "cita_actualizada",
		Entidad:   "cita",
		EntidadID: &c.ID,
	})

	return uc.repo.ObtenerPorID(ctx, c.ID)
}
