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

type CrearCitaInput struct {
	PacienteID  uint
	TerapeutaID uint
	Fecha       string
	HoraInicio  string
	TipoTerapia string
	Estado      string
	ServicioIDs []uint

	UsuarioID uint
}

// ======================================================
// USE CASE
// ======================================================

type CrearCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCrearCita(repo domain.Repository, audit *audit.Dispatcher) *CrearCita {
	return &CrearCita{repo: repo, audit: audit}
}

func (uc *CrearCita) Execute(
	ctx context.Context,
	in CrearCitaInput,
) (*models.Cita, error) {

	if err := domain.ValidarFecha(in.Fecha); err != nil {
		return nil, err
	}

	hora, err := domain.NormalizarHora(in.HoraInicio)
	if err != nil {
		return nil, err
	}

	maxima, err := domain.CapacidadMaxima(in.TipoTerapia)
	if err != nil {
		return nil, err
	}

	estado := in.Estado
	if estado == "" {
		estado = string(domain.EstadoInicial())
	}
	if !domain.EstadoValido(estado) {
		return nil, httperr.ErrBusinessf("estado_invalido", "Estado de cita inválido: %q", estado)
	}

	horaFin, err := domain.HoraFin(hora, domain.DuracionMinutos)
	if err != nil {
		return nil, err
	}

	// el total sale de los servicios activos adjuntos
	servicios, err := uc.repo.ObtenerServiciosActivos(ctx, in.ServicioIDs)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, s := range servicios {
		total += s.Costo
	}

	c := &models.Cita{
		PacienteID:      in.PacienteID,
		TerapeutaID:     in.TerapeutaID,
		Fecha:           in.Fecha,
		HoraInicio:      hora,
		HoraFin:         horaFin,
		Estado:          estado,
		TipoTerapia:     in.TipoTerapia,
		DuracionMinutos: domain.DuracionMinutos,
		Total:           total,
	}

	if err := uc.repo.CrearConValidacion(ctx, c, in.ServicioIDs, maxima); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &in.UsuarioID,
		Accion:    "cita_creada",
		Entidad:   "cita",
		EntidadID: &c.ID,
	})

	return uc.repo.ObtenerPorID(ctx, c.ID)
}
