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

type CitaLoteItem struct {
	PacienteID  uint
	TerapeutaID uint
	Fecha       string
	HoraInicio  string
	TipoTerapia string
	ServicioIDs []uint
}

type CrearCitasLoteInput struct {
	Citas     []CitaLoteItem
	UsuarioID uint
}

// ======================================================
// USE CASE
// ======================================================

// CrearCitasLote crea varias citas del mismo slot en una sola operación.
// El total compartido se calcula con los servicios de la primera cita.
type CrearCitasLote struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCrearCitasLote(repo domain.Repository, audit *audit.Dispatcher) *CrearCitasLote {
	return &CrearCitasLote{repo: repo, audit: audit}
}

func (uc *CrearCitasLote) Execute(
	ctx context.Context,
	in CrearCitasLoteInput,
) ([]models.Cita, error) {

	if len(in.Citas) == 0 {
		return nil, httperr.ErrBusinessf("lote_vacio", "El lote no contiene citas")
	}

	primera := in.Citas[0]

	if err := domain.ValidarFecha(primera.Fecha); err != nil {
		return nil, err
	}
	hora, err := domain.NormalizarHora(primera.HoraInicio)
	if err != nil {
		return nil, err
	}
	maxima, err := domain.CapacidadMaxima(primera.TipoTerapia)
	if err != nil {
		return nil, err
	}

	// todas las citas del lote deben compartir el mismo slot
	pacienteIDs := make([]uint, 0, len(in.Citas))
	for _, item := range in.Citas {
		horaItem, err := domain.NormalizarHora(item.HoraInicio)
		if err != nil {
			return nil, err
		}
		if item.Fecha != primera.Fecha ||
			horaItem != hora ||
			item.TipoTerapia != primera.TipoTerapia ||
			item.TerapeutaID != primera.TerapeutaID {
			return nil, httperr.ErrBusinessf(
				"lote_inconsistente",
				"Todas las citas del lote deben compartir fecha, hora, tipo de terapia y terapeuta",
			)
		}
		pacienteIDs = append(pacienteIDs, item.PacienteID)
	}

	if err := domain.ValidarPacientesLote(pacienteIDs); err != nil {
		return nil, err
	}

	ocupados, err := uc.repo.PacientesOcupadosEnSlot(
		ctx, primera.Fecha, hora, primera.TerapeutaID, primera.TipoTerapia, pacienteIDs,
	)
	if err != nil {
		return nil, err
	}
	if len(ocupados) > 0 {
		return nil, httperr.ErrBusinessf(
			"paciente_ocupado",
			"El paciente %d ya tiene una cita en este horario con el mismo terapeuta",
			ocupados[0],
		)
	}

	horaFin, err := domain.HoraFin(hora, domain.DuracionMinutos)
	if err != nil {
		return nil, err
	}

	servicios, err := uc.repo.ObtenerServiciosActivos(ctx, primera.ServicioIDs)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, s := range servicios {
		total += s.Costo
	}

	citas := make([]*models.Cita, 0, len(in.Citas))
	for _, item := range in.Citas {
		citas = append(citas, &models.Cita{
			PacienteID:      item.PacienteID,
			TerapeutaID:     primera.TerapeutaID,
			Fecha:           primera.Fecha,
			HoraInicio:      hora,
			HoraFin:         horaFin,
			Estado:          string(domain.EstadoInicial()),
			TipoTerapia:     primera.TipoTerapia,
			DuracionMinutos: domain.DuracionMinutos,
			Total:           total,
		})
	}

	if err := uc.repo.CrearLoteConValidacion(ctx, citas, primera.ServicioIDs, maxima); err != nil {
		return nil, err
	}

	creadas := make([]models.Cita, 0, len(citas))
	for _, c := range citas {
		uc.audit.Dispatch(audit.Event{
			UsuarioID: &in.UsuarioID,
			Accion:    "citas_creadas_lote",
			Entidad:   "cita",
			EntidadID: &c.ID,
		})

		completa, err := uc.repo.ObtenerPorID(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		creadas = append(creadas, *completa)
	}

	return creadas, nil
}
