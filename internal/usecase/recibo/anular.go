package recibo

import (
	"context"

	"github.com/rehacentro/clinica-api/internal/audit"
	domain "github.com/rehacentro/clinica-api/internal/domain/recibo"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

type AnularRecibo struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAnularRecibo(repo domain.Repository, audit *audit.Dispatcher) *AnularRecibo {
	return &AnularRecibo{repo: repo, audit: audit}
}

func (uc *AnularRecibo) Execute(
	ctx context.Context,
	reciboID uint,
	usuarioID uint,
) (*models.Recibo, error) {

	rec, err := uc.repo.ObtenerPorID(ctx, reciboID)
	if err != nil {
		return nil, err
	}

	if err := domain.PuedeAnular(rec.Estado); err != nil {
		return nil, err
	}

	if rec.Cita == nil {
		return nil, httperr.ErrBusinessf("cita_no_encontrada", "El recibo %d no tiene cita asociada", rec.ID)
	}

	// solo una cita Completada vuelve a Confirmada
	estadoCita, revertir := domain.EstadoCitaTrasAnulacion(rec.Cita.Estado)

	if err := uc.repo.Anular(ctx, rec, estadoCita, revertir); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Accion:    "recibo_anulado",
		Entidad:   "recibo",
		EntidadID: &rec.ID,
		Metadata:  map[string]any{"numero": rec.NumeroRecibo},
	})

	return uc.repo.ObtenerCompleto(ctx, rec.ID)
}
