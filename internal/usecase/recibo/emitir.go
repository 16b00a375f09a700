package recibo

import (
	"context"
	"time"

	"github.com/rehacentro/clinica-api/internal/audit"
	domain "github.com/rehacentro/clinica-api/internal/domain/recibo"
	"github.com/rehacentro/clinica-api/internal/models"
)

// EmitirRecibo convierte una cita no cancelada y sin cobrar en un recibo
// con folio secuencial, marcando la cita como Completada.
type EmitirRecibo struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewEmitirRecibo(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *EmitirRecibo {
	return &EmitirRecibo{repo: repo, audit: audit, loc: loc}
}

func (uc *EmitirRecibo) Execute(
	ctx context.Context,
	citaID uint,
	usuarioID uint,
) (*models.Recibo, error) {

	c, err := uc.repo.ObtenerCita(ctx, citaID)
	if err != nil {
		return nil, err
	}

	existe, err := uc.repo.ExisteReciboParaCita(ctx, citaID)
	if err != nil {
		return nil, err
	}

	if err := domain.PuedeEmitir(c, existe); err != nil {
		return nil, err
	}

	maxID, err := uc.repo.MaxReciboID(ctx)
	if err != nil {
		return nil, err
	}

	rec := &models.Recibo{
		CitaID:       c.ID,
		NumeroRecibo: domain.FormatearNumero(maxID),
		FechaCobro:   time.Now().In(uc.loc),
		Total:        domain.TotalParaCita(c),
		Estado:       domain.EstadoActivo,
	}

	if err := uc.repo.Emitir(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Accion:    "recibo_creado",
		Entidad:   "recibo",
		EntidadID: &rec.ID,
		Metadata:  map[string]any{"numero": rec.NumeroRecibo, "id_cita": c.ID},
	})

	return uc.repo.ObtenerCompleto(ctx, rec.ID)
}
