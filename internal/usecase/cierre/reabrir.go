package cierre

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/audit"
	"github.com/rehacentro/clinica-api/internal/cache"
	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
	"github.com/rehacentro/clinica-api/internal/models"
)

// ReabrirCierre desbloquea un día cerrado dejando rastro de quién y por qué.
// La reapertura es de un solo uso: para volver a reabrir hay que re-cerrar.
type ReabrirCierre struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
	loc   *time.Location
	log   *zap.Logger
}

func NewReabrirCierre(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache cache.Cache,
	loc *time.Location,
	log *zap.Logger,
) *ReabrirCierre {
	return &ReabrirCierre{repo: repo, audit: audit, cache: cache, loc: loc, log: log}
}

func (uc *ReabrirCierre) Execute(
	ctx context.Context,
	cierreID uint,
	motivo string,
	usuarioID uint,
) (*models.Cierre, error) {

	c, err := uc.repo.ObtenerPorID(ctx, cierreID)
	if err != nil {
		return nil, err
	}

	if err := domain.PuedeReabrir(c.Estado); err != nil {
		return nil, err
	}

	if motivo == "" {
		motivo = domain.MotivoPorDefecto
	}
	ahora := time.Now().In(uc.loc)

	c.Estado = domain.EstadoReabierto
	c.MotivoReapertura = &motivo
	c.FechaReapertura = &ahora
	c.UsuarioReaperturaID = &usuarioID

	if err := uc.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}

	invalidarBloqueo(ctx, uc.cache, c.FechaCierre, uc.log)

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Accion:    "cierre_reabierto",
		Entidad:   "cierre",
		EntidadID: &c.ID,
		Metadata:  map[string]any{"motivo": motivo},
	})

	return uc.repo.ObtenerPorID(ctx, c.ID)
}
