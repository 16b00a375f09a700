package cierre

import (
	"context"

	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/audit"
	"github.com/rehacentro/clinica-api/internal/cache"
	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
)

// EliminarCierre borra el registro sin tocar citas ni recibos.
type EliminarCierre struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
	log   *zap.Logger
}

func NewEliminarCierre(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache cache.Cache,
	log *zap.Logger,
) *EliminarCierre {
	return &EliminarCierre{repo: repo, audit: audit, cache: cache, log: log}
}

func (uc *EliminarCierre) Execute(ctx context.Context, cierreID uint, usuarioID uint) error {
	c, err := uc.repo.ObtenerPorID(ctx, cierreID)
	if err != nil {
		return err
	}

	if err := uc.repo.Eliminar(ctx, cierreID); err != nil {
		return err
	}

	invalidarBloqueo(ctx, uc.cache, c.FechaCierre, uc.log)

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Accion:    "cierre_eliminado",
		Entidad:   "cierre",
		EntidadID: &cierreID,
		Metadata:  map[string]any{"fecha": c.FechaCierre},
	})

	return nil
}
