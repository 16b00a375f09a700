package cierre

import (
	"context"

	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/cache"
	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
)

// VerificarDia responde si una fecha está bloqueada por un cierre activo.
// Es una consulta informativa: las escrituras de citas/recibos no la
// consultan (comportamiento heredado, decisión de producto pendiente).
type VerificarDia struct {
	repo  domain.Repository
	cache cache.Cache
	log   *zap.Logger
}

func NewVerificarDia(repo domain.Repository, cache cache.Cache, log *zap.Logger) *VerificarDia {
	return &VerificarDia{repo: repo, cache: cache, log: log}
}

func (uc *VerificarDia) Execute(ctx context.Context, fecha string) (bool, error) {
	if err := domcita.ValidarFecha(fecha); err != nil {
		return false, err
	}

	if bloqueado, ok := leerBloqueo(ctx, uc.cache, fecha); ok {
		return bloqueado, nil
	}

	existente, err := uc.repo.ObtenerPorFecha(ctx, fecha)
	if err != nil {
		return false, err
	}

	bloqueado := domain.DiaBloqueado(existente)
	guardarBloqueo(ctx, uc.cache, fecha, bloqueado, uc.log)

	return bloqueado, nil
}
