package cierre

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/cache"
)

// El cliente sondea verificarCierre para habilitar acciones de UI, así que
// la respuesta se cachea unos segundos. Toda mutación de cierre invalida
// la clave de su fecha.
const bloqueoTTL = 30 * time.Second

func claveBloqueo(fecha string) string {
	return "cierre:lock:" + fecha
}

func leerBloqueo(ctx context.Context, c cache.Cache, fecha string) (bool, bool) {
	val, ok, err := c.Get(ctx, claveBloqueo(fecha))
	if err != nil || !ok {
		return false, false
	}
	return string(val) == "1", true
}

func guardarBloqueo(ctx context.Context, c cache.Cache, fecha string, bloqueado bool, log *zap.Logger) {
	val := []byte("0")
	if bloqueado {
		val = []byte("1")
	}
	if err := c.Set(ctx, claveBloqueo(fecha), val, bloqueoTTL); err != nil {
		log.Warn("no se pudo cachear el bloqueo del día", zap.Error(err))
	}
}

func invalidarBloqueo(ctx context.Context, c cache.Cache, fecha string, log *zap.Logger) {
	if err := c.Delete(ctx, claveBloqueo(fecha)); err != nil {
		log.Warn("no se pudo invalidar el bloqueo del día", zap.Error(err))
	}
}
