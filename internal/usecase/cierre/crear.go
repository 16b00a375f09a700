package cierre

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/audit"
	"github.com/rehacentro/clinica-api/internal/cache"
	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
	"github.com/rehacentro/clinica-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CrearCierreInput struct {
	Fecha     string
	Notas     string
	UsuarioID uint
}

type CrearCierreOutput struct {
	Cierre    *models.Cierre
	Recerrado bool
}

// ======================================================
// USE CASE
// ======================================================

// CrearCierre cierra el día: calcula la foto del día y la persiste como
// cierre Activo. Si la fecha tiene un cierre Reabierto, se actualiza esa
// misma fila (mismo id) en lugar de insertar otra.
type CrearCierre struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
	loc   *time.Location
	log   *zap.Logger
}

func NewCrearCierre(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache cache.Cache,
	loc *time.Location,
	log *zap.Logger,
) *CrearCierre {
	return &CrearCierre{repo: repo, audit: audit, cache: cache, loc: loc, log: log}
}

func (uc *CrearCierre) Execute(
	ctx context.Context,
	in CrearCierreInput,
) (*CrearCierreOutput, error) {

	if err := domcita.ValidarFecha(in.Fecha); err != nil {
		return nil, err
	}

	existente, err := uc.repo.ObtenerPorFecha(ctx, in.Fecha)
	if err != nil {
		return nil, err
	}

	if err := domain.PuedeCerrar(existente); err != nil {
		return nil, err
	}

	citas, err := uc.repo.CitasDelDia(ctx, in.Fecha)
	if err != nil {
		return nil, err
	}
	recibos, err := uc.repo.RecibosActivosDelDia(ctx, in.Fecha)
	if err != nil {
		return nil, err
	}
	resumen := domain.CalcularResumen(citas, recibos)

	ahora := time.Now().In(uc.loc)

	if existente != nil {
		// re-cierre de un día reabierto: misma fila, totales recalculados
		resumen.Aplicar(existente)
		existente.HoraCierre = ahora.Format("15:04:05")
		existente.Notas = in.Notas
		existente.UsuarioCierreID = in.UsuarioID
		existente.Estado = domain.EstadoActivo

		if err := uc.repo.Actualizar(ctx, existente); err != nil {
			return nil, err
		}

		invalidarBloqueo(ctx, uc.cache, in.Fecha, uc.log)

		uc.audit.Dispatch(audit.Event{
			UsuarioID: &in.UsuarioID,
			Accion:    "cierre_recerrado",
			Entidad:   "cierre",
			EntidadID: &existente.ID,
		})

		return &CrearCierreOutput{Cierre: existente, Recerrado: true}, nil
	}

	nuevo := &models.Cierre{
		FechaCierre:     in.Fecha,
		HoraCierre:      ahora.Format("15:04:05"),
		Notas:           in.Notas,
		UsuarioCierreID: in.UsuarioID,
		Estado:          domain.EstadoActivo,
	}
	resumen.Aplicar(nuevo)

	if err := uc.repo.Crear(ctx, nuevo); err != nil {
		return nil, err
	}

	invalidarBloqueo(ctx, uc.cache, in.Fecha, uc.log)

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &in.UsuarioID,
		Accion:    "cierre_creado",
		Entidad:   "cierre",
		EntidadID: &nuevo.ID,
	})

	return &CrearCierreOutput{Cierre: nuevo, Recerrado: false}, nil
}
