package cierre

import (
	"context"

	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
	"github.com/rehacentro/clinica-api/internal/models"
)

type ListarCierres struct {
	repo domain.Repository
}

func NewListarCierres(repo domain.Repository) *ListarCierres {
	return &ListarCierres{repo: repo}
}

func (uc *ListarCierres) Execute(
	ctx context.Context,
	f domain.FiltroHistorial,
) ([]models.Cierre, int64, error) {

	if f.FechaDesde != "" {
		if err := domcita.ValidarFecha(f.FechaDesde); err != nil {
			return nil, 0, err
		}
	}
	if f.FechaHasta != "" {
		if err := domcita.ValidarFecha(f.FechaHasta); err != nil {
			return nil, 0, err
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}

	return uc.repo.Listar(ctx, f)
}
