package cierre

import (
	"context"

	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
	"github.com/rehacentro/clinica-api/internal/models"
)

type ObtenerCierre struct {
	repo domain.Repository
}

func NewObtenerCierre(repo domain.Repository) *ObtenerCierre {
	return &ObtenerCierre{repo: repo}
}

func (uc *ObtenerCierre) Execute(ctx context.Context, id uint) (*models.Cierre, error) {
	return uc.repo.ObtenerPorID(ctx, id)
}
