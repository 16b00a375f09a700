package cita

import (
	"context"

	"github.com/rehacentro/clinica-api/internal/audit"
	domain "github.com/rehacentro/clinica-api/internal/domain/cita"
)

type EliminarCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEliminarCita(repo domain.Repository, audit *audit.Dispatcher) *EliminarCita {
	return &EliminarCita{repo: repo, audit: audit}
}

func (uc *EliminarCita) Execute(ctx context.Context, citaID uint, usuarioID uint) error {
	if err := uc.repo.Eliminar(ctx, citaID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Accion:    "cita_eliminada",
		Entidad:   "cita",
		EntidadID: &citaID,
	})

	return nil
}
