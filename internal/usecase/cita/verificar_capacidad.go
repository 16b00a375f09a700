package cita

import (
	"context"

	domain "github.com/rehacentro/clinica-api/internal/domain/cita"
)

// ======================================================
// INPUT
// ======================================================

type VerificarCapacidadInput struct {
	Fecha         string
	HoraInicio    string
	TipoTerapia   string
	TerapeutaID   uint
	ExcluirCitaID uint
}

// ======================================================
// USE CASE
// ======================================================

// VerificarCapacidad sirve tanto de pre-chequeo antes de escribir como de
// consulta de disponibilidad que el cliente sondea en vivo.
type VerificarCapacidad struct {
	repo domain.Repository
}

func NewVerificarCapacidad(repo domain.Repository) *VerificarCapacidad {
	return &VerificarCapacidad{repo: repo}
}

func (uc *VerificarCapacidad) Execute(
	ctx context.Context,
	in VerificarCapacidadInput,
) (domain.ResultadoCapacidad, error) {

	var vacio domain.ResultadoCapacidad

	if err := domain.ValidarFecha(in.Fecha); err != nil {
		return vacio, err
	}

	maxima, err := domain.CapacidadMaxima(in.TipoTerapia)
	if err != nil {
		return vacio, err
	}

	desde, hasta, err := domain.BloqueHorario(in.HoraInicio)
	if err != nil {
		return vacio, err
	}

	actuales, err := uc.repo.ContarEnBloque(ctx, domain.Bloque{
		Fecha:         in.Fecha,
		HoraDesde:     desde,
		HoraHasta:     hasta,
		TipoTerapia:   in.TipoTerapia,
		TerapeutaID:   in.TerapeutaID,
		ExcluirCitaID: in.ExcluirCitaID,
	})
	if err != nil {
		return vacio, err
	}

	return domain.EvaluarCapacidad(int(actuales), maxima), nil
}
