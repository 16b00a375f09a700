package cierre

import (
	"context"

	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
	"github.com/rehacentro/clinica-api/internal/models"
)

// DatosDia es la foto del día que consume la pantalla de cierre: citas con
// sus joins, recibos activos cobrados en el día, totales y el cierre vigente.
type DatosDia struct {
	Fecha      string          `json:"fecha"`
	Citas      []models.Cita   `json:"citas"`
	Recibos    []models.Recibo `json:"recibos"`
	Resumen    domain.Resumen  `json:"resumen"`
	Cierre     *models.Cierre  `json:"cierre,omitempty"`
	DiaCerrado bool            `json:"dia_cerrado"`
}

// ObtenerDatosCierre funciona igual esté el día cerrado o no.
type ObtenerDatosCierre struct {
	repo domain.Repository
}

func NewObtenerDatosCierre(repo domain.Repository) *ObtenerDatosCierre {
	return &ObtenerDatosCierre{repo: repo}
}

func (uc *ObtenerDatosCierre) Execute(
	ctx context.Context,
	fecha string,
) (*DatosDia, error) {

	if err := domcita.ValidarFecha(fecha); err != nil {
		return nil, err
	}

	citas, err := uc.repo.CitasDelDia(ctx, fecha)
	if err != nil {
		return nil, err
	}

	recibos, err := uc.repo.RecibosActivosDelDia(ctx, fecha)
	if err != nil {
		return nil, err
	}

	existente, err := uc.repo.ObtenerPorFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}

	return &DatosDia{
		Fecha:      fecha,
		Citas:      citas,
		Recibos:    recibos,
		Resumen:    domain.CalcularResumen(citas, recibos),
		Cierre:     existente,
		DiaCerrado: domain.DiaBloqueado(existente),
	}, nil
}
