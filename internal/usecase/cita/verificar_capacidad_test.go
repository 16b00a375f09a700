package cita

import (
	"context"
	"testing"

	domain "github.com/rehacentro/clinica-api/internal/domain/cita"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

type fakeCitaRepo struct {
	enBloque     int64
	ultimoBloque domain.Bloque

	ocupados  []uint
	servicios []models.Servicio

	lote    []*models.Cita
	creadas map[uint]*models.Cita
}

var _ domain.Repository = (*fakeCitaRepo)(nil)

func (f *fakeCitaRepo) ContarEnBloque(ctx context.Context, b domain.Bloque) (int64, error) {
	f.ultimoBloque = b
	return f.enBloque, nil
}

func (f *fakeCitaRepo) PacientesOcupadosEnSlot(ctx context.Context, fecha, horaInicio string, terapeutaID uint, tipoTerapia string, pacienteIDs []uint) ([]uint, error) {
	return f.ocupados, nil
}

func (f *fakeCitaRepo) ObtenerServiciosActivos(ctx context.Context, ids []uint) ([]models.Servicio, error) {
	return f.servicios, nil
}

func (f *fakeCitaRepo) guardar(c *models.Cita) {
	if f.creadas == nil {
		f.creadas = map[uint]*models.Cita{}
	}
	c.ID = uint(len(f.creadas) + 1)
	f.creadas[c.ID] = c
}

func (f *fakeCitaRepo) CrearConValidacion(ctx context.Context, c *models.Cita, servicioIDs []uint, capacidadMaxima int) error {
	f.guardar(c)
	return nil
}

func (f *fakeCitaRepo) CrearLoteConValidacion(ctx context.Context, citas []*models.Cita, servicioIDs []uint, capacidadMaxima int) error {
	for _, c := range citas {
		f.guardar(c)
	}
	f.lote = citas
	return nil
}

func (f *fakeCitaRepo) ObtenerPorID(ctx context.Context, id uint) (*models.Cita, error) {
	if c, ok := f.creadas[id]; ok {
		return c, nil
	}
	return &models.Cita{ID: id}, nil
}

func (f *fakeCitaRepo) ActualizarConValidacion(ctx context.Context, c *models.Cita, servicioIDs []uint, reemplazarServicios, revalidar bool, capacidadMaxima int) error {
	return nil
}

func (f *fakeCitaRepo) Eliminar(ctx context.Context, id uint) error {
	return nil
}

func TestVerificarCapacidad(t *testing.T) {
	repo := &fakeCitaRepo{enBloque: 2}
	uc := NewVerificarCapacidad(repo)

	r, err := uc.Execute(context.Background(), VerificarCapacidadInput{
		Fecha:       "2026-09-01",
		HoraInicio:  "09:30",
		TipoTerapia: domain.TerapiaFisica,
		TerapeutaID: 4,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !r.Permitido || r.CitasActuales != 2 || r.CapacidadMaxima != 3 || r.EspaciosDisponibles != 1 {
		t.Fatalf("resultado inesperado: %+v", r)
	}

	// la consulta debe caer en el bloque de la hora, no en el minuto exacto
	b := repo.ultimoBloque
	if b.HoraDesde != "09:00:00" || b.HoraHasta != "09:59:59" {
		t.Fatalf("bloque mal derivado: [%s, %s]", b.HoraDesde, b.HoraHasta)
	}
	if b.TerapeutaID != 4 || b.TipoTerapia != domain.TerapiaFisica {
		t.Fatalf("bloque sin terapeuta/tipo: %+v", b)
	}
}

func TestVerificarCapacidadBloqueLleno(t *testing.T) {
	repo := &fakeCitaRepo{enBloque: 2}
	uc := NewVerificarCapacidad(repo)

	r, err := uc.Execute(context.Background(), VerificarCapacidadInput{
		Fecha:       "2026-09-01",
		HoraInicio:  "10:00",
		TipoTerapia: domain.TerapiaNeurologica,
		TerapeutaID: 4,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if r.Permitido || r.EspaciosDisponibles != 0 {
		t.Fatalf("neurológica con 2 citas está llena: %+v", r)
	}
}

func TestVerificarCapacidadEntradasInvalidas(t *testing.T) {
	uc := NewVerificarCapacidad(&fakeCitaRepo{})

	_, err := uc.Execute(context.Background(), VerificarCapacidadInput{
		Fecha: "hoy", HoraInicio: "09:00", TipoTerapia: domain.TerapiaFisica, TerapeutaID: 1,
	})
	if !httperr.IsBusiness(err, "fecha_invalida") {
		t.Fatalf("esperaba fecha_invalida, obtuve %v", err)
	}

	_, err = uc.Execute(context.Background(), VerificarCapacidadInput{
		Fecha: "2026-09-01", HoraInicio: "09:00", TipoTerapia: "Acuatica", TerapeutaID: 1,
	})
	if !httperr.IsBusiness(err, "tipo_terapia_invalido") {
		t.Fatalf("esperaba tipo_terapia_invalido, obtuve %v", err)
	}
}
