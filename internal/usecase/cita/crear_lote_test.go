package cita

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/audit"
	domain "github.com/rehacentro/clinica-api/internal/domain/cita"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

type nopRecorder struct{}

func (nopRecorder) Log(usuarioID *uint, accion, entidad string, entidadID *uint, metadata any) error {
	return nil
}

func nopDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopRecorder{}, zap.NewNop())
}

func itemLote(pacienteID uint) CitaLoteItem {
	return CitaLoteItem{
		PacienteID:  pacienteID,
		TerapeutaID: 4,
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
		TipoTerapia: domain.TerapiaFisica,
		ServicioIDs: []uint{1, 2},
	}
}

func TestCrearCitasLote(t *testing.T) {
	repo := &fakeCitaRepo{
		servicios: []models.Servicio{{ID: 1, Costo: 200}, {ID: 2, Costo: 150}},
	}
	uc := NewCrearCitasLote(repo, nopDispatcher())

	creadas, err := uc.Execute(context.Background(), CrearCitasLoteInput{
		Citas:     []CitaLoteItem{itemLote(10), itemLote(11), itemLote(12)},
		UsuarioID: 1,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(creadas) != 3 {
		t.Fatalf("esperaba 3 citas creadas, obtuve %d", len(creadas))
	}

	// el total compartido sale de los servicios de la primera cita
	for _, c := range creadas {
		if c.Total != 350 {
			t.Fatalf("total compartido esperado 350, obtuve %v", c.Total)
		}
		if c.Estado != string(domain.EstadoPendiente) {
			t.Fatalf("las citas del lote nacen Pendientes, obtuve %s", c.Estado)
		}
		if c.HoraInicio != "09:00:00" || c.HoraFin != "10:00:00" {
			t.Fatalf("horario mal derivado: %s-%s", c.HoraInicio, c.HoraFin)
		}
	}

	if len(repo.lote) != 3 {
		t.Fatalf("el lote debe persistirse en una sola llamada, obtuve %d", len(repo.lote))
	}
}

func TestCrearCitasLoteMezclaSlots(t *testing.T) {
	uc := NewCrearCitasLote(&fakeCitaRepo{}, nopDispatcher())

	otroSlot := itemLote(11)
	otroSlot.HoraInicio = "10:00"

	_, err := uc.Execute(context.Background(), CrearCitasLoteInput{
		Citas:     []CitaLoteItem{itemLote(10), otroSlot},
		UsuarioID: 1,
	})
	if !httperr.IsBusiness(err, "lote_inconsistente") {
		t.Fatalf("esperaba lote_inconsistente, obtuve %v", err)
	}

	otroTerapeuta := itemLote(11)
	otroTerapeuta.TerapeutaID = 9

	_, err = uc.Execute(context.Background(), CrearCitasLoteInput{
		Citas:     []CitaLoteItem{itemLote(10), otroTerapeuta},
		UsuarioID: 1,
	})
	if !httperr.IsBusiness(err, "lote_inconsistente") {
		t.Fatalf("esperaba lote_inconsistente, obtuve %v", err)
	}
}

func TestCrearCitasLotePacienteDuplicado(t *testing.T) {
	uc := NewCrearCitasLote(&fakeCitaRepo{}, nopDispatcher())

	_, err := uc.Execute(context.Background(), CrearCitasLoteInput{
		Citas:     []CitaLoteItem{itemLote(10), itemLote(10)},
		UsuarioID: 1,
	})
	if !httperr.IsBusiness(err, "paciente_duplicado") {
		t.Fatalf("esperaba paciente_duplicado, obtuve %v", err)
	}
}

func TestCrearCitasLotePacienteOcupado(t *testing.T) {
	repo := &fakeCitaRepo{ocupados: []uint{11}}
	uc := NewCrearCitasLote(repo, nopDispatcher())

	_, err := uc.Execute(context.Background(), CrearCitasLoteInput{
		Citas:     []CitaLoteItem{itemLote(10), itemLote(11)},
		UsuarioID: 1,
	})
	if !httperr.IsBusiness(err, "paciente_ocupado") {
		t.Fatalf("esperaba paciente_ocupado, obtuve %v", err)
	}
	if repo.lote != nil {
		t.Fatalf("un paciente ocupado debe rechazar el lote completo")
	}
}

func TestCrearCitasLoteVacio(t *testing.T) {
	uc := NewCrearCitasLote(&fakeCitaRepo{}, nopDispatcher())

	_, err := uc.Execute(context.Background(), CrearCitasLoteInput{UsuarioID: 1})
	if !httperr.IsBusiness(err, "lote_vacio") {
		t.Fatalf("esperaba lote_vacio, obtuve %v", err)
	}
}
