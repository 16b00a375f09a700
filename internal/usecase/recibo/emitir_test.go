package recibo

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/audit"
	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domain "github.com/rehacentro/clinica-api/internal/domain/recibo"
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

type fakeReciboRepo struct {
	cita   *models.Cita
	existe bool
	maxID  uint

	emitido *models.Recibo
	anulado struct {
		estadoCita string
		revertir   bool
		llamado    bool
	}
	recibo *models.Recibo
}

var _ domain.Repository = (*fakeReciboRepo)(nil)

func (f *fakeReciboRepo) ObtenerCita(ctx context.Context, citaID uint) (*models.Cita, error) {
	return f.cita, nil
}

func (f *fakeReciboRepo) ExisteReciboParaCita(ctx context.Context, citaID uint) (bool, error) {
	return f.existe, nil
}

func (f *fakeReciboRepo) MaxReciboID(ctx context.Context) (uint, error) {
	return f.maxID, nil
}

func (f *fakeReciboRepo) Emitir(ctx context.Context, r *models.Recibo) error {
	r.ID = f.maxID + 1
	f.emitido = r
	return nil
}

func (f *fakeReciboRepo) ObtenerPorID(ctx context.Context, id uint) (*models.Recibo, error) {
	return f.recibo, nil
}

func (f *fakeReciboRepo) ObtenerCompleto(ctx context.Context, id uint) (*models.Recibo, error) {
	if f.emitido != nil {
		return f.emitido, nil
	}
	return f.recibo, nil
}

func (f *fakeReciboRepo) Anular(ctx context.Context, r *models.Recibo, estadoCita string, revertirCita bool) error {
	r.Estado = domain.EstadoAnulado
	f.anulado.estadoCita = estadoCita
	f.anulado.revertir = revertirCita
	f.anulado.llamado = true
	return nil
}

func TestEmitirRecibo(t *testing.T) {
	repo := &fakeReciboRepo{
		cita:  &models.Cita{ID: 5, Estado: string(domcita.EstadoConfirmada), Total: 450},
		maxID: 7,
	}
	uc := NewEmitirRecibo(repo, nopDispatcher(), time.UTC)

	rec, err := uc.Execute(context.Background(), 5, 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if rec.NumeroRecibo != "REC-000008" {
		t.Fatalf("folio esperado REC-000008, obtuve %s", rec.NumeroRecibo)
	}
	if rec.Total != 450 {
		t.Fatalf("total esperado 450, obtuve %v", rec.Total)
	}
	if rec.Estado != domain.EstadoActivo {
		t.Fatalf("recibo nuevo debe quedar Activo, obtuve %s", rec.Estado)
	}
	if rec.CitaID != 5 {
		t.Fatalf("recibo sin cita asociada: %+v", rec)
	}
}

func TestEmitirReciboCitaCancelada(t *testing.T) {
	repo := &fakeReciboRepo{
		cita: &models.Cita{ID: 5, Estado: string(domcita.EstadoCancelada)},
	}
	uc := NewEmitirRecibo(repo, nopDispatcher(), time.UTC)

	_, err := uc.Execute(context.Background(), 5, 1)
	if !httperr.IsBusiness(err, "cita_cancelada") {
		t.Fatalf("esperaba cita_cancelada, obtuve %v", err)
	}
	if repo.emitido != nil {
		t.Fatalf("no debe emitirse recibo para cita cancelada")
	}
}

func TestEmitirReciboDuplicado(t *testing.T) {
	repo := &fakeReciboRepo{
		cita:   &models.Cita{ID: 5, Estado: string(domcita.EstadoConfirmada)},
		existe: true,
	}
	uc := NewEmitirRecibo(repo, nopDispatcher(), time.UTC)

	_, err := uc.Execute(context.Background(), 5, 1)
	if !httperr.IsBusiness(err, "recibo_existente") {
		t.Fatalf("esperaba recibo_existente, obtuve %v", err)
	}
}

func TestAnularReciboRevierteCitaCompletada(t *testing.T) {
	repo := &fakeReciboRepo{
		recibo: &models.Recibo{
			ID:     3,
			Estado: domain.EstadoActivo,
			Cita:   &models.Cita{ID: 9, Estado: string(domcita.EstadoCompletada)},
		},
	}
	uc := NewAnularRecibo(repo, nopDispatcher())

	rec, err := uc.Execute(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if rec.Estado != domain.EstadoAnulado {
		t.Fatalf("recibo debe quedar Anulado, obtuve %s", rec.Estado)
	}
	if !repo.anulado.revertir || repo.anulado.estadoCita != string(domcita.EstadoConfirmada) {
		t.Fatalf("cita Completada debe volver a Confirmada: %+v", repo.anulado)
	}
}

func TestAnularReciboNoTocaCitaPendiente(t *testing.T) {
	repo := &fakeReciboRepo{
		recibo: &models.Recibo{
			ID:     3,
			Estado: domain.EstadoActivo,
			Cita:   &models.Cita{ID: 9, Estado: string(domcita.EstadoPendiente)},
		},
	}
	uc := NewAnularRecibo(repo, nopDispatcher())

	if _, err := uc.Execute(context.Background(), 3, 1); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if repo.anulado.revertir {
		t.Fatalf("cita Pendiente no debe cambiar de estado al anular")
	}
}

func TestAnularReciboDobleAnulacion(t *testing.T) {
	repo := &fakeReciboRepo{
		recibo: &models.Recibo{
			ID:     3,
			Estado: domain.EstadoAnulado,
			Cita:   &models.Cita{ID: 9, Estado: string(domcita.EstadoConfirmada)},
		},
	}
	uc := NewAnularRecibo(repo, nopDispatcher())

	_, err := uc.Execute(context.Background(), 3, 1)
	if !httperr.IsBusiness(err, "recibo_anulado") {
		t.Fatalf("esperaba recibo_anulado, obtuve %v", err)
	}
	if repo.anulado.llamado {
		t.Fatalf("la doble anulación no debe llegar al repositorio")
	}
}
