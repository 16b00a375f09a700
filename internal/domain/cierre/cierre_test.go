package cierre

import (
	"testing"

	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domrecibo "github.com/rehacentro/clinica-api/internal/domain/recibo"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

func TestDiaBloqueado(t *testing.T) {
	if DiaBloqueado(nil) {
		t.Fatalf("sin cierre el día no está bloqueado")
	}
	if !DiaBloqueado(&models.Cierre{Estado: EstadoActivo}) {
		t.Fatalf("cierre activo debe bloquear el día")
	}
	if DiaBloqueado(&models.Cierre{Estado: EstadoReabierto}) {
		t.Fatalf("cierre reabierto no bloquea el día")
	}
}

func TestPuedeCerrar(t *testing.T) {
	if err := PuedeCerrar(nil); err != nil {
		t.Fatalf("sin cierre previo debe poderse cerrar: %v", err)
	}
	if err := PuedeCerrar(&models.Cierre{Estado: EstadoReabierto}); err != nil {
		t.Fatalf("cierre reabierto permite re-cerrar: %v", err)
	}
	err := PuedeCerrar(&models.Cierre{Estado: EstadoActivo, FechaCierre: "2026-09-01"})
	if !httperr.IsBusiness(err, "cierre_activo") {
		t.Fatalf("esperaba cierre_activo, obtuve %v", err)
	}
}

func TestPuedeReabrir(t *testing.T) {
	if err := PuedeReabrir(EstadoActivo); err != nil {
		t.Fatalf("cierre activo debe poder reabrirse: %v", err)
	}
	err := PuedeReabrir(EstadoReabierto)
	if !httperr.IsBusiness(err, "cierre_reabierto") {
		t.Fatalf("esperaba cierre_reabierto, obtuve %v", err)
	}
}

func TestCalcularResumen(t *testing.T) {
	activo := domrecibo.EstadoActivo
	citas := []models.Cita{
		{Estado: string(domcita.EstadoCompletada), Total: 300, Recibo: &models.Recibo{Estado: activo}},
		{Estado: string(domcita.EstadoConfirmada), Total: 200},
		{Estado: string(domcita.EstadoPendiente), Total: 150},
		{Estado: string(domcita.EstadoCancelada), Total: 100},
		{Estado: string(domcita.EstadoCompletada), Total: 250, Recibo: &models.Recibo{Estado: domrecibo.EstadoAnulado}},
	}
	recibos := []models.Recibo{{Total: 300}}

	r := CalcularResumen(citas, recibos)

	if r.TotalCitas != 5 {
		t.Fatalf("total de citas: %d", r.TotalCitas)
	}
	if r.TotalEsperado != 1000 {
		t.Fatalf("total esperado: %v", r.TotalEsperado)
	}
	if r.TotalCobrado != 300 {
		t.Fatalf("total cobrado: %v", r.TotalCobrado)
	}
	if r.Diferencia != -700 {
		t.Fatalf("diferencia: %v", r.Diferencia)
	}
	if r.CitasPagadas != 1 {
		t.Fatalf("solo el recibo Activo cuenta como pagada, obtuve %d", r.CitasPagadas)
	}
	if r.CitasPendientes != 1 || r.CitasConfirmadas != 1 || r.CitasCompletadas != 2 || r.CitasCanceladas != 1 {
		t.Fatalf("conteo por estado inesperado: %+v", r)
	}
}

func TestResumenAplicar(t *testing.T) {
	r := Resumen{
		TotalEsperado: 500, TotalCobrado: 450, Diferencia: -50,
		TotalCitas: 3, CitasPagadas: 2, CitasCompletadas: 2, CitasConfirmadas: 1,
	}
	var c models.Cierre
	r.Aplicar(&c)

	if c.TotalEsperado != 500 || c.TotalCobrado != 450 || c.Diferencia != -50 {
		t.Fatalf("totales no aplicados: %+v", c)
	}
	if c.TotalCitas != 3 || c.CitasPagadas != 2 || c.CitasCompletadas != 2 || c.CitasConfirmadas != 1 {
		t.Fatalf("conteos no aplicados: %+v", c)
	}
}
