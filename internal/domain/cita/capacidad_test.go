package cita

import (
	"testing"

	"github.com/rehacentro/clinica-api/internal/httperr"
)

func TestCapacidadMaxima(t *testing.T) {
	max, err := CapacidadMaxima(TerapiaFisica)
	if err != nil {
		t.Fatalf("terapia física: %v", err)
	}
	if max != CupoFisica {
		t.Fatalf("esperaba cupo %d para física, obtuve %d", CupoFisica, max)
	}

	max, err = CapacidadMaxima(TerapiaNeurologica)
	if err != nil {
		t.Fatalf("terapia neurológica: %v", err)
	}
	if max != CupoNeurologica {
		t.Fatalf("esperaba cupo %d para neurológica, obtuve %d", CupoNeurologica, max)
	}

	_, err = CapacidadMaxima("Ocupacional")
	if !httperr.IsBusiness(err, "tipo_terapia_invalido") {
		t.Fatalf("esperaba tipo_terapia_invalido, obtuve %v", err)
	}
}

func TestEvaluarCapacidad(t *testing.T) {
	r := EvaluarCapacidad(1, 3)
	if !r.Permitido || r.EspaciosDisponibles != 2 || r.CitasActuales != 1 {
		t.Fatalf("resultado inesperado con cupo libre: %+v", r)
	}

	r = EvaluarCapacidad(3, 3)
	if r.Permitido {
		t.Fatalf("bloque lleno debe quedar no permitido: %+v", r)
	}
	if r.EspaciosDisponibles != 0 {
		t.Fatalf("espacios deben ser 0 en bloque lleno, obtuve %d", r.EspaciosDisponibles)
	}

	// sobrecupo (datos previos a la regla) no produce espacios negativos
	r = EvaluarCapacidad(5, 3)
	if r.Permitido || r.EspaciosDisponibles != 0 {
		t.Fatalf("sobrecupo mal manejado: %+v", r)
	}
}

func TestErrCapacidadExcedida(t *testing.T) {
	err := ErrCapacidadExcedida(3, 3, TerapiaFisica)
	if !httperr.IsBusiness(err, "capacidad_excedida") {
		t.Fatalf("esperaba capacidad_excedida, obtuve %v", err)
	}
	want := "Capacidad máxima alcanzada: 3 de 3 citas de terapia Fisica en este horario"
	if err.Error() != want {
		t.Fatalf("mensaje inesperado: %q", err.Error())
	}
}

func TestValidarPacientesLote(t *testing.T) {
	if err := ValidarPacientesLote([]uint{1, 2, 3}); err != nil {
		t.Fatalf("lote sin repetidos rechazado: %v", err)
	}
	err := ValidarPacientesLote([]uint{1, 2, 1})
	if !httperr.IsBusiness(err, "paciente_duplicado") {
		t.Fatalf("esperaba paciente_duplicado, obtuve %v", err)
	}
}

func TestValidarCupoLote(t *testing.T) {
	if err := ValidarCupoLote(2, 3); err != nil {
		t.Fatalf("lote dentro del cupo rechazado: %v", err)
	}
	if err := ValidarCupoLote(3, 3); err != nil {
		t.Fatalf("lote exacto rechazado: %v", err)
	}
	err := ValidarCupoLote(4, 3)
	if !httperr.IsBusiness(err, "capacidad_excedida") {
		t.Fatalf("esperaba capacidad_excedida, obtuve %v", err)
	}
}

func TestEstados(t *testing.T) {
	if EsActiva(string(EstadoCancelada)) {
		t.Fatalf("una cita cancelada no cuenta para capacidad")
	}
	for _, e := range []Estado{EstadoPendiente, EstadoConfirmada, EstadoCompletada} {
		if !EsActiva(string(e)) {
			t.Fatalf("estado %s debe contar para capacidad", e)
		}
	}

	if !EstadoValido("Pendiente") || EstadoValido("EnEspera") {
		t.Fatalf("validación de estados incorrecta")
	}
	if EstadoInicial() != EstadoPendiente {
		t.Fatalf("estado inicial debe ser Pendiente")
	}
}
