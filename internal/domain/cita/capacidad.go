package cita

import (
	"github.com/rehacentro/clinica-api/internal/httperr"
)

// ===============================
// Tipos de terapia y cupos por hora
// ===============================

const (
	TerapiaFisica      = "Fisica"
	TerapiaNeurologica = "Neurologica"

	CupoFisica      = 3
	CupoNeurologica = 2
)

// CapacidadMaxima devuelve el cupo por (hora, terapeuta) según el tipo.
func CapacidadMaxima(tipoTerapia string) (int, error) {
	switch tipoTerapia {
	case TerapiaFisica:
		return CupoFisica, nil
	case TerapiaNeurologica:
		return CupoNeurologica, nil
	default:
		return 0, httperr.ErrBusinessf(
			"tipo_terapia_invalido",
			"Tipo de terapia inválido: %q. Valores permitidos: %s, %s",
			tipoTerapia, TerapiaFisica, TerapiaNeurologica,
		)
	}
}

type ResultadoCapacidad struct {
	Permitido           bool `json:"permitido"`
	CapacidadMaxima     int  `json:"capacidad_maxima"`
	CitasActuales       int  `json:"citas_actuales"`
	EspaciosDisponibles int  `json:"espacios_disponibles"`
}

func EvaluarCapacidad(actuales, maxima int) ResultadoCapacidad {
	disponibles := maxima - actuales
	if disponibles < 0 {
		disponibles = 0
	}
	return ResultadoCapacidad{
		Permitido:           actuales < maxima,
		CapacidadMaxima:     maxima,
		CitasActuales:       actuales,
		EspaciosDisponibles: disponibles,
	}
}

// ErrCapacidadExcedida arma el mensaje que el cliente muestra tal cual.
func ErrCapacidadExcedida(actuales, maxima int, tipoTerapia string) error {
	return httperr.ErrBusinessf(
		"capacidad_excedida",
		"Capacidad máxima alcanzada: %d de %d citas de terapia %s en este horario",
		actuales, maxima, tipoTerapia,
	)
}

// ValidarPacientesLote rechaza lotes con pacientes repetidos.
func ValidarPacientesLote(pacienteIDs []uint) error {
	vistos := make(map[uint]bool, len(pacienteIDs))
	for _, id := range pacienteIDs {
		if vistos[id] {
			return httperr.ErrBusinessf(
				"paciente_duplicado",
				"El paciente %d aparece más de una vez en el lote",
				id,
			)
		}
		vistos[id] = true
	}
	return nil
}

// ValidarCupoLote compara lo solicitado contra los espacios libres del bloque.
func ValidarCupoLote(solicitadas, disponibles int) error {
	if solicitadas > disponibles {
		return httperr.ErrBusinessf(
			"capacidad_excedida",
			"Capacidad máxima alcanzada: se solicitaron %d citas pero solo hay %d espacios disponibles en este horario",
			solicitadas, disponibles,
		)
	}
	return nil
}
