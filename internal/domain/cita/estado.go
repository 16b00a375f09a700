package cita

// ===============================
// Estados de la cita
// ===============================

type Estado string

const (
	EstadoPendiente  Estado = "Pendiente"
	EstadoConfirmada Estado = "Confirmada"
	EstadoCancelada  Estado = "Cancelada"
	EstadoCompletada Estado = "Completada"
)

// EsActiva indica si la cita cuenta para capacidad (las canceladas no).
func EsActiva(estado string) bool {
	return estado != string(EstadoCancelada)
}

func EstadoValido(estado string) bool {
	switch Estado(estado) {
	case EstadoPendiente, EstadoConfirmada, EstadoCancelada, EstadoCompletada:
		return true
	}
	return false
}

func EstadoInicial() Estado {
	return EstadoPendiente
}
