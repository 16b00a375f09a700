package recibo

import (
	"fmt"

	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

// ===============================
// Estados del recibo
// ===============================

const (
	EstadoActivo  = "Activo"
	EstadoAnulado = "Anulado"
)

// FormatearNumero deriva el folio legible a partir del id numérico más alto.
// El primer recibo emitido es REC-000001.
func FormatearNumero(maxID uint) string {
	return fmt.Sprintf("REC-%06d", maxID+1)
}

// PuedeEmitir valida las reglas previas a la emisión.
func PuedeEmitir(c *models.Cita, yaTieneRecibo bool) error {
	if c.Estado == string(domcita.EstadoCancelada) {
		return httperr.ErrBusinessf("cita_cancelada", "No se puede cobrar una cita cancelada")
	}
	if yaTieneRecibo {
		return httperr.ErrBusinessf(
			"recibo_existente",
			"La cita %d ya tiene un recibo emitido",
			c.ID,
		)
	}
	return nil
}

// TotalParaCita usa el total guardado; si quedó en cero lo recalcula
// desde los servicios asociados.
func TotalParaCita(c *models.Cita) float64 {
	if c.Total != 0 {
		return c.Total
	}
	var total float64
	for _, s := range c.Servicios {
		total += s.Costo
	}
	return total
}

// EstadoCitaTrasAnulacion: solo una cita Completada vuelve a Confirmada;
// cualquier otro estado queda intacto.
func EstadoCitaTrasAnulacion(estadoCita string) (string, bool) {
	if estadoCita == string(domcita.EstadoCompletada) {
		return string(domcita.EstadoConfirmada), true
	}
	return estadoCita, false
}

// PuedeAnular rechaza la doble anulación.
func PuedeAnular(estadoRecibo string) error {
	if estadoRecibo == EstadoAnulado {
		return httperr.ErrBusinessf("recibo_anulado", "El recibo ya está anulado")
	}
	return nil
}
