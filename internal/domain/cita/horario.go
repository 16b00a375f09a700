package cita

import (
	"fmt"
	"time"

	"github.com/rehacentro/clinica-api/internal/httperr"
)

const DuracionMinutos = 60

// NormalizarHora acepta "15:04" o "15:04:05" y devuelve siempre "15:04:05".
func NormalizarHora(hora string) (string, error) {
	if t, err := time.Parse("15:04:05", hora); err == nil {
		return t.Format("15:04:05"), nil
	}
	if t, err := time.Parse("15:04", hora); err == nil {
		return t.Format("15:04:05"), nil
	}
	return "", httperr.ErrBusinessf("hora_invalida", "Hora inválida: %q", hora)
}

// BloqueHorario descarta los minutos: 09:17 y 09:59 caen en el mismo
// bloque "09:00:00"–"09:59:59".
func BloqueHorario(horaInicio string) (string, string, error) {
	norm, err := NormalizarHora(horaInicio)
	if err != nil {
		return "", "", err
	}
	t, _ := time.Parse("15:04:05", norm)
	desde := fmt.Sprintf("%02d:00:00", t.Hour())
	hasta := fmt.Sprintf("%02d:59:59", t.Hour())
	return desde, hasta, nil
}

// HoraFin calcula el fin de la sesión (duración fija de una hora).
func HoraFin(horaInicio string, duracionMin int) (string, error) {
	norm, err := NormalizarHora(horaInicio)
	if err != nil {
		return "", err
	}
	t, _ := time.Parse("15:04:05", norm)
	return t.Add(time.Duration(duracionMin) * time.Minute).Format("15:04:05"), nil
}

func ValidarFecha(fecha string) error {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return httperr.ErrBusinessf("fecha_invalida", "Fecha inválida: %q, se espera AAAA-MM-DD", fecha)
	}
	return nil
}
