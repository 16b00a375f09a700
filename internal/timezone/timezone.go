package timezone

import "time"

const DefaultTimezone = "America/Mexico_City"

// Location resuelve la zona horaria de la clínica; ante una zona vacía o
// desconocida cae a la zona por defecto.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}
