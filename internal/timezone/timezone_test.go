package timezone

import "testing"

func TestLocation(t *testing.T) {
	if got := Location("America/Bogota"); got.String() != "America/Bogota" {
		t.Fatalf("zona válida mal resuelta: %s", got)
	}
	if got := Location(""); got.String() != DefaultTimezone {
		t.Fatalf("zona vacía debe caer a la por defecto, obtuve %s", got)
	}
	if got := Location("Marte/Olympus"); got.String() != DefaultTimezone {
		t.Fatalf("zona desconocida debe caer a la por defecto, obtuve %s", got)
	}
}
