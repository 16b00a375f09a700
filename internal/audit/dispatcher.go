package audit

import "go.uber.org/zap"

type Event struct {
	UsuarioID *uint
	Accion    string
	Entidad   string
	EntidadID *uint
	Metadata  any
}

// Recorder persiste un evento de auditoría.
type Recorder interface {
	Log(usuarioID *uint, accion string, entidad string, entidadID *uint, metadata any) error
}

// Dispatcher desacopla la escritura de auditoría del ciclo de la petición:
// los eventos van a un canal con buffer y un worker los persiste.
type Dispatcher struct {
	logger Recorder
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger Recorder, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UsuarioID,
			ev.Accion,
			ev.Entidad,
			ev.EntidadID,
			ev.Metadata,
		); err != nil {
			d.log.Error("error de auditoría", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// encolado
	default:
		// cola llena → descartamos el evento, la API nunca se bloquea
		d.log.Warn("cola de auditoría llena, evento descartado",
			zap.String("accion", ev.Accion))
	}
}
