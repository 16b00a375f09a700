package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/rehacentro/clinica-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

var _ Recorder = (*Logger)(nil)

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	usuarioID *uint,
	accion string,
	entidad string,
	entidadID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	registro := models.Auditoria{
		UsuarioID: usuarioID,
		Accion:    accion,
		Entidad:   entidad,
		EntidadID: entidadID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&registro).Error
}
