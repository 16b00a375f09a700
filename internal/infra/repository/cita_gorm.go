package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/rehacentro/clinica-api/internal/domain/cita"
	"github.com/rehacentro/clinica-api/internal/models"
)

type CitaGormRepository struct {
	db *gorm.DB
}

func NewCitaGormRepository(db *gorm.DB) *CitaGormRepository {
	return &CitaGormRepository{db: db}
}

// --------------------------------------------------
// Capacidad
// --------------------------------------------------

func bloqueWhere(tx *gorm.DB, b domain.Bloque) *gorm.DB {
	q := tx.Where(
		"fecha = ? AND hora_inicio BETWEEN ? AND ? AND terapeuta_id = ? AND tipo_terapia = ? AND estado <> ?",
		b.Fecha, b.HoraDesde, b.HoraHasta, b.TerapeutaID, b.TipoTerapia,
		string(domain.EstadoCancelada),
	)
	if b.ExcluirCitaID != 0 {
		q = q.Where("id <> ?", b.ExcluirCitaID)
	}
	return q
}

func (r *CitaGormRepository) ContarEnBloque(
	ctx context.Context,
	b domain.Bloque,
) (int64, error) {

	var count int64
	if err := bloqueWhere(r.db.WithContext(ctx).Model(&models.Cita{}), b).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// claveCupo identifica el cubo de capacidad para el advisory lock. La clave
// no incluye ExcluirCitaID: todas las escrituras del mismo cubo deben
// competir por el mismo candado.
func claveCupo(b domain.Bloque) string {
	return fmt.Sprintf("citas:%s:%s:%d:%s", b.Fecha, b.HoraDesde, b.TerapeutaID, b.TipoTerapia)
}

// bloquearCupo serializa a los escritores del cubo con un advisory lock
// transaccional. El FOR UPDATE sobre las filas existentes no alcanza: un
// cubo vacío no tiene filas que bloquear y dos transacciones concurrentes
// contarían cero ambas.
func bloquearCupo(tx *gorm.DB, b domain.Bloque) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", claveCupo(b)).Error
}

// contarBloqueandoFilas cuenta las citas del bloque reteniendo sus filas
// con FOR UPDATE hasta el commit. Llamar bloquearCupo antes.
func contarBloqueandoFilas(tx *gorm.DB, b domain.Bloque) (int, error) {
	var ocupadas []models.Cita
	if err := bloqueWhere(tx.Select("id"), b).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&ocupadas).Error; err != nil {
		return 0, err
	}
	return len(ocupadas), nil
}

func (r *CitaGormRepository) PacientesOcupadosEnSlot(
	ctx context.Context,
	fecha string,
	horaInicio string,
	terapeutaID uint,
	tipoTerapia string,
	pacienteIDs []uint,
) ([]uint, error) {

	var ocupados []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Cita{}).
		Where(
			"fecha = ? AND hora_inicio = ? AND terapeuta_id = ? AND tipo_terapia = ? AND estado <> ? AND paciente_id IN ?",
			fecha, horaInicio, terapeutaID, tipoTerapia,
			string(domain.EstadoCancelada), pacienteIDs,
		).
		Pluck("paciente_id", &ocupados).Error; err != nil {
		return nil, err
	}
	return ocupados, nil
}

// --------------------------------------------------
// Servicios
// --------------------------------------------------

func (r *CitaGormRepository) ObtenerServiciosActivos(
	ctx context.Context,
	ids []uint,
) ([]models.Servicio, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var servicios []models.Servicio
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND activo = ?", ids, true).
		Find(&servicios).Error; err != nil {
		return nil, err
	}
	return servicios, nil
}

// --------------------------------------------------
// Citas
// --------------------------------------------------

func (r *CitaGormRepository) CrearConValidacion(
	ctx context.Context,
	c *models.Cita,
	servicioIDs []uint,
	capacidadMaxima int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		b := domain.Bloque{
			Fecha:       c.Fecha,
			TipoTerapia: c.TipoTerapia,
			TerapeutaID: c.TerapeutaID,
		}
		var err error
		if b.HoraDesde, b.HoraHasta, err = domain.BloqueHorario(c.HoraInicio); err != nil {
			return err
		}

		if err := bloquearCupo(tx, b); err != nil {
			return err
		}

		actuales, err := contarBloqueandoFilas(tx, b)
		if err != nil {
			return err
		}
		if actuales >= capacidadMaxima {
			return domain.ErrCapacidadExcedida(actuales, capacidadMaxima, c.TipoTerapia)
		}

		if err := tx.Omit("Servicios").Create(c).Error; err != nil {
			return err
		}

		return asociarServicios(tx, c, servicioIDs)
	})
}

func (r *CitaGormRepository) CrearLoteConValidacion(
	ctx context.Context,
	citas []*models.Cita,
	servicioIDs []uint,
	capacidadMaxima int,
) error {

	if len(citas) == 0 {
		return nil
	}
	primera := citas[0]

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		b := domain.Bloque{
			Fecha:       primera.Fecha,
			TipoTerapia: primera.TipoTerapia,
			TerapeutaID: primera.TerapeutaID,
		}
		var err error
		if b.HoraDesde, b.HoraHasta, err = domain.BloqueHorario(primera.HoraInicio); err != nil {
			return err
		}

		if err := bloquearCupo(tx, b); err != nil {
			return err
		}

		actuales, err := contarBloqueandoFilas(tx, b)
		if err != nil {
			return err
		}
		if err := domain.ValidarCupoLote(len(citas), capacidadMaxima-actuales); err != nil {
			return err
		}

		// inserción y asociaciones en la misma transacción: o entra todo
		// el lote o no entra nada
		for _, c := range citas {
			if err := tx.Omit("Servicios").Create(c).Error; err != nil {
				return err
			}
			if err := asociarServicios(tx, c, servicioIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CitaGormRepository) ObtenerPorID(
	ctx context.Context,
	id uint,
) (*models.Cita, error) {

	var c models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Paciente").
		Preload("Terapeuta").
		Preload("Servicios").
		Preload("Recibo").
		First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CitaGormRepository) ActualizarConValidacion(
	ctx context.Context,
	c *models.Cita,
	servicioIDs []uint,
	reemplazarServicios bool,
	revalidar bool,
	capacidadMaxima int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if revalidar {
			b := domain.Bloque{
				Fecha:         c.Fecha,
				TipoTerapia:   c.TipoTerapia,
				TerapeutaID:   c.TerapeutaID,
				ExcluirCitaID: c.ID,
			}
			var err error
			if b.HoraDesde, b.HoraHasta, err = domain.BloqueHorario(c.HoraInicio); err != nil {
				return err
			}

			if err := bloquearCupo(tx, b); err != nil {
				return err
			}

			actuales, err := contarBloqueandoFilas(tx, b)
			if err != nil {
				return err
			}
			if actuales >= capacidadMaxima {
				return domain.ErrCapacidadExcedida(actuales, capacidadMaxima, c.TipoTerapia)
			}
		}

		if err := tx.Omit("Servicios", "Paciente", "Terapeuta", "Recibo").
			Save(c).Error; err != nil {
			return err
		}

		if reemplazarServicios {
			return reemplazarAsociaciones(tx, c, servicioIDs)
		}
		return nil
	})
}

func (r *CitaGormRepository) Eliminar(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Cita{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Asociación cita ↔ servicios
// --------------------------------------------------

func asociarServicios(tx *gorm.DB, c *models.Cita, servicioIDs []uint) error {
	if len(servicioIDs) == 0 {
		return nil
	}

	var servicios []models.Servicio
	if err := tx.Where("id IN ?", servicioIDs).Find(&servicios).Error; err != nil {
		return err
	}
	return tx.Model(c).Association("Servicios").Append(&servicios)
}

func reemplazarAsociaciones(tx *gorm.DB, c *models.Cita, servicioIDs []uint) error {
	var servicios []models.Servicio
	if len(servicioIDs) > 0 {
		if err := tx.Where("id IN ?", servicioIDs).Find(&servicios).Error; err != nil {
			return err
		}
	}
	return tx.Model(c).Association("Servicios").Replace(&servicios)
}

// Compile-time check
var _ domain.Repository = (*CitaGormRepository)(nil)
