package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domcita "github.com/rehacentro/clinica-api/internal/domain/cita"
	domain "github.com/rehacentro/clinica-api/internal/domain/recibo"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

type ReciboGormRepository struct {
	db *gorm.DB
}

func NewReciboGormRepository(db *gorm.DB) *ReciboGormRepository {
	return &ReciboGormRepository{db: db}
}

func (r *ReciboGormRepository) ObtenerCita(
	ctx context.Context,
	citaID uint,
) (*models.Cita, error) {

	var c models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Servicios").
		First(&c, citaID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ReciboGormRepository) ExisteReciboParaCita(
	ctx context.Context,
	citaID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recibo{}).
		Where("cita_id = ?", citaID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReciboGormRepository) MaxReciboID(ctx context.Context) (uint, error) {
	var maxID uint
	if err := r.db.WithContext(ctx).
		Model(&models.Recibo{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, err
	}
	return maxID, nil
}

func (r *ReciboGormRepository) Emitir(
	ctx context.Context,
	rec *models.Recibo,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Cita").Create(rec).Error; err != nil {
			return traducirReciboDuplicado(err, rec.CitaID)
		}

		return tx.Model(&models.Cita{}).
			Where("id = ?", rec.CitaID).
			Update("estado", string(domcita.EstadoCompletada)).Error
	})
}

// traducirReciboDuplicado convierte la violación de unicidad en error de
// negocio. Los índices únicos sobre cita_id y numero_recibo respaldan
// "un recibo por cita" y "un folio por emisión" frente a emisiones
// concurrentes; el folio se deriva del MAX(id) fuera de la transacción.
func traducirReciboDuplicado(err error, citaID uint) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusinessf(
			"recibo_duplicado",
			"La cita %d ya tiene un recibo o el folio fue tomado por otra emisión, intente de nuevo",
			citaID,
		)
	}
	return err
}

func (r *ReciboGormRepository) ObtenerPorID(
	ctx context.Context,
	id uint,
) (*models.Recibo, error) {

	var rec models.Recibo
	if err := r.db.WithContext(ctx).
		Preload("Cita").
		First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReciboGormRepository) ObtenerCompleto(
	ctx context.Context,
	id uint,
) (*models.Recibo, error) {

	var rec models.Recibo
	if err := r.db.WithContext(ctx).
		Preload("Cita.Paciente").
		Preload("Cita.Terapeuta").
		Preload("Cita.Servicios").
		First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReciboGormRepository) Anular(
	ctx context.Context,
	rec *models.Recibo,
	estadoCita string,
	revertirCita bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Recibo{}).
			Where("id = ?", rec.ID).
			Update("estado", domain.EstadoAnulado).Error; err != nil {
			return err
		}
		rec.Estado = domain.EstadoAnulado

		if revertirCita {
			return tx.Model(&models.Cita{}).
				Where("id = ?", rec.CitaID).
				Update("estado", estadoCita).Error
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*ReciboGormRepository)(nil)
