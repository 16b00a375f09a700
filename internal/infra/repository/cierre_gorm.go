package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/rehacentro/clinica-api/internal/domain/cierre"
	domrecibo "github.com/rehacentro/clinica-api/internal/domain/recibo"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/models"
)

type CierreGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewCierreGormRepository(db *gorm.DB, loc *time.Location) *CierreGormRepository {
	return &CierreGormRepository{db: db, loc: loc}
}

// --------------------------------------------------
// Datos del día
// --------------------------------------------------

func (r *CierreGormRepository) CitasDelDia(
	ctx context.Context,
	fecha string,
) ([]models.Cita, error) {

	var citas []models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Paciente").
		Preload("Terapeuta").
		Preload("Servicios").
		Preload("Recibo").
		Where("fecha = ?", fecha).
		Order("hora_inicio ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *CierreGormRepository) RecibosActivosDelDia(
	ctx context.Context,
	fecha string,
) ([]models.Recibo, error) {

	inicio, err := time.ParseInLocation("2006-01-02", fecha, r.loc)
	if err != nil {
		return nil, httperr.ErrBusinessf("fecha_invalida", "Fecha inválida: %q, se espera AAAA-MM-DD", fecha)
	}
	fin := inicio.Add(24 * time.Hour)

	var recibos []models.Recibo
	if err := r.db.WithContext(ctx).
		Preload("Cita.Paciente").
		Where(
			"estado = ? AND fecha_cobro >= ? AND fecha_cobro < ?",
			domrecibo.EstadoActivo, inicio, fin,
		).
		Order("fecha_cobro DESC").
		Find(&recibos).Error; err != nil {
		return nil, err
	}
	return recibos, nil
}

// --------------------------------------------------
// Cierre
// --------------------------------------------------

// ObtenerPorFecha devuelve (nil, nil) cuando la fecha no tiene cierre.
func (r *CierreGormRepository) ObtenerPorFecha(
	ctx context.Context,
	fecha string,
) (*models.Cierre, error) {

	var c models.Cierre
	err := r.db.WithContext(ctx).
		Preload("UsuarioCierre").
		Preload("UsuarioReapertura").
		Where("fecha_cierre = ?", fecha).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CierreGormRepository) ObtenerPorID(
	ctx context.Context,
	id uint,
) (*models.Cierre, error) {

	var c models.Cierre
	if err := r.db.WithContext(ctx).
		Preload("UsuarioCierre").
		Preload("UsuarioReapertura").
		First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CierreGormRepository) Crear(ctx context.Context, c *models.Cierre) error {
	err := r.db.WithContext(ctx).
		Omit("UsuarioCierre", "UsuarioReapertura").
		Create(c).Error

	// el índice único sobre fecha_cierre respalda "un cierre por fecha":
	// dos cierres concurrentes del mismo día colisionan aquí
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusinessf(
			"cierre_activo",
			"Ya existe un cierre activo para la fecha %s, debe reabrirlo primero",
			c.FechaCierre,
		)
	}
	return err
}

func (r *CierreGormRepository) Actualizar(ctx context.Context, c *models.Cierre) error {
	return r.db.WithContext(ctx).
		Omit("UsuarioCierre", "UsuarioReapertura").
		Save(c).Error
}

func (r *CierreGormRepository) Listar(
	ctx context.Context,
	f domain.FiltroHistorial,
) ([]models.Cierre, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Cierre{})

	if f.FechaDesde != "" {
		q = q.Where("fecha_cierre >= ?", f.FechaDesde)
	}
	if f.FechaHasta != "" {
		q = q.Where("fecha_cierre <= ?", f.FechaHasta)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cierres []models.Cierre
	if err := q.
		Preload("UsuarioCierre").
		Preload("UsuarioReapertura").
		Order("fecha_cierre DESC, hora_cierre DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&cierres).Error; err != nil {
		return nil, 0, err
	}

	return cierres, total, nil
}

func (r *CierreGormRepository) Eliminar(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Cierre{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*CierreGormRepository)(nil)
