package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/rehacentro/clinica-api/internal/domain/permiso"
	"github.com/rehacentro/clinica-api/internal/models"
)

type PermisoGormRepository struct {
	db *gorm.DB
}

func NewPermisoGormRepository(db *gorm.DB) *PermisoGormRepository {
	return &PermisoGormRepository{db: db}
}

func (r *PermisoGormRepository) TienePermiso(
	ctx context.Context,
	usuarioID uint,
	codigo string,
) (bool, error) {

	var usuario models.Usuario
	if err := r.db.WithContext(ctx).
		Preload("Rol").
		First(&usuario, usuarioID).Error; err != nil {
		return false, err
	}

	if usuario.Rol.EsAdmin {
		return true, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Permiso{}).
		Joins("JOIN rol_permisos ON rol_permisos.permiso_id = permisos.id").
		Where("rol_permisos.rol_id = ? AND permisos.codigo = ?", usuario.RolID, codigo).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Checker = (*PermisoGormRepository)(nil)
