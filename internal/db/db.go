package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rehacentro/clinica-api/internal/config"
	"github.com/rehacentro/clinica-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// TranslateError convierte violaciones de unicidad en
		// gorm.ErrDuplicatedKey, que los repositorios traducen a
		// errores de negocio.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Rol{},
		&models.Permiso{},
		&models.Usuario{},
		&models.Paciente{},
		&models.Terapeuta{},
		&models.Servicio{},
		&models.Cita{},
		&models.Recibo{},
		&models.Cierre{},
		&models.Auditoria{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
