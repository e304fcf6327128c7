package infra

import (
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection, runs migrations and ensures the
// ticket folio sequence exists.
func NewDatabase(dsn string, env string) (*gorm.DB, error) {
	gormLevel := logger.Warn
	if env == "development" {
		gormLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Proveedor{},
		&model.Articulo{},
		&model.Combo{},
		&model.DetalleCombo{},
		&model.PuntoEntrega{},
		&model.Entrada{},
		&model.DetalleEntrada{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.MovimientoStock{},
		&model.Bitacora{},
		&model.Configuracion{},
	); err != nil {
		return nil, err
	}

	// Folio numbers come from a dedicated sequence taken inside the sale
	// transaction: rollbacks may leave gaps, never duplicates.
	if err := db.Exec(`CREATE SEQUENCE IF NOT EXISTS ventas_folio_seq START 1`).Error; err != nil {
		return nil, err
	}

	log.Info().Msg("base de datos conectada y migrada")
	return db, nil
}
