package repository

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntradaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, e *model.Entrada) error
	List(ctx context.Context, limit int) ([]model.Entrada, error)
	FindDetalles(ctx context.Context, entradaID uuid.UUID) ([]model.DetalleEntrada, error)
	DB() *gorm.DB
}

type entradaRepo struct{ db *gorm.DB }

func NewEntradaRepository(db *gorm.DB) EntradaRepository { return &entradaRepo{db: db} }

func (r *entradaRepo) DB() *gorm.DB { return r.db }

func (r *entradaRepo) Create(ctx context.Context, tx *gorm.DB, e *model.Entrada) error {
	return tx.WithContext(ctx).Create(e).Error
}

func (r *entradaRepo) List(ctx context.Context, limit int) ([]model.Entrada, error) {
	var entradas []model.Entrada
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Usuario").
		Order("created_at DESC").
		Limit(limit).
		Find(&entradas).Error
	return entradas, err
}

func (r *entradaRepo) FindDetalles(ctx context.Context, entradaID uuid.UUID) ([]model.DetalleEntrada, error) {
	var detalles []model.DetalleEntrada
	err := r.db.WithContext(ctx).
		Preload("Articulo").
		Where("entrada_id = ?", entradaID).
		Find(&detalles).Error
	return detalles, err
}
