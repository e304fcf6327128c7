package repository

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"gorm.io/gorm"
)

type BitacoraRepository interface {
	Create(ctx context.Context, b *model.Bitacora) error
	List(ctx context.Context, accion string, page, limit int) ([]model.Bitacora, int64, error)
}

type bitacoraRepo struct{ db *gorm.DB }

func NewBitacoraRepository(db *gorm.DB) BitacoraRepository { return &bitacoraRepo{db: db} }

func (r *bitacoraRepo) Create(ctx context.Context, b *model.Bitacora) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bitacoraRepo) List(ctx context.Context, accion string, page, limit int) ([]model.Bitacora, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Bitacora{})
	if accion != "" {
		q = q.Where("accion = ?", accion)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entradas []model.Bitacora
	err := q.Preload("Usuario").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entradas).Error
	return entradas, total, err
}
