package repository

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PuntoEntregaRepository interface {
	Create(ctx context.Context, p *model.PuntoEntrega) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PuntoEntrega, error)
	List(ctx context.Context) ([]model.PuntoEntrega, error)
	Update(ctx context.Context, p *model.PuntoEntrega) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// ExistsTx checks the point inside a sale transaction.
	ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error)
}

type puntoRepo struct{ db *gorm.DB }

func NewPuntoEntregaRepository(db *gorm.DB) PuntoEntregaRepository { return &puntoRepo{db: db} }

func (r *puntoRepo) Create(ctx context.Context, p *model.PuntoEntrega) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *puntoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PuntoEntrega, error) {
	var p model.PuntoEntrega
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *puntoRepo) List(ctx context.Context) ([]model.PuntoEntrega, error) {
	var puntos []model.PuntoEntrega
	err := r.db.WithContext(ctx).
		Where("activo = true").
		Order("nombre_punto ASC").
		Find(&puntos).Error
	return puntos, err
}

func (r *puntoRepo) Update(ctx context.Context, p *model.PuntoEntrega) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *puntoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.PuntoEntrega{}).
		Where("id = ?", id).Update("activo", false).Error
}

func (r *puntoRepo) ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.PuntoEntrega{}).
		Where("id = ? AND activo = true", id).
		Count(&count).Error
	return count > 0, err
}
