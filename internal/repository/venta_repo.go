package repository

import (
	"context"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	// NextFolio takes the next value of the ticket sequence inside the tx,
	// so a rolled-back sale can leave a gap but never a duplicate.
	NextFolio(tx *gorm.DB) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, limit int) ([]model.Venta, error)

	// Dashboard aggregates
	SumTotalDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error)
	CountDesde(ctx context.Context, desde time.Time) (int64, error)

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) NextFolio(tx *gorm.DB) (int, error) {
	var folio int
	err := tx.Raw("SELECT nextval('ventas_folio_seq')").Scan(&folio).Error
	return folio, err
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("PuntoEntrega").
		Preload("Detalles.Articulo").
		Preload("Detalles.Combo").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, limit int) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("PuntoEntrega").
		Order("created_at DESC").
		Limit(limit).
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) SumTotalDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("created_at >= ? AND estado = 'COMPLETADA'", desde).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *ventaRepo) CountDesde(ctx context.Context, desde time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("created_at >= ? AND estado = 'COMPLETADA'", desde).
		Count(&count).Error
	return count, err
}
