package repository

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ArticuloRepository defines the data access contract for articles.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type ArticuloRepository interface {
	Create(ctx context.Context, a *model.Articulo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Articulo, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Articulo, error)
	List(ctx context.Context) ([]model.Articulo, error)
	Update(ctx context.Context, a *model.Articulo) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByProveedorID(ctx context.Context, proveedorID uuid.UUID) ([]model.Articulo, error)

	// Used inside transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Articulo, error)

	// ConsumirStockTx is the single guarded decrement: the WHERE clause checks
	// availability and the SET decrements in one statement, so two concurrent
	// sales can never both pass the check. Returns false when stock was short;
	// in that case nothing was mutated.
	ConsumirStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (bool, error)

	// IngresarStockTx increments stock and sets the new weighted-average cost
	// in the same UPDATE.
	IngresarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int, nuevoCosto decimal.Decimal) error

	// Stock alerts
	ListStockBajo(ctx context.Context) ([]model.Articulo, error)
	CountStockBajo(ctx context.Context) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type articuloRepo struct{ db *gorm.DB }

func NewArticuloRepository(db *gorm.DB) ArticuloRepository { return &articuloRepo{db: db} }

func (r *articuloRepo) Create(ctx context.Context, a *model.Articulo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *articuloRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Articulo, error) {
	var a model.Articulo
	err := r.db.WithContext(ctx).Preload("Proveedor").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *articuloRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Articulo, error) {
	var a model.Articulo
	err := r.db.WithContext(ctx).Where("cod_articulo = ? AND activo = true", codigo).First(&a).Error
	return &a, err
}

func (r *articuloRepo) List(ctx context.Context) ([]model.Articulo, error) {
	var articulos []model.Articulo
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Where("activo = true").
		Order("nom_articulo ASC").
		Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) Update(ctx context.Context, a *model.Articulo) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *articuloRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Articulo{}).
		Where("id = ?", id).Update("activo", false).Error
}

func (r *articuloRepo) FindByProveedorID(ctx context.Context, proveedorID uuid.UUID) ([]model.Articulo, error) {
	var articulos []model.Articulo
	err := r.db.WithContext(ctx).
		Where("proveedor_id = ? AND activo = true", proveedorID).
		Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Articulo, error) {
	var a model.Articulo
	err := tx.First(&a, "id = ?", id).Error
	return &a, err
}

func (r *articuloRepo) ConsumirStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (bool, error) {
	res := tx.Model(&model.Articulo{}).
		Where("id = ? AND stock_actual >= ?", id, cantidad).
		Update("stock_actual", gorm.Expr("stock_actual - ?", cantidad))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *articuloRepo) IngresarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int, nuevoCosto decimal.Decimal) error {
	return tx.Model(&model.Articulo{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_actual":   gorm.Expr("stock_actual + ?", cantidad),
			"costo_promedio": nuevoCosto,
		}).Error
}

func (r *articuloRepo) ListStockBajo(ctx context.Context) ([]model.Articulo, error) {
	var articulos []model.Articulo
	err := r.db.WithContext(ctx).
		Where("activo = true AND stock_actual <= cantidad_minima").
		Order("stock_actual ASC").
		Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) CountStockBajo(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Articulo{}).
		Where("activo = true AND stock_actual <= cantidad_minima").
		Count(&count).Error
	return count, err
}

func (r *articuloRepo) DB() *gorm.DB { return r.db }
