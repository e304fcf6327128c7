package repository

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComboRepository interface {
	Create(ctx context.Context, c *model.Combo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Combo, error)
	List(ctx context.Context) ([]model.Combo, error)
	// Update replaces the header and the whole recipe in one transaction.
	Update(ctx context.Context, c *model.Combo) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// FindRecetaTx loads the recipe lines inside a sale transaction.
	FindRecetaTx(tx *gorm.DB, comboID uuid.UUID) ([]model.DetalleCombo, error)
}

type comboRepo struct{ db *gorm.DB }

func NewComboRepository(db *gorm.DB) ComboRepository { return &comboRepo{db: db} }

func (r *comboRepo) Create(ctx context.Context, c *model.Combo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comboRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Combo, error) {
	var c model.Combo
	err := r.db.WithContext(ctx).
		Preload("Ingredientes.Articulo").
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *comboRepo) List(ctx context.Context) ([]model.Combo, error) {
	var combos []model.Combo
	err := r.db.WithContext(ctx).
		Preload("Ingredientes.Articulo").
		Where("activo = true").
		Order("nombre ASC").
		Find(&combos).Error
	return combos, err
}

func (r *comboRepo) Update(ctx context.Context, c *model.Combo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Combo{}).Where("id = ?", c.ID).
			Updates(map[string]interface{}{
				"nombre": c.Nombre,
				"codigo": c.Codigo,
				"precio": c.Precio,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("combo_id = ?", c.ID).Delete(&model.DetalleCombo{}).Error; err != nil {
			return err
		}
		for i := range c.Ingredientes {
			c.Ingredientes[i].ComboID = c.ID
		}
		return tx.Create(&c.Ingredientes).Error
	})
}

func (r *comboRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Combo{}).
		Where("id = ?", id).Update("activo", false).Error
}

func (r *comboRepo) FindRecetaTx(tx *gorm.DB, comboID uuid.UUID) ([]model.DetalleCombo, error) {
	var receta []model.DetalleCombo
	err := tx.Preload("Articulo").Where("combo_id = ?", comboID).Find(&receta).Error
	return receta, err
}
