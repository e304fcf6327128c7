package repository

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"gorm.io/gorm"
)

type ConfiguracionRepository interface {
	Get(ctx context.Context) (*model.Configuracion, error)
	Save(ctx context.Context, c *model.Configuracion) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

// Get returns the single configuration row, creating it with defaults on
// first access.
func (r *configuracionRepo) Get(ctx context.Context) (*model.Configuracion, error) {
	var c model.Configuracion
	err := r.db.WithContext(ctx).First(&c).Error
	if err == gorm.ErrRecordNotFound {
		c = model.Configuracion{NombreTienda: "Aura Creativa"}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *configuracionRepo) Save(ctx context.Context, c *model.Configuracion) error {
	return r.db.WithContext(ctx).Save(c).Error
}
