package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Combo is a bundled product sold at its own price. Selling one unit consumes
// Cantidad units of each ingredient Articulo in its recipe.
type Combo struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string          `gorm:"not null"`
	Codigo string          `gorm:"uniqueIndex;not null"`
	Precio decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Activo bool            `gorm:"not null;default:true"`
	IdUsuarioCreacion *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Ingredientes []DetalleCombo `gorm:"foreignKey:ComboID"`
}

func (Combo) TableName() string { return "combos" }

// DetalleCombo is one recipe line of a Combo.
type DetalleCombo struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComboID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ArticuloID uuid.UUID `gorm:"type:uuid;not null"`
	Cantidad   int       `gorm:"not null"`

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (DetalleCombo) TableName() string { return "detalle_combos" }
