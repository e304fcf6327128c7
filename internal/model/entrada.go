package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entrada is an inbound stock event (purchase from a supplier).
// Immutable once committed; corrections are new compensating transactions.
type Entrada struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Comentarios string
	IdUsuarioCreacion *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time

	Proveedor *Proveedor       `gorm:"foreignKey:ProveedorID"`
	Usuario   *Usuario         `gorm:"foreignKey:IdUsuarioCreacion"`
	Detalles  []DetalleEntrada `gorm:"foreignKey:EntradaID"`
}

func (Entrada) TableName() string { return "entradas" }

// DetalleEntrada is one received line: quantity and unit cost for an article.
type DetalleEntrada struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntradaID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID    uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad      int             `gorm:"not null"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (DetalleEntrada) TableName() string { return "detalle_entradas" }
