package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is an outbound stock event (sale at the counter).
type Venta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Folio          int             `gorm:"uniqueIndex;not null"`
	ClienteNombre  string          `gorm:"not null;default:'Público General'"`
	PuntoEntregaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado         string          `gorm:"not null;default:'COMPLETADA'"` // COMPLETADA | ANULADA
	UsuarioID      *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt      time.Time

	Usuario      *Usuario       `gorm:"foreignKey:UsuarioID"`
	PuntoEntrega *PuntoEntrega  `gorm:"foreignKey:PuntoEntregaID"`
	Detalles     []DetalleVenta `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one sold line. Exactly one of ArticuloID / ComboID is set.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticuloID     *uuid.UUID      `gorm:"type:uuid"`
	ComboID        *uuid.UUID      `gorm:"type:uuid"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
	Combo    *Combo    `gorm:"foreignKey:ComboID"`
}

func (DetalleVenta) TableName() string { return "detalle_ventas" }
