package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Articulo is a sellable / purchasable inventory item.
// StockActual and CostoPromedio are owned by the stock ledger: they only
// change through entrada/venta transactions, never by direct edits.
type Articulo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CodArticulo string    `gorm:"uniqueIndex;not null"`
	NomArticulo string    `gorm:"index;not null"`
	Categoria   string    `gorm:"not null;default:'GENERAL'"`
	Talla       *string
	Color       *string
	DetallesTecnicos *string
	NombreUnidad     string `gorm:"not null;default:'Pza'"`
	Imagen           *string
	StockActual int             `gorm:"not null;default:0"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// CostoPromedio is the moving weighted-average unit cost, recomputed on
	// every entrada. Four decimal places so repeated averaging doesn't drift.
	CostoPromedio  decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	CantidadMinima int             `gorm:"not null;default:1"`
	CantidadMaxima int             `gorm:"not null;default:10"`
	ProveedorID    *uuid.UUID      `gorm:"type:uuid;index"`
	Activo         bool            `gorm:"not null;default:true"`
	IdUsuarioCreacion *uuid.UUID   `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Articulo) TableName() string { return "articulos" }
