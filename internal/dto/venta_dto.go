package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemVentaRequest is one cart line. Tipo decides whether ID references an
// Articulo or a Combo.
type ItemVentaRequest struct {
	ID       string          `json:"id"       validate:"required,uuid"`
	Cantidad int             `json:"cantidad" validate:"required,min=1"`
	Precio   decimal.Decimal `json:"precio"   validate:"min=0"`
	Tipo     string          `json:"tipo"     validate:"required,oneof=ARTICULO COMBO"`
}

type RegistrarVentaRequest struct {
	Total          decimal.Decimal    `json:"total"            validate:"min=0"`
	ClienteNombre  string             `json:"cliente_nombre"`
	IdPuntoEntrega string             `json:"id_punto_entrega"`
	Productos      []ItemVentaRequest `json:"productos"        validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID      string `json:"id"`
	Folio   int    `json:"folio"`
	Mensaje string `json:"mensaje"`
}

// VentaListItem is one row of the sales history (GET /api/ventas).
type VentaListItem struct {
	ID            string          `json:"id"`
	Folio         int             `json:"folio"`
	Fecha         string          `json:"fecha"`
	Total         decimal.Decimal `json:"total"`
	Estado        string          `json:"estado"`
	ClienteNombre string          `json:"cliente_nombre"`
	Vendedor      string          `json:"vendedor"`
	PuntoEntrega  string          `json:"punto_entrega"`
}

// DetalleVentaResponse is one ticket line (GET /api/ventas/:id/detalles).
type DetalleVentaResponse struct {
	Producto       string          `json:"producto"`
	Tipo           string          `json:"tipo"` // ARTICULO | COMBO
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
