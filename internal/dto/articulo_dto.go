package dto

import "github.com/shopspring/decimal"

type CrearArticuloRequest struct {
	CodArticulo      string          `json:"cod_articulo"`
	NomArticulo      string          `json:"nom_articulo"  validate:"required,max=100"`
	IdProveedor      string          `json:"id_proveedor"  validate:"required,uuid"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"  validate:"min=0"`
	Categoria        string          `json:"categoria"     validate:"max=50"`
	Talla            *string         `json:"talla"`
	Color            *string         `json:"color"`
	DetallesTecnicos *string         `json:"detalles_tecnicos"`
	NombreUnidad     string          `json:"nombre_unidad" validate:"max=20"`
	CantidadMinima   int             `json:"cantidad_minima" validate:"min=0"`
	CantidadMaxima   int             `json:"cantidad_maxima" validate:"min=0"`
}

type ActualizarArticuloRequest struct {
	NomArticulo      string          `json:"nom_articulo"  validate:"required,max=100"`
	IdProveedor      string          `json:"id_proveedor"  validate:"required,uuid"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"  validate:"min=0"`
	Categoria        string          `json:"categoria"     validate:"max=50"`
	Talla            *string         `json:"talla"`
	Color            *string         `json:"color"`
	DetallesTecnicos *string         `json:"detalles_tecnicos"`
	NombreUnidad     string          `json:"nombre_unidad" validate:"max=20"`
	CantidadMinima   int             `json:"cantidad_minima" validate:"min=0"`
	CantidadMaxima   int             `json:"cantidad_maxima" validate:"min=0"`
}

type ArticuloResponse struct {
	ID               string          `json:"id"`
	CodArticulo      string          `json:"cod_articulo"`
	NomArticulo      string          `json:"nom_articulo"`
	Categoria        string          `json:"categoria"`
	Talla            *string         `json:"talla"`
	Color            *string         `json:"color"`
	DetallesTecnicos *string         `json:"detalles_tecnicos"`
	NombreUnidad     string          `json:"nombre_unidad"`
	Imagen           *string         `json:"imagen"`
	StockActual      int             `json:"stock_actual"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	CostoPromedio    decimal.Decimal `json:"costo_promedio"`
	CantidadMinima   int             `json:"cantidad_minima"`
	CantidadMaxima   int             `json:"cantidad_maxima"`
	NomProveedor     string          `json:"nom_proveedor"`
	Activo           bool            `json:"activo"`
}

// ConsultaPrecioResponse is the public, cacheable price-check payload.
type ConsultaPrecioResponse struct {
	NomArticulo     string          `json:"nom_articulo"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	StockDisponible int             `json:"stock_disponible"`
	Categoria       string          `json:"categoria"`
}

// AlertaStockResponse flags an article at or below its minimum.
type AlertaStockResponse struct {
	ID             string `json:"id"`
	NomArticulo    string `json:"nom_articulo"`
	StockActual    int    `json:"stock_actual"`
	CantidadMinima int    `json:"cantidad_minima"`
}

// MovimientoStockResponse is one ledger movement row.
type MovimientoStockResponse struct {
	ID            string `json:"id"`
	Articulo      string `json:"articulo"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Motivo        string `json:"motivo"`
	Fecha         string `json:"fecha"`
}
