package dto

import "github.com/shopspring/decimal"

type ItemEntradaRequest struct {
	IdArticulo string          `json:"id_articulo" validate:"required,uuid"`
	Cantidad   int             `json:"cantidad"    validate:"required,min=1"`
	Costo      decimal.Decimal `json:"costo"       validate:"min=0"`
}

type RegistrarEntradaRequest struct {
	IdProveedor string               `json:"id_proveedor" validate:"required,uuid"`
	Total       decimal.Decimal      `json:"total"        validate:"min=0"`
	Comentarios string               `json:"comentarios"`
	Productos   []ItemEntradaRequest `json:"productos"    validate:"dive"`
}

type EntradaResponse struct {
	ID      string `json:"id"`
	Mensaje string `json:"mensaje"`
}

type EntradaListItem struct {
	ID           string          `json:"id"`
	Fecha        string          `json:"fecha"`
	Total        decimal.Decimal `json:"total"`
	Comentarios  string          `json:"comentarios"`
	NomProveedor string          `json:"nom_proveedor"`
	RFC          string          `json:"rfc"`
	Usuario      string          `json:"usuario"`
}

type DetalleEntradaResponse struct {
	NomArticulo   string          `json:"nom_articulo"`
	CodArticulo   string          `json:"cod_articulo"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}
