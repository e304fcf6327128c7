package dto

import "github.com/shopspring/decimal"

type IngredienteRequest struct {
	IdArticulo string `json:"id_articulo" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type CrearComboRequest struct {
	Nombre       string               `json:"nombre" validate:"required,max=100"`
	Codigo       string               `json:"codigo"`
	Precio       decimal.Decimal      `json:"precio" validate:"min=0"`
	Ingredientes []IngredienteRequest `json:"ingredientes" validate:"required,min=1,dive"`
}

type IngredienteResponse struct {
	IdArticulo   string `json:"id_articulo"`
	NomArticulo  string `json:"nom_articulo"`
	NombreUnidad string `json:"nombre_unidad"`
	Cantidad     int    `json:"cantidad"`
}

type ComboResponse struct {
	ID           string                `json:"id"`
	Nombre       string                `json:"nombre"`
	Codigo       string                `json:"codigo"`
	Precio       decimal.Decimal       `json:"precio"`
	Activo       bool                  `json:"activo"`
	Ingredientes []IngredienteResponse `json:"ingredientes"`
}
