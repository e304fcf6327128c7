package dto

// BitacoraFilter is bound from the query string of GET /api/bitacora.
type BitacoraFilter struct {
	Accion string `form:"accion"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type BitacoraEntry struct {
	ID      string `json:"id"`
	Usuario string `json:"usuario"`
	Accion  string `json:"accion"`
	Detalle string `json:"detalle"`
	Fecha   string `json:"fecha"`
}

type BitacoraListResponse struct {
	Data  []BitacoraEntry `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
