package dto

type PuntoEntregaRequest struct {
	NombrePunto    string  `json:"nombre_punto" validate:"required,max=100"`
	LinkGoogleMaps *string `json:"link_google_maps" validate:"omitempty,url"`
}

type PuntoEntregaResponse struct {
	ID             string  `json:"id"`
	NombrePunto    string  `json:"nombre_punto"`
	LinkGoogleMaps *string `json:"link_google_maps"`
	Activo         bool    `json:"activo"`
}
