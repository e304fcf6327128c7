package dto

type ConfiguracionRequest struct {
	NombreTienda  string  `json:"nombre_tienda" validate:"required,max=100"`
	Direccion     string  `json:"direccion"`
	Telefono      string  `json:"telefono"`
	RedSocial     string  `json:"red_social"`
	MensajeTicket string  `json:"mensaje_ticket"`
	LogoUrl       *string `json:"logo_url"`
}

type ConfiguracionResponse struct {
	NombreTienda  string  `json:"nombre_tienda"`
	Direccion     string  `json:"direccion"`
	Telefono      string  `json:"telefono"`
	RedSocial     string  `json:"red_social"`
	MensajeTicket string  `json:"mensaje_ticket"`
	LogoUrl       *string `json:"logo_url"`
}
