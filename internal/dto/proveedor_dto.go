package dto

type ProveedorRequest struct {
	NomProveedor   string  `json:"nom_proveedor" validate:"required,max=100"`
	RFC            *string `json:"rfc"`
	Direccion      *string `json:"direccion"`
	Telefono       *string `json:"telefono"`
	Email          *string `json:"email" validate:"omitempty,email"`
	NombreContacto *string `json:"nombre_contacto"`
}

type ProveedorResponse struct {
	ID             string  `json:"id"`
	NomProveedor   string  `json:"nom_proveedor"`
	RFC            *string `json:"rfc"`
	Direccion      *string `json:"direccion"`
	Telefono       *string `json:"telefono"`
	Email          *string `json:"email"`
	NombreContacto *string `json:"nombre_contacto"`
	Activo         bool    `json:"activo"`
}
