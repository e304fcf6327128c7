package dto

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=vendedor administrador"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Email    string `json:"email"  validate:"required,email"`
	Rol      string `json:"rol"    validate:"omitempty,oneof=vendedor administrador"`
	Password string `json:"password"`
}

type UsuarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}
