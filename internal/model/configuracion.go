package model

import "github.com/google/uuid"

// Configuracion is the store-data singleton printed on every ticket.
type Configuracion struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreTienda  string    `gorm:"not null;default:'Mi Tienda'"`
	Direccion     string
	Telefono      string
	RedSocial     string
	MensajeTicket string `gorm:"default:'¡Gracias por su compra!'"`
	LogoUrl       *string
}

func (Configuracion) TableName() string { return "configuracion" }
