package model

import (
	"time"

	"github.com/google/uuid"
)

// PuntoEntrega is a named fulfillment location attached to every sale.
// LinkGoogleMaps, when present, is rendered as a QR code on the ticket.
type PuntoEntrega struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombrePunto    string    `gorm:"not null"`
	LinkGoogleMaps *string
	Activo         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PuntoEntrega) TableName() string { return "puntos_entrega" }
