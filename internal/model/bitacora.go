package model

import (
	"time"

	"github.com/google/uuid"
)

// Bitacora is one audit-log entry. Appended after a mutation commits;
// writes are best-effort and never roll back the operation they describe.
type Bitacora struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Accion    string    `gorm:"not null"` // e.g. NUEVA_VENTA, NUEVA_COMPRA, CREAR_ARTICULO
	Detalle   string
	CreatedAt time.Time `gorm:"index"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Bitacora) TableName() string { return "bitacora" }
