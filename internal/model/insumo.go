package model

import (
	"time"

	"github.com/google/uuid"
)

// Insumo is a raw supply consumed by production, distinct from a sellable
// Producto. Stock is expressed in whole units of UnidadMedida.
type Insumo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"index;not null"`
	UnidadMedida string    `gorm:"not null;default:'unidad'"` // kg | g | l | unidad
	Stock        int       `gorm:"not null;default:0"`
	StockMinimo  int       `gorm:"not null;default:10"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Insumo) TableName() string { return "insumos" }
