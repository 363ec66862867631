package model

import "time"

// Proveedor is keyed by its commercial code, referenced by NotaCompra.
type Proveedor struct {
	Codigo      string `gorm:"primaryKey;size:20"`
	RazonSocial string `gorm:"not null"`
	Telefono    *string
	Email       *string
	Direccion   *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
