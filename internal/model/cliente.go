package model

import "time"

// Cliente is keyed by its carnet de identidad — a natural key supplied by the
// client, not generated.
type Cliente struct {
	CI        string `gorm:"primaryKey;size:20"`
	Nombre    string `gorm:"not null"`
	Sexo      string `gorm:"type:char(1);not null"` // M | F
	Telefono  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
