package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// Rol: "vendedor" | "panadero" | "administrador"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RolPermiso maps a role to one named permission string (CREAR_PEDIDO, …).
// Every protected route names the permission it requires; the middleware
// resolves the caller's role against this table.
type RolPermiso struct {
	Rol     string `gorm:"primaryKey;type:varchar(20)"`
	Permiso string `gorm:"primaryKey;type:varchar(40)"`
}

func (RolPermiso) TableName() string { return "rol_permisos" }
