package model

import (
	"time"

	"github.com/google/uuid"
)

// Bitacora is one audit-log row: who did what against which route. Rows are
// written asynchronously by the worker pool so a slow insert never blocks the
// request that produced it.
type Bitacora struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID *uuid.UUID `gorm:"type:uuid;index"`
	Metodo    string     `gorm:"type:varchar(10);not null"`
	Ruta      string     `gorm:"not null"`
	Mensaje   string     `gorm:"not null"`
	CreatedAt time.Time
}

func (Bitacora) TableName() string { return "bitacora" }
