package model

import (
	"time"

	"github.com/google/uuid"
)

// Receta defines how a producto is made: its insumo requirements and how many
// units one batch yields.
type Receta struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Nombre      string    `gorm:"not null"`
	Rendimiento int       `gorm:"not null"` // unidades producidas por lote
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Producto *Producto      `gorm:"foreignKey:ProductoID"`
	Insumos  []RecetaInsumo `gorm:"foreignKey:RecetaID"`
}

func (Receta) TableName() string { return "recetas" }

// RecetaInsumo is the insumo quantity one batch consumes.
type RecetaInsumo struct {
	RecetaID uuid.UUID `gorm:"type:uuid;primaryKey"`
	InsumoID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Cantidad int       `gorm:"not null"`

	Insumo *Insumo `gorm:"foreignKey:InsumoID"`
}

func (RecetaInsumo) TableName() string { return "receta_insumos" }

// Produccion is one production run: Lotes batches of a receta, consuming
// insumos and raising the product's stock in a single transaction.
type Produccion struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecetaID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Fecha              time.Time `gorm:"type:date;not null"`
	Lotes              int       `gorm:"not null"`
	CantidadProducida  int       `gorm:"not null"`
	ResponsableID      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt          time.Time

	Receta       *Receta         `gorm:"foreignKey:RecetaID"`
	Responsable  *Usuario        `gorm:"foreignKey:ResponsableID"`
	Participantes []Participacion `gorm:"foreignKey:ProduccionID"`
}

func (Produccion) TableName() string { return "producciones" }

// Participacion links additional workers to a production run.
type Participacion struct {
	ProduccionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UsuarioID    uuid.UUID `gorm:"type:uuid;primaryKey"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Participacion) TableName() string { return "participaciones" }
