package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimientoStock registra cada cambio de stock de un producto o insumo.
// Se crea automáticamente al producir, comprar o entregar un pedido.
type MovimientoStock struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemTipo      string     `gorm:"type:varchar(10);not null;index"` // insumo | producto
	ItemID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Tipo          string     `gorm:"not null"` // "produccion" | "compra" | "entrega_pedido" | "ajuste_manual"
	Cantidad      int        `gorm:"not null"` // positive = entrada, negative = salida
	StockAnterior int        `gorm:"not null"`
	StockNuevo    int        `gorm:"not null"`
	Motivo        string
	ReferenciaID  *uuid.UUID `gorm:"type:uuid"` // produccion_id o nota_compra_id si aplica
	CreatedAt     time.Time
}

// TableName overrides GORM's default pluralization.
func (MovimientoStock) TableName() string { return "movimientos_stock" }
