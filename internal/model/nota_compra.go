package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotaCompra records a supplier transaction. Its line items live in one
// tagged collection (DetalleCompra) covering both insumo and producto buys.
type NotaCompra struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FechaPedido      time.Time `gorm:"type:date;not null"` // fecha en que se colocó la orden
	FechaEntrega     time.Time `gorm:"type:date;not null"`
	UsuarioID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProveedorCodigo  string    `gorm:"size:20;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Usuario   *Usuario        `gorm:"foreignKey:UsuarioID"`
	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorCodigo;references:Codigo"`
	Detalles  []DetalleCompra `gorm:"foreignKey:NotaCompraID"`
}

func (NotaCompra) TableName() string { return "notas_compra" }

// Item kinds for DetalleCompra.
const (
	ItemInsumo   = "insumo"
	ItemProducto = "producto"
)

// DetalleCompra is one purchase line, keyed by (nota, tipo, item). The same
// insumo or producto can appear at most once per nota — the composite primary
// key is the authoritative guard, the service pre-check only produces the
// friendly message.
type DetalleCompra struct {
	NotaCompraID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemTipo       string          `gorm:"primaryKey;type:varchar(10)"` // insumo | producto
	ItemID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DetalleCompra) TableName() string { return "detalle_compras" }
