package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido is an order placed by a client. Total is denormalized but owned by
// the server: it is recomputed from the detalles inside the same transaction
// as every line-item mutation and never taken from the caller.
// Entregado only transitions false → true via the delivery confirmation.
type Pedido struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FechaPedido  time.Time       `gorm:"type:date;not null"`
	FechaEntrega time.Time       `gorm:"type:date;not null"`
	Tipo         string          `gorm:"not null"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Pagado       bool            `gorm:"not null;default:false"`
	Entregado    bool            `gorm:"not null;default:false"`
	CICliente    string          `gorm:"column:ci_cliente;size:20;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Cliente  *Cliente        `gorm:"foreignKey:CICliente;references:CI"`
	Detalles []DetallePedido `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

// Estado values derived from the pagado/entregado flags.
const (
	EstadoPendiente  = "Pendiente"
	EstadoConfirmado = "Confirmado"
	EstadoEntregado  = "Entregado"
)

// Estado derives the order status label. Priority: entregado wins over
// pagado. Recomputed on every read, never stored.
func (p *Pedido) Estado() string {
	switch {
	case p.Entregado:
		return EstadoEntregado
	case p.Pagado:
		return EstadoConfirmado
	default:
		return EstadoPendiente
	}
}

// DetallePedido is one order line, keyed by (producto, pedido). PrecioUnitario
// is snapshotted at insert time and never re-read from Producto.
type DetallePedido struct {
	ProductoID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }
