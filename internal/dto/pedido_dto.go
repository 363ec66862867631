package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearPedidoRequest carries no total: the server owns the aggregate total
// and recomputes it from the detalles.
type CrearPedidoRequest struct {
	FechaPedido  string `json:"fecha_pedido"  validate:"required,datetime=2006-01-02"`
	FechaEntrega string `json:"fecha_entrega" validate:"required,datetime=2006-01-02"`
	Tipo         string `json:"tipo"          validate:"required,max=40"`
	Pagado       bool   `json:"pagado"`
	CICliente    string `json:"ci_cliente"    validate:"required"`
}

// ActualizarPedidoRequest replaces the mutable order fields. Entregado is not
// part of the payload — it only changes via confirmar-entrega.
type ActualizarPedidoRequest struct {
	FechaPedido  string `json:"fecha_pedido"  validate:"required,datetime=2006-01-02"`
	FechaEntrega string `json:"fecha_entrega" validate:"required,datetime=2006-01-02"`
	Tipo         string `json:"tipo"          validate:"required,max=40"`
	Pagado       bool   `json:"pagado"`
	CICliente    string `json:"ci_cliente"    validate:"required"`
}

type AgregarDetallePedidoRequest struct {
	ProductoID     string          `json:"producto_id"     validate:"required,uuid"`
	PedidoID       string          `json:"pedido_id"       validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

type ActualizarDetallePedidoRequest struct {
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetallePedidoResponse struct {
	ProductoID     string          `json:"producto_id"`
	PedidoID       string          `json:"pedido_id"`
	Producto       string          `json:"producto,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

type PedidoResponse struct {
	ID           string                  `json:"id"`
	FechaPedido  string                  `json:"fecha_pedido"`
	FechaEntrega string                  `json:"fecha_entrega"`
	Tipo         string                  `json:"tipo"`
	Total        decimal.Decimal         `json:"total"`
	Pagado       bool                    `json:"pagado"`
	Entregado    bool                    `json:"entregado"`
	CICliente    string                  `json:"ci_cliente"`
	Cliente      string                  `json:"cliente,omitempty"`
	Detalles     []DetallePedidoResponse `json:"detalles"`
}

// EstadoPedidoResponse is the derived status view of GET /api/pedido/:id/estado.
type EstadoPedidoResponse struct {
	ID           string                  `json:"id"`
	FechaPedido  string                  `json:"fecha_pedido"`
	FechaEntrega string                  `json:"fecha_entrega"`
	Pagado       bool                    `json:"pagado"`
	Entregado    bool                    `json:"entregado"`
	Estado       string                  `json:"estado"` // Pendiente | Confirmado | Entregado
	Detalles     []DetallePedidoResponse `json:"detalles"`
}

type PedidoConMensaje struct {
	Message string         `json:"message"`
	Pedido  PedidoResponse `json:"pedido"`
}
