package dto

import "github.com/shopspring/decimal"

type CrearNotaCompraRequest struct {
	FechaPedido      string `json:"fecha_pedido"     validate:"required,datetime=2006-01-02"`
	FechaEntrega     string `json:"fecha_entrega"    validate:"required,datetime=2006-01-02"`
	UsuarioID        string `json:"usuario_id"       validate:"required,uuid"`
	ProveedorCodigo  string `json:"proveedor_codigo" validate:"required"`
}

type ActualizarNotaCompraRequest = CrearNotaCompraRequest

// AgregarDetalleCompraRequest covers both line variants; item_tipo selects
// whether item_id references an insumo or a producto.
type AgregarDetalleCompraRequest struct {
	NotaCompraID   string          `json:"nota_compra_id"  validate:"required,uuid"`
	ItemTipo       string          `json:"item_tipo"       validate:"required,oneof=insumo producto"`
	ItemID         string          `json:"item_id"         validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

type ActualizarDetalleCompraRequest struct {
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

type DetalleCompraResponse struct {
	NotaCompraID   string          `json:"nota_compra_id"`
	ItemTipo       string          `json:"item_tipo"`
	ItemID         string          `json:"item_id"`
	Item           string          `json:"item,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

type NotaCompraResponse struct {
	ID              string                  `json:"id"`
	FechaPedido     string                  `json:"fecha_pedido"`
	FechaEntrega    string                  `json:"fecha_entrega"`
	UsuarioID       string                  `json:"usuario_id"`
	Usuario         string                  `json:"usuario,omitempty"`
	ProveedorCodigo string                  `json:"proveedor_codigo"`
	Proveedor       string                  `json:"proveedor,omitempty"`
	Detalles        []DetalleCompraResponse `json:"detalles"`
}

type NotaCompraConMensaje struct {
	Message    string             `json:"message"`
	NotaCompra NotaCompraResponse `json:"nota_compra"`
}
