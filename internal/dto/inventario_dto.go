package dto

import "github.com/shopspring/decimal"

// ─── Producto ────────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre         string          `json:"nombre"          validate:"required"`
	Descripcion    *string         `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
	StockMinimo    int             `json:"stock_minimo"    validate:"min=0"`
	CategoriaID    *string         `json:"categoria_id"    validate:"omitempty,uuid"`
}

type ProductoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Descripcion    *string         `json:"descripcion,omitempty"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Stock          int             `json:"stock"`
	StockMinimo    int             `json:"stock_minimo"`
	Categoria      string          `json:"categoria,omitempty"`
	Activo         bool            `json:"activo"`
}

type ProductoFilter struct {
	Nombre    string `form:"nombre"`
	Categoria string `form:"categoria"`
	Activo    string `form:"activo"` // "false" | "all" | default activos
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ─── Insumo ──────────────────────────────────────────────────────────────────

type CrearInsumoRequest struct {
	Nombre       string `json:"nombre"        validate:"required"`
	UnidadMedida string `json:"unidad_medida" validate:"required,oneof=kg g l ml unidad"`
	StockMinimo  int    `json:"stock_minimo"  validate:"min=0"`
}

type InsumoResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	UnidadMedida string `json:"unidad_medida"`
	Stock        int    `json:"stock"`
	StockMinimo  int    `json:"stock_minimo"`
	Activo       bool   `json:"activo"`
}

// ─── Stock ───────────────────────────────────────────────────────────────────

type AjustarStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo" validate:"required,min=5"`
}

type MovimientoStockResponse struct {
	ID            string `json:"id"`
	ItemTipo      string `json:"item_tipo"`
	ItemID        string `json:"item_id"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Motivo        string `json:"motivo,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// AlertaStockResponse flags an item at or below its minimum.
type AlertaStockResponse struct {
	ItemTipo    string `json:"item_tipo"`
	ItemID      string `json:"item_id"`
	Nombre      string `json:"nombre"`
	Stock       int    `json:"stock"`
	StockMinimo int    `json:"stock_minimo"`
}
