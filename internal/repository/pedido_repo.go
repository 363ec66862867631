package repository

import (
	"context"
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoRepository owns the pedido aggregate and its detalle collection.
// Detalle writes always run inside a caller transaction because they carry a
// total recompute with them.
type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context) ([]model.Pedido, error)
	ListEntreFechas(ctx context.Context, desde, hasta *time.Time) ([]model.Pedido, error)
	SaveTx(tx *gorm.DB, p *model.Pedido) error
	UpdateEntregado(ctx context.Context, id uuid.UUID) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error)

	// Detalles
	CreateDetalleTx(tx *gorm.DB, d *model.DetallePedido) error
	FindDetalle(ctx context.Context, productoID, pedidoID uuid.UUID) (*model.DetallePedido, error)
	FindDetalleTx(tx *gorm.DB, productoID, pedidoID uuid.UUID) (*model.DetallePedido, error)
	ListDetalles(ctx context.Context) ([]model.DetallePedido, error)
	ListDetallesByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error)
	SaveDetalleTx(tx *gorm.DB, d *model.DetallePedido) error
	DeleteDetalleTx(tx *gorm.DB, productoID, pedidoID uuid.UUID) error

	// SumDetallesTx recomputes the aggregate total from the stored detalles.
	SumDetallesTx(tx *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error)
	UpdateTotalTx(tx *gorm.DB, pedidoID uuid.UUID, total decimal.Decimal) error

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles.Producto").
		First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles.Producto").
		Order("fecha_pedido DESC, created_at DESC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListEntreFechas(ctx context.Context, desde, hasta *time.Time) ([]model.Pedido, error) {
	q := r.db.WithContext(ctx).Preload("Cliente")
	if desde != nil {
		q = q.Where("fecha_pedido >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha_pedido <= ?", *hasta)
	}
	var pedidos []model.Pedido
	err := q.Order("fecha_pedido ASC, created_at ASC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) SaveTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Save(p).Error
}

func (r *pedidoRepo) UpdateEntregado(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("id = ?", id).Update("entregado", true).Error
}

// DeleteTx removes the pedido and cascades over its detalles explicitly —
// the store's referential behavior is never relied upon.
func (r *pedidoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("pedido_id = ?", id).Delete(&model.DetallePedido{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Pedido{}, id).Error
}

func (r *pedidoRepo) ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.Pedido{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ── Detalles ─────────────────────────────────────────────────────────────────

func (r *pedidoRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetallePedido) error {
	return tx.Create(d).Error
}

func (r *pedidoRepo) FindDetalle(ctx context.Context, productoID, pedidoID uuid.UUID) (*model.DetallePedido, error) {
	var d model.DetallePedido
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("producto_id = ? AND pedido_id = ?", productoID, pedidoID).
		First(&d).Error
	return &d, err
}

func (r *pedidoRepo) FindDetalleTx(tx *gorm.DB, productoID, pedidoID uuid.UUID) (*model.DetallePedido, error) {
	var d model.DetallePedido
	err := tx.Where("producto_id = ? AND pedido_id = ?", productoID, pedidoID).First(&d).Error
	return &d, err
}

func (r *pedidoRepo) ListDetalles(ctx context.Context) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.WithContext(ctx).Preload("Producto").Find(&detalles).Error
	return detalles, err
}

func (r *pedidoRepo) ListDetallesByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("pedido_id = ?", pedidoID).
		Find(&detalles).Error
	return detalles, err
}

func (r *pedidoRepo) SaveDetalleTx(tx *gorm.DB, d *model.DetallePedido) error {
	return tx.Save(d).Error
}

func (r *pedidoRepo) DeleteDetalleTx(tx *gorm.DB, productoID, pedidoID uuid.UUID) error {
	return tx.Where("producto_id = ? AND pedido_id = ?", productoID, pedidoID).
		Delete(&model.DetallePedido{}).Error
}

func (r *pedidoRepo) SumDetallesTx(tx *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.Model(&model.DetallePedido{}).
		Where("pedido_id = ?", pedidoID).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *pedidoRepo) UpdateTotalTx(tx *gorm.DB, pedidoID uuid.UUID, total decimal.Decimal) error {
	return tx.Model(&model.Pedido{}).Where("id = ?", pedidoID).Update("total", total).Error
}
