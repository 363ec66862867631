package repository

import (
	"context"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotaCompraRepository interface {
	CreateTx(tx *gorm.DB, n *model.NotaCompra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.NotaCompra, error)
	List(ctx context.Context) ([]model.NotaCompra, error)
	SaveTx(tx *gorm.DB, n *model.NotaCompra) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error)

	// Detalles — tagged (nota, tipo, item) composite key
	CreateDetalleTx(tx *gorm.DB, d *model.DetalleCompra) error
	FindDetalle(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (*model.DetalleCompra, error)
	DetalleExistsTx(tx *gorm.DB, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (bool, error)
	ListDetallesByNota(ctx context.Context, notaID uuid.UUID) ([]model.DetalleCompra, error)
	SaveDetalleTx(tx *gorm.DB, d *model.DetalleCompra) error
	DeleteDetalleTx(tx *gorm.DB, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) error

	DB() *gorm.DB
}

type notaCompraRepo struct{ db *gorm.DB }

func NewNotaCompraRepository(db *gorm.DB) NotaCompraRepository { return &notaCompraRepo{db: db} }

func (r *notaCompraRepo) DB() *gorm.DB { return r.db }

func (r *notaCompraRepo) CreateTx(tx *gorm.DB, n *model.NotaCompra) error {
	return tx.Create(n).Error
}

func (r *notaCompraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.NotaCompra, error) {
	var n model.NotaCompra
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Proveedor").
		Preload("Detalles").
		First(&n, id).Error
	return &n, err
}

func (r *notaCompraRepo) List(ctx context.Context) ([]model.NotaCompra, error) {
	var notas []model.NotaCompra
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Proveedor").
		Preload("Detalles").
		Order("fecha_pedido DESC, created_at DESC").
		Find(&notas).Error
	return notas, err
}

func (r *notaCompraRepo) SaveTx(tx *gorm.DB, n *model.NotaCompra) error {
	return tx.Save(n).Error
}

// DeleteTx removes the nota and its detalles in the same transaction.
func (r *notaCompraRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("nota_compra_id = ?", id).Delete(&model.DetalleCompra{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.NotaCompra{}, id).Error
}

func (r *notaCompraRepo) ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.NotaCompra{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ── Detalles ─────────────────────────────────────────────────────────────────

func (r *notaCompraRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetalleCompra) error {
	return tx.Create(d).Error
}

func (r *notaCompraRepo) FindDetalle(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (*model.DetalleCompra, error) {
	var d model.DetalleCompra
	err := r.db.WithContext(ctx).
		Where("nota_compra_id = ? AND item_tipo = ? AND item_id = ?", notaID, itemTipo, itemID).
		First(&d).Error
	return &d, err
}

func (r *notaCompraRepo) DetalleExistsTx(tx *gorm.DB, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.DetalleCompra{}).
		Where("nota_compra_id = ? AND item_tipo = ? AND item_id = ?", notaID, itemTipo, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *notaCompraRepo) ListDetallesByNota(ctx context.Context, notaID uuid.UUID) ([]model.DetalleCompra, error) {
	var detalles []model.DetalleCompra
	err := r.db.WithContext(ctx).Where("nota_compra_id = ?", notaID).Find(&detalles).Error
	return detalles, err
}

func (r *notaCompraRepo) SaveDetalleTx(tx *gorm.DB, d *model.DetalleCompra) error {
	return tx.Save(d).Error
}

func (r *notaCompraRepo) DeleteDetalleTx(tx *gorm.DB, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) error {
	return tx.Where("nota_compra_id = ? AND item_tipo = ? AND item_id = ?", notaID, itemTipo, itemID).
		Delete(&model.DetalleCompra{}).Error
}
