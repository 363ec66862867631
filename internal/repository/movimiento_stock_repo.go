package repository

import (
	"context"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovimientoStockRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	ListByItem(ctx context.Context, itemTipo string, itemID uuid.UUID, limit int) ([]model.MovimientoStock, error)
	List(ctx context.Context, limit int) ([]model.MovimientoStock, error)
}

type movimientoStockRepo struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepo{db: db}
}

func (r *movimientoStockRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return tx.Create(m).Error
}

func (r *movimientoStockRepo) ListByItem(ctx context.Context, itemTipo string, itemID uuid.UUID, limit int) ([]model.MovimientoStock, error) {
	if limit < 1 {
		limit = 100
	}
	var movs []model.MovimientoStock
	err := r.db.WithContext(ctx).
		Where("item_tipo = ? AND item_id = ?", itemTipo, itemID).
		Order("created_at DESC").Limit(limit).
		Find(&movs).Error
	return movs, err
}

func (r *movimientoStockRepo) List(ctx context.Context, limit int) ([]model.MovimientoStock, error) {
	if limit < 1 {
		limit = 100
	}
	var movs []model.MovimientoStock
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&movs).Error
	return movs, err
}
