package repository

import (
	"context"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InsumoRepository interface {
	Create(ctx context.Context, i *model.Insumo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Insumo, error)
	List(ctx context.Context, incluirInactivos bool) ([]model.Insumo, error)
	Update(ctx context.Context, i *model.Insumo) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListBajoStock(ctx context.Context) ([]model.Insumo, error)

	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Insumo, error)
	ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error)
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	DB() *gorm.DB
}

type insumoRepo struct{ db *gorm.DB }

func NewInsumoRepository(db *gorm.DB) InsumoRepository { return &insumoRepo{db: db} }

func (r *insumoRepo) Create(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *insumoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Insumo, error) {
	var i model.Insumo
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *insumoRepo) List(ctx context.Context, incluirInactivos bool) ([]model.Insumo, error) {
	var insumos []model.Insumo
	q := r.db.WithContext(ctx)
	if !incluirInactivos {
		q = q.Where("activo = true")
	}
	err := q.Order("nombre ASC").Find(&insumos).Error
	return insumos, err
}

func (r *insumoRepo) Update(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *insumoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Insumo{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *insumoRepo) ListBajoStock(ctx context.Context) ([]model.Insumo, error) {
	var insumos []model.Insumo
	err := r.db.WithContext(ctx).
		Where("activo = true AND stock <= stock_minimo").
		Order("stock ASC").
		Find(&insumos).Error
	return insumos, err
}

func (r *insumoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Insumo, error) {
	var i model.Insumo
	err := tx.First(&i, id).Error
	return &i, err
}

func (r *insumoRepo) ExistsTx(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.Insumo{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *insumoRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Insumo{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *insumoRepo) DB() *gorm.DB { return r.db }
