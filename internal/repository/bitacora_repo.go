package repository

import (
	"context"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"

	"gorm.io/gorm"
)

type BitacoraRepository interface {
	Create(ctx context.Context, b *model.Bitacora) error
	List(ctx context.Context, limit int) ([]model.Bitacora, error)
}

type bitacoraRepo struct{ db *gorm.DB }

func NewBitacoraRepository(db *gorm.DB) BitacoraRepository { return &bitacoraRepo{db: db} }

func (r *bitacoraRepo) Create(ctx context.Context, b *model.Bitacora) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bitacoraRepo) List(ctx context.Context, limit int) ([]model.Bitacora, error) {
	if limit < 1 {
		limit = 100
	}
	var entradas []model.Bitacora
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entradas).Error
	return entradas, err
}
