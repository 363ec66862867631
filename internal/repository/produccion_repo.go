package repository

import (
	"context"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProduccionRepository interface {
	// Recetas
	CreateReceta(ctx context.Context, rec *model.Receta) error
	FindRecetaByID(ctx context.Context, id uuid.UUID) (*model.Receta, error)
	FindRecetaByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Receta, error)
	ExistsRecetaForProducto(ctx context.Context, productoID uuid.UUID) (bool, error)
	ListRecetas(ctx context.Context) ([]model.Receta, error)
	DeleteReceta(ctx context.Context, id uuid.UUID) error

	// Producciones
	CreateProduccionTx(tx *gorm.DB, p *model.Produccion) error
	FindProduccionByID(ctx context.Context, id uuid.UUID) (*model.Produccion, error)
	ListProducciones(ctx context.Context) ([]model.Produccion, error)

	DB() *gorm.DB
}

type produccionRepo struct{ db *gorm.DB }

func NewProduccionRepository(db *gorm.DB) ProduccionRepository { return &produccionRepo{db: db} }

func (r *produccionRepo) DB() *gorm.DB { return r.db }

func (r *produccionRepo) CreateReceta(ctx context.Context, rec *model.Receta) error {
	// Receta + insumos in one statement; GORM inserts the association rows.
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *produccionRepo) FindRecetaByID(ctx context.Context, id uuid.UUID) (*model.Receta, error) {
	var rec model.Receta
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Preload("Insumos.Insumo").
		First(&rec, id).Error
	return &rec, err
}

func (r *produccionRepo) FindRecetaByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Receta, error) {
	var rec model.Receta
	err := tx.Preload("Insumos").First(&rec, id).Error
	return &rec, err
}

func (r *produccionRepo) ExistsRecetaForProducto(ctx context.Context, productoID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Receta{}).Where("producto_id = ?", productoID).Count(&count).Error
	return count > 0, err
}

func (r *produccionRepo) ListRecetas(ctx context.Context) ([]model.Receta, error) {
	var recetas []model.Receta
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Preload("Insumos.Insumo").
		Order("nombre ASC").
		Find(&recetas).Error
	return recetas, err
}

func (r *produccionRepo) DeleteReceta(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("receta_id = ?", id).Delete(&model.RecetaInsumo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Receta{}, id).Error
	})
}

func (r *produccionRepo) CreateProduccionTx(tx *gorm.DB, p *model.Produccion) error {
	return tx.Create(p).Error
}

func (r *produccionRepo) FindProduccionByID(ctx context.Context, id uuid.UUID) (*model.Produccion, error) {
	var p model.Produccion
	err := r.db.WithContext(ctx).
		Preload("Receta.Producto").
		Preload("Participantes.Usuario").
		First(&p, id).Error
	return &p, err
}

func (r *produccionRepo) ListProducciones(ctx context.Context) ([]model.Produccion, error) {
	var producciones []model.Produccion
	err := r.db.WithContext(ctx).
		Preload("Receta.Producto").
		Preload("Participantes.Usuario").
		Order("fecha DESC, created_at DESC").
		Find(&producciones).Error
	return producciones, err
}
