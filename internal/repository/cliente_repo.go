package repository

import (
	"context"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for clients.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByCI(ctx context.Context, ci string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, ci string) error

	// ExistsTx runs the FK existence check inside the caller's transaction so
	// a concurrent delete cannot race past it.
	ExistsTx(tx *gorm.DB, ci string) (bool, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByCI(ctx context.Context, ci string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("ci = ?", ci).First(&c).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, ci string) error {
	return r.db.WithContext(ctx).Where("ci = ?", ci).Delete(&model.Cliente{}).Error
}

func (r *clienteRepo) ExistsTx(tx *gorm.DB, ci string) (bool, error) {
	var count int64
	err := tx.Model(&model.Cliente{}).Where("ci = ?", ci).Count(&count).Error
	return count > 0, err
}
