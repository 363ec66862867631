package service

import (
	"context"
	"errors"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DetallePedidoService owns the order line items. Every mutation recomputes
// and persists the pedido's aggregate total inside the same transaction, so
// the stored total is always the sum of its detalles.
type DetallePedidoService interface {
	Agregar(ctx context.Context, req dto.AgregarDetallePedidoRequest) (*dto.DetallePedidoResponse, error)
	Listar(ctx context.Context) ([]dto.DetallePedidoResponse, error)
	ListarPorPedido(ctx context.Context, pedidoID uuid.UUID) ([]dto.DetallePedidoResponse, error)
	Obtener(ctx context.Context, productoID, pedidoID uuid.UUID) (*dto.DetallePedidoResponse, error)
	Actualizar(ctx context.Context, productoID, pedidoID uuid.UUID, req dto.ActualizarDetallePedidoRequest) (*dto.DetallePedidoResponse, error)
	Eliminar(ctx context.Context, productoID, pedidoID uuid.UUID) error
}

type detallePedidoService struct {
	repo         repository.PedidoRepository
	productoRepo repository.ProductoRepository
}

func NewDetallePedidoService(repo repository.PedidoRepository, productoRepo repository.ProductoRepository) DetallePedidoService {
	return &detallePedidoService{repo: repo, productoRepo: productoRepo}
}

// Agregar snapshots the unit price at insert time: the line total is
// cantidad × precio_unitario as sent, never re-read from Producto later.
func (s *detallePedidoService) Agregar(ctx context.Context, req dto.AgregarDetallePedidoRequest) (*dto.DetallePedidoResponse, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.Validation("producto_id inválido")
	}
	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, apierror.Validation("pedido_id inválido")
	}

	var detalle model.DetallePedido
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existeProducto, err := s.productoRepo.ExistsTx(tx, productoID)
		if err != nil {
			return err
		}
		if !existeProducto {
			return apierror.Validation("El producto no existe")
		}
		existePedido, err := s.repo.ExistsTx(tx, pedidoID)
		if err != nil {
			return err
		}
		if !existePedido {
			return apierror.Validation("El pedido no existe")
		}

		// Friendly pre-check; the composite primary key is the real guard.
		if _, err := s.repo.FindDetalleTx(tx, productoID, pedidoID); err == nil {
			return apierror.Validation("El producto ya está registrado en el pedido")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		detalle = model.DetallePedido{
			ProductoID:     productoID,
			PedidoID:       pedidoID,
			Cantidad:       req.Cantidad,
			PrecioUnitario: req.PrecioUnitario,
			Total:          req.PrecioUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad))),
		}
		if err := s.repo.CreateDetalleTx(tx, &detalle); err != nil {
			return err
		}
		return s.recomputeTotalTx(tx, pedidoID)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al agregar el detalle del pedido")
	}
	resp := detalleToResponse(&detalle)
	return &resp, nil
}

func (s *detallePedidoService) Listar(ctx context.Context) ([]dto.DetallePedidoResponse, error) {
	detalles, err := s.repo.ListDetalles(ctx)
	if err != nil {
		return nil, mapError(err, "Error al listar detalles de pedido")
	}
	return detallesSliceToResponse(detalles), nil
}

// ListarPorPedido returns an empty array when the pedido has no detalles —
// an empty collection is a valid state, not an error.
func (s *detallePedidoService) ListarPorPedido(ctx context.Context, pedidoID uuid.UUID) ([]dto.DetallePedidoResponse, error) {
	detalles, err := s.repo.ListDetallesByPedido(ctx, pedidoID)
	if err != nil {
		return nil, mapError(err, "Error al listar detalles del pedido")
	}
	return detallesSliceToResponse(detalles), nil
}

func (s *detallePedidoService) Obtener(ctx context.Context, productoID, pedidoID uuid.UUID) (*dto.DetallePedidoResponse, error) {
	detalle, err := s.repo.FindDetalle(ctx, productoID, pedidoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Detalle de pedido no encontrado")
		}
		return nil, mapError(err, "Error al obtener el detalle del pedido")
	}
	resp := detalleToResponse(detalle)
	return &resp, nil
}

func (s *detallePedidoService) Actualizar(ctx context.Context, productoID, pedidoID uuid.UUID, req dto.ActualizarDetallePedidoRequest) (*dto.DetallePedidoResponse, error) {
	var detalle *model.DetallePedido
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		detalle, err = s.repo.FindDetalleTx(tx, productoID, pedidoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Detalle de pedido no encontrado")
			}
			return err
		}
		detalle.Cantidad = req.Cantidad
		detalle.PrecioUnitario = req.PrecioUnitario
		detalle.Total = req.PrecioUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad)))
		if err := s.repo.SaveDetalleTx(tx, detalle); err != nil {
			return err
		}
		return s.recomputeTotalTx(tx, pedidoID)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al actualizar el detalle del pedido")
	}
	resp := detalleToResponse(detalle)
	return &resp, nil
}

// Eliminar fails with NotFound when the composite key is absent — deleting a
// non-existent line is an error, not a silent no-op.
func (s *detallePedidoService) Eliminar(ctx context.Context, productoID, pedidoID uuid.UUID) error {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindDetalleTx(tx, productoID, pedidoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Detalle de pedido no encontrado")
			}
			return err
		}
		if err := s.repo.DeleteDetalleTx(tx, productoID, pedidoID); err != nil {
			return err
		}
		return s.recomputeTotalTx(tx, pedidoID)
	})
	if txErr != nil {
		return mapError(txErr, "Error al eliminar el detalle del pedido")
	}
	return nil
}

func (s *detallePedidoService) recomputeTotalTx(tx *gorm.DB, pedidoID uuid.UUID) error {
	total, err := s.repo.SumDetallesTx(tx, pedidoID)
	if err != nil {
		return err
	}
	return s.repo.UpdateTotalTx(tx, pedidoID, total)
}

func detalleToResponse(d *model.DetallePedido) dto.DetallePedidoResponse {
	nombre := ""
	if d.Producto != nil {
		nombre = d.Producto.Nombre
	}
	return dto.DetallePedidoResponse{
		ProductoID:     d.ProductoID.String(),
		PedidoID:       d.PedidoID.String(),
		Producto:       nombre,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Total:          d.Total,
	}
}

func detallesSliceToResponse(detalles []model.DetallePedido) []dto.DetallePedidoResponse {
	resp := make([]dto.DetallePedidoResponse, 0, len(detalles))
	for i := range detalles {
		resp = append(resp, detalleToResponse(&detalles[i]))
	}
	return resp
}
