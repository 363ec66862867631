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

// DetalleCompraService manages the purchase note line items. Both item kinds
// (insumo and producto) flow through the same code path: one validation
// policy, one duplicate policy, parameterized by item_tipo.
type DetalleCompraService interface {
	Agregar(ctx context.Context, req dto.AgregarDetalleCompraRequest) (*dto.DetalleCompraResponse, error)
	ListarPorNota(ctx context.Context, notaID uuid.UUID) ([]dto.DetalleCompraResponse, error)
	Obtener(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (*dto.DetalleCompraResponse, error)
	Actualizar(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID, req dto.ActualizarDetalleCompraRequest) (*dto.DetalleCompraResponse, error)
	Eliminar(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) error
}

type detalleCompraService struct {
	repo         repository.NotaCompraRepository
	insumoRepo   repository.InsumoRepository
	productoRepo repository.ProductoRepository
}

func NewDetalleCompraService(
	repo repository.NotaCompraRepository,
	insumoRepo repository.InsumoRepository,
	productoRepo repository.ProductoRepository,
) DetalleCompraService {
	return &detalleCompraService{repo: repo, insumoRepo: insumoRepo, productoRepo: productoRepo}
}

// Agregar rejects a duplicate (nota, tipo, item) line for both variants: the
// pre-check yields the friendly message, the composite primary key makes a
// concurrent duplicate fail inside the same transaction instead of
// double-inserting.
func (s *detalleCompraService) Agregar(ctx context.Context, req dto.AgregarDetalleCompraRequest) (*dto.DetalleCompraResponse, error) {
	notaID, err := uuid.Parse(req.NotaCompraID)
	if err != nil {
		return nil, apierror.Validation("nota_compra_id inválido")
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, apierror.Validation("item_id inválido")
	}

	var detalle model.DetalleCompra
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existeNota, err := s.repo.ExistsTx(tx, notaID)
		if err != nil {
			return err
		}
		if !existeNota {
			return apierror.Validation("La nota de compra no existe")
		}
		if err := s.validarItemTx(tx, req.ItemTipo, itemID); err != nil {
			return err
		}

		duplicado, err := s.repo.DetalleExistsTx(tx, notaID, req.ItemTipo, itemID)
		if err != nil {
			return err
		}
		if duplicado {
			return apierror.Validation("El " + req.ItemTipo + " ya está registrado en la nota de compra")
		}

		detalle = model.DetalleCompra{
			NotaCompraID:   notaID,
			ItemTipo:       req.ItemTipo,
			ItemID:         itemID,
			Cantidad:       req.Cantidad,
			PrecioUnitario: req.PrecioUnitario,
			Total:          req.PrecioUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad))),
		}
		return s.repo.CreateDetalleTx(tx, &detalle)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al agregar el detalle de compra")
	}
	resp := compraToResponse(&detalle)
	return &resp, nil
}

func (s *detalleCompraService) ListarPorNota(ctx context.Context, notaID uuid.UUID) ([]dto.DetalleCompraResponse, error) {
	detalles, err := s.repo.ListDetallesByNota(ctx, notaID)
	if err != nil {
		return nil, mapError(err, "Error al listar detalles de compra")
	}
	resp := make([]dto.DetalleCompraResponse, 0, len(detalles))
	for i := range detalles {
		resp = append(resp, compraToResponse(&detalles[i]))
	}
	return resp, nil
}

func (s *detalleCompraService) Obtener(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (*dto.DetalleCompraResponse, error) {
	detalle, err := s.repo.FindDetalle(ctx, notaID, itemTipo, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Detalle de compra no encontrado")
		}
		return nil, mapError(err, "Error al obtener el detalle de compra")
	}
	resp := compraToResponse(detalle)
	return &resp, nil
}

func (s *detalleCompraService) Actualizar(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID, req dto.ActualizarDetalleCompraRequest) (*dto.DetalleCompraResponse, error) {
	var detalle *model.DetalleCompra
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		d, err := s.repo.FindDetalle(ctx, notaID, itemTipo, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Detalle de compra no encontrado")
			}
			return err
		}
		d.Cantidad = req.Cantidad
		d.PrecioUnitario = req.PrecioUnitario
		d.Total = req.PrecioUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad)))
		detalle = d
		return s.repo.SaveDetalleTx(tx, d)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al actualizar el detalle de compra")
	}
	resp := compraToResponse(detalle)
	return &resp, nil
}

func (s *detalleCompraService) Eliminar(ctx context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) error {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		duplicado, err := s.repo.DetalleExistsTx(tx, notaID, itemTipo, itemID)
		if err != nil {
			return err
		}
		if !duplicado {
			return apierror.NotFound("Detalle de compra no encontrado")
		}
		return s.repo.DeleteDetalleTx(tx, notaID, itemTipo, itemID)
	})
	if txErr != nil {
		return mapError(txErr, "Error al eliminar el detalle de compra")
	}
	return nil
}

// validarItemTx dispatches the FK existence check on the tagged kind.
func (s *detalleCompraService) validarItemTx(tx *gorm.DB, itemTipo string, itemID uuid.UUID) error {
	var existe bool
	var err error
	switch itemTipo {
	case model.ItemInsumo:
		existe, err = s.insumoRepo.ExistsTx(tx, itemID)
	case model.ItemProducto:
		existe, err = s.productoRepo.ExistsTx(tx, itemID)
	default:
		return apierror.Validation("item_tipo inválido")
	}
	if err != nil {
		return err
	}
	if !existe {
		return apierror.Validation("El " + itemTipo + " no existe")
	}
	return nil
}

func compraToResponse(d *model.DetalleCompra) dto.DetalleCompraResponse {
	return dto.DetalleCompraResponse{
		NotaCompraID:   d.NotaCompraID.String(),
		ItemTipo:       d.ItemTipo,
		ItemID:         d.ItemID.String(),
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Total:          d.Total,
	}
}
