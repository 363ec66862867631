package service

import (
	"context"
	"errors"
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const fechaLayout = "2006-01-02"

type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error)
	ConfirmarEntrega(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Estado(ctx context.Context, id uuid.UUID) (*dto.EstadoPedidoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type pedidoService struct {
	repo        repository.PedidoRepository
	clienteRepo repository.ClienteRepository
}

func NewPedidoService(repo repository.PedidoRepository, clienteRepo repository.ClienteRepository) PedidoService {
	return &pedidoService{repo: repo, clienteRepo: clienteRepo}
}

// Crear always starts the pedido with entregado=false and total=0; the total
// only moves when detalles are written, inside their own transaction.
func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	fechaPedido, err := time.Parse(fechaLayout, req.FechaPedido)
	if err != nil {
		return nil, apierror.Validation("fecha_pedido inválida")
	}
	fechaEntrega, err := time.Parse(fechaLayout, req.FechaEntrega)
	if err != nil {
		return nil, apierror.Validation("fecha_entrega inválida")
	}

	var pedido model.Pedido
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existe, err := s.clienteRepo.ExistsTx(tx, req.CICliente)
		if err != nil {
			return err
		}
		if !existe {
			return apierror.Validation("El cliente no existe")
		}
		pedido = model.Pedido{
			FechaPedido:  fechaPedido,
			FechaEntrega: fechaEntrega,
			Tipo:         req.Tipo,
			Pagado:       req.Pagado,
			Entregado:    false,
			CICliente:    req.CICliente,
		}
		return s.repo.CreateTx(tx, &pedido)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al crear el pedido")
	}
	return pedidoToResponse(&pedido), nil
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err, "Error al listar pedidos")
	}
	resp := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		resp[i] = *pedidoToResponse(&pedidos[i])
	}
	return resp, nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		return nil, mapError(err, "Error al obtener el pedido")
	}
	return pedidoToResponse(pedido), nil
}

// Actualizar replaces the mutable fields. The cliente FK is validated exactly
// like in Crear; entregado and total are never touched here.
func (s *pedidoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	fechaPedido, err := time.Parse(fechaLayout, req.FechaPedido)
	if err != nil {
		return nil, apierror.Validation("fecha_pedido inválida")
	}
	fechaEntrega, err := time.Parse(fechaLayout, req.FechaEntrega)
	if err != nil {
		return nil, apierror.Validation("fecha_entrega inválida")
	}

	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		return nil, mapError(err, "Error al obtener el pedido")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existe, err := s.clienteRepo.ExistsTx(tx, req.CICliente)
		if err != nil {
			return err
		}
		if !existe {
			return apierror.Validation("El cliente no existe")
		}
		pedido.FechaPedido = fechaPedido
		pedido.FechaEntrega = fechaEntrega
		pedido.Tipo = req.Tipo
		pedido.Pagado = req.Pagado
		pedido.CICliente = req.CICliente
		return s.repo.SaveTx(tx, pedido)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al actualizar el pedido")
	}
	return pedidoToResponse(pedido), nil
}

// ConfirmarEntrega is one-way: re-confirming an already delivered pedido is a
// harmless no-op, not an error.
func (s *pedidoService) ConfirmarEntrega(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		return nil, mapError(err, "Error al obtener el pedido")
	}

	if !pedido.Entregado {
		if err := s.repo.UpdateEntregado(ctx, id); err != nil {
			return nil, mapError(err, "Error al confirmar la entrega")
		}
		pedido.Entregado = true
	}
	return pedidoToResponse(pedido), nil
}

// Estado is a pure derivation over the stored flags, recomputed on every read.
func (s *pedidoService) Estado(ctx context.Context, id uuid.UUID) (*dto.EstadoPedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		return nil, mapError(err, "Error al obtener el pedido")
	}
	return &dto.EstadoPedidoResponse{
		ID:           pedido.ID.String(),
		FechaPedido:  pedido.FechaPedido.Format(fechaLayout),
		FechaEntrega: pedido.FechaEntrega.Format(fechaLayout),
		Pagado:       pedido.Pagado,
		Entregado:    pedido.Entregado,
		Estado:       pedido.Estado(),
		Detalles:     detallesToResponse(pedido.ID, pedido.Detalles),
	}, nil
}

func (s *pedidoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existe, err := s.repo.ExistsTx(tx, id)
		if err != nil {
			return err
		}
		if !existe {
			return apierror.NotFound("Pedido no encontrado")
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return mapError(txErr, "Error al eliminar el pedido")
	}
	return nil
}

func detallesToResponse(pedidoID uuid.UUID, detalles []model.DetallePedido) []dto.DetallePedidoResponse {
	resp := make([]dto.DetallePedidoResponse, 0, len(detalles))
	for _, d := range detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		resp = append(resp, dto.DetallePedidoResponse{
			ProductoID:     d.ProductoID.String(),
			PedidoID:       pedidoID.String(),
			Producto:       nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Total:          d.Total,
		})
	}
	return resp
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	clienteNombre := ""
	if p.Cliente != nil {
		clienteNombre = p.Cliente.Nombre
	}
	return &dto.PedidoResponse{
		ID:           p.ID.String(),
		FechaPedido:  p.FechaPedido.Format(fechaLayout),
		FechaEntrega: p.FechaEntrega.Format(fechaLayout),
		Tipo:         p.Tipo,
		Total:        p.Total,
		Pagado:       p.Pagado,
		Entregado:    p.Entregado,
		CICliente:    p.CICliente,
		Cliente:      clienteNombre,
		Detalles:     detallesToResponse(p.ID, p.Detalles),
	}
}
