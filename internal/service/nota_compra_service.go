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

type NotaCompraService interface {
	Crear(ctx context.Context, req dto.CrearNotaCompraRequest) (*dto.NotaCompraResponse, error)
	Listar(ctx context.Context) ([]dto.NotaCompraResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.NotaCompraResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarNotaCompraRequest) (*dto.NotaCompraResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type notaCompraService struct {
	repo          repository.NotaCompraRepository
	usuarioRepo   repository.UsuarioRepository
	proveedorRepo repository.ProveedorRepository
}

func NewNotaCompraService(
	repo repository.NotaCompraRepository,
	usuarioRepo repository.UsuarioRepository,
	proveedorRepo repository.ProveedorRepository,
) NotaCompraService {
	return &notaCompraService{repo: repo, usuarioRepo: usuarioRepo, proveedorRepo: proveedorRepo}
}

// Crear validates both foreign keys inside the insert transaction — the
// requesting usuario and the proveedor must exist.
func (s *notaCompraService) Crear(ctx context.Context, req dto.CrearNotaCompraRequest) (*dto.NotaCompraResponse, error) {
	fechaPedido, fechaEntrega, usuarioID, err := s.parseCampos(req)
	if err != nil {
		return nil, err
	}

	var nota model.NotaCompra
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.validarReferenciasTx(tx, usuarioID, req.ProveedorCodigo); err != nil {
			return err
		}
		nota = model.NotaCompra{
			FechaPedido:     fechaPedido,
			FechaEntrega:    fechaEntrega,
			UsuarioID:       usuarioID,
			ProveedorCodigo: req.ProveedorCodigo,
		}
		return s.repo.CreateTx(tx, &nota)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al crear la nota de compra")
	}
	return notaToResponse(&nota), nil
}

func (s *notaCompraService) Listar(ctx context.Context) ([]dto.NotaCompraResponse, error) {
	notas, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err, "Error al listar notas de compra")
	}
	resp := make([]dto.NotaCompraResponse, len(notas))
	for i := range notas {
		resp[i] = *notaToResponse(&notas[i])
	}
	return resp, nil
}

func (s *notaCompraService) Obtener(ctx context.Context, id uuid.UUID) (*dto.NotaCompraResponse, error) {
	nota, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Nota de compra no encontrada")
		}
		return nil, mapError(err, "Error al obtener la nota de compra")
	}
	return notaToResponse(nota), nil
}

func (s *notaCompraService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarNotaCompraRequest) (*dto.NotaCompraResponse, error) {
	fechaPedido, fechaEntrega, usuarioID, err := s.parseCampos(req)
	if err != nil {
		return nil, err
	}

	nota, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Nota de compra no encontrada")
		}
		return nil, mapError(err, "Error al obtener la nota de compra")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.validarReferenciasTx(tx, usuarioID, req.ProveedorCodigo); err != nil {
			return err
		}
		nota.FechaPedido = fechaPedido
		nota.FechaEntrega = fechaEntrega
		nota.UsuarioID = usuarioID
		nota.ProveedorCodigo = req.ProveedorCodigo
		return s.repo.SaveTx(tx, nota)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al actualizar la nota de compra")
	}
	return notaToResponse(nota), nil
}

func (s *notaCompraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existe, err := s.repo.ExistsTx(tx, id)
		if err != nil {
			return err
		}
		if !existe {
			return apierror.NotFound("Nota de compra no encontrada")
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return mapError(txErr, "Error al eliminar la nota de compra")
	}
	return nil
}

func (s *notaCompraService) parseCampos(req dto.CrearNotaCompraRequest) (time.Time, time.Time, uuid.UUID, error) {
	fechaPedido, err := time.Parse(fechaLayout, req.FechaPedido)
	if err != nil {
		return time.Time{}, time.Time{}, uuid.Nil, apierror.Validation("fecha_pedido inválida")
	}
	fechaEntrega, err := time.Parse(fechaLayout, req.FechaEntrega)
	if err != nil {
		return time.Time{}, time.Time{}, uuid.Nil, apierror.Validation("fecha_entrega inválida")
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return time.Time{}, time.Time{}, uuid.Nil, apierror.Validation("usuario_id inválido")
	}
	return fechaPedido, fechaEntrega, usuarioID, nil
}

func (s *notaCompraService) validarReferenciasTx(tx *gorm.DB, usuarioID uuid.UUID, proveedorCodigo string) error {
	existeUsuario, err := s.usuarioRepo.ExistsTx(tx, usuarioID)
	if err != nil {
		return err
	}
	if !existeUsuario {
		return apierror.Validation("El usuario no existe")
	}
	existeProveedor, err := s.proveedorRepo.ExistsTx(tx, proveedorCodigo)
	if err != nil {
		return err
	}
	if !existeProveedor {
		return apierror.Validation("El proveedor no existe")
	}
	return nil
}

func notaToResponse(n *model.NotaCompra) *dto.NotaCompraResponse {
	usuarioNombre := ""
	if n.Usuario != nil {
		usuarioNombre = n.Usuario.Nombre
	}
	proveedorNombre := ""
	if n.Proveedor != nil {
		proveedorNombre = n.Proveedor.RazonSocial
	}
	detalles := make([]dto.DetalleCompraResponse, 0, len(n.Detalles))
	for _, d := range n.Detalles {
		detalles = append(detalles, dto.DetalleCompraResponse{
			NotaCompraID:   d.NotaCompraID.String(),
			ItemTipo:       d.ItemTipo,
			ItemID:         d.ItemID.String(),
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Total:          d.Total,
		})
	}
	return &dto.NotaCompraResponse{
		ID:              n.ID.String(),
		FechaPedido:     n.FechaPedido.Format(fechaLayout),
		FechaEntrega:    n.FechaEntrega.Format(fechaLayout),
		UsuarioID:       n.UsuarioID.String(),
		Usuario:         usuarioNombre,
		ProveedorCodigo: n.ProveedorCodigo,
		Proveedor:       proveedorNombre,
		Detalles:        detalles,
	}
}
