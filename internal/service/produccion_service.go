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

// ProduccionService manages recipes and production runs. Registering a run
// consumes insumos, raises the product's stock and records every stock
// movement in one transaction: either the whole batch lands or nothing does.
type ProduccionService interface {
	CrearReceta(ctx context.Context, req dto.CrearRecetaRequest) (*dto.RecetaResponse, error)
	ListarRecetas(ctx context.Context) ([]dto.RecetaResponse, error)
	ObtenerReceta(ctx context.Context, id uuid.UUID) (*dto.RecetaResponse, error)
	EliminarReceta(ctx context.Context, id uuid.UUID) error

	Registrar(ctx context.Context, responsableID uuid.UUID, req dto.RegistrarProduccionRequest) (*dto.ProduccionResponse, error)
	ListarProducciones(ctx context.Context) ([]dto.ProduccionResponse, error)
	ObtenerProduccion(ctx context.Context, id uuid.UUID) (*dto.ProduccionResponse, error)
}

type produccionService struct {
	repo           repository.ProduccionRepository
	productoRepo   repository.ProductoRepository
	insumoRepo     repository.InsumoRepository
	usuarioRepo    repository.UsuarioRepository
	movimientoRepo repository.MovimientoStockRepository
}

func NewProduccionService(
	repo repository.ProduccionRepository,
	productoRepo repository.ProductoRepository,
	insumoRepo repository.InsumoRepository,
	usuarioRepo repository.UsuarioRepository,
	movimientoRepo repository.MovimientoStockRepository,
) ProduccionService {
	return &produccionService{
		repo:           repo,
		productoRepo:   productoRepo,
		insumoRepo:     insumoRepo,
		usuarioRepo:    usuarioRepo,
		movimientoRepo: movimientoRepo,
	}
}

// ─── Recetas ─────────────────────────────────────────────────────────────────

func (s *produccionService) CrearReceta(ctx context.Context, req dto.CrearRecetaRequest) (*dto.RecetaResponse, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.Validation("producto_id inválido")
	}
	if _, err := s.productoRepo.FindByID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("El producto no existe")
		}
		return nil, mapError(err, "Error al crear la receta")
	}

	existe, err := s.repo.ExistsRecetaForProducto(ctx, productoID)
	if err != nil {
		return nil, mapError(err, "Error al crear la receta")
	}
	if existe {
		return nil, apierror.Validation("El producto ya tiene una receta")
	}

	receta := model.Receta{
		ProductoID:  productoID,
		Nombre:      req.Nombre,
		Rendimiento: req.Rendimiento,
	}
	vistos := make(map[uuid.UUID]bool, len(req.Insumos))
	for _, ins := range req.Insumos {
		insumoID, err := uuid.Parse(ins.InsumoID)
		if err != nil {
			return nil, apierror.Validation("insumo_id inválido")
		}
		if vistos[insumoID] {
			return nil, apierror.Validation("La receta repite un insumo")
		}
		vistos[insumoID] = true
		if _, err := s.insumoRepo.FindByID(ctx, insumoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Validation("El insumo no existe")
			}
			return nil, mapError(err, "Error al crear la receta")
		}
		receta.Insumos = append(receta.Insumos, model.RecetaInsumo{
			InsumoID: insumoID,
			Cantidad: ins.Cantidad,
		})
	}

	if err := s.repo.CreateReceta(ctx, &receta); err != nil {
		return nil, mapError(err, "Error al crear la receta")
	}
	completa, err := s.repo.FindRecetaByID(ctx, receta.ID)
	if err != nil {
		return nil, mapError(err, "Error al crear la receta")
	}
	resp := recetaToResponse(completa)
	return &resp, nil
}

func (s *produccionService) ListarRecetas(ctx context.Context) ([]dto.RecetaResponse, error) {
	recetas, err := s.repo.ListRecetas(ctx)
	if err != nil {
		return nil, mapError(err, "Error al listar recetas")
	}
	resp := make([]dto.RecetaResponse, 0, len(recetas))
	for i := range recetas {
		resp = append(resp, recetaToResponse(&recetas[i]))
	}
	return resp, nil
}

func (s *produccionService) ObtenerReceta(ctx context.Context, id uuid.UUID) (*dto.RecetaResponse, error) {
	receta, err := s.repo.FindRecetaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Receta no encontrada")
		}
		return nil, mapError(err, "Error al obtener la receta")
	}
	resp := recetaToResponse(receta)
	return &resp, nil
}

func (s *produccionService) EliminarReceta(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindRecetaByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Receta no encontrada")
		}
		return mapError(err, "Error al obtener la receta")
	}
	if err := s.repo.DeleteReceta(ctx, id); err != nil {
		return mapError(err, "Error al eliminar la receta")
	}
	return nil
}

// ─── Producciones ────────────────────────────────────────────────────────────

// Registrar validates the recipe, the responsible user and every participant,
// checks there is enough stock of every insumo for the requested batches, and
// then applies all stock changes atomically.
func (s *produccionService) Registrar(ctx context.Context, responsableID uuid.UUID, req dto.RegistrarProduccionRequest) (*dto.ProduccionResponse, error) {
	recetaID, err := uuid.Parse(req.RecetaID)
	if err != nil {
		return nil, apierror.Validation("receta_id inválido")
	}
	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return nil, apierror.Validation("fecha inválida, use YYYY-MM-DD")
	}
	participantes, err := parseParticipantes(req.Participantes, responsableID)
	if err != nil {
		return nil, err
	}

	var produccion model.Produccion
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		receta, err := s.repo.FindRecetaByIDTx(tx, recetaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Validation("La receta no existe")
			}
			return err
		}

		existe, err := s.usuarioRepo.ExistsTx(tx, responsableID)
		if err != nil {
			return err
		}
		if !existe {
			return apierror.Validation("El responsable no existe")
		}
		for _, userID := range participantes {
			existe, err := s.usuarioRepo.ExistsTx(tx, userID)
			if err != nil {
				return err
			}
			if !existe {
				return apierror.Validation("Un participante no existe")
			}
		}

		produccion = model.Produccion{
			RecetaID:          recetaID,
			Fecha:             fecha,
			Lotes:             req.Lotes,
			CantidadProducida: receta.Rendimiento * req.Lotes,
			ResponsableID:     responsableID,
		}
		for _, userID := range participantes {
			produccion.Participantes = append(produccion.Participantes, model.Participacion{UsuarioID: userID})
		}
		if err := s.repo.CreateProduccionTx(tx, &produccion); err != nil {
			return err
		}

		// Consume insumos per the recipe, scaled by batches.
		for _, ri := range receta.Insumos {
			insumo, err := s.insumoRepo.FindByIDTx(tx, ri.InsumoID)
			if err != nil {
				return err
			}
			necesario := ri.Cantidad * req.Lotes
			if insumo.Stock < necesario {
				return apierror.Validation("Stock insuficiente del insumo " + insumo.Nombre)
			}
			if err := s.insumoRepo.UpdateStockTx(tx, ri.InsumoID, -necesario); err != nil {
				return err
			}
			mov := model.MovimientoStock{
				ItemTipo:      model.ItemInsumo,
				ItemID:        ri.InsumoID,
				Tipo:          "produccion",
				Cantidad:      -necesario,
				StockAnterior: insumo.Stock,
				StockNuevo:    insumo.Stock - necesario,
				ReferenciaID:  &produccion.ID,
			}
			if err := s.movimientoRepo.CreateTx(tx, &mov); err != nil {
				return err
			}
		}

		// Raise the product's stock by the produced quantity.
		producto, err := s.productoRepo.FindByIDTx(tx, receta.ProductoID)
		if err != nil {
			return err
		}
		if err := s.productoRepo.UpdateStockTx(tx, receta.ProductoID, produccion.CantidadProducida); err != nil {
			return err
		}
		mov := model.MovimientoStock{
			ItemTipo:      model.ItemProducto,
			ItemID:        receta.ProductoID,
			Tipo:          "produccion",
			Cantidad:      produccion.CantidadProducida,
			StockAnterior: producto.Stock,
			StockNuevo:    producto.Stock + produccion.CantidadProducida,
			ReferenciaID:  &produccion.ID,
		}
		return s.movimientoRepo.CreateTx(tx, &mov)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al registrar la producción")
	}

	completa, err := s.repo.FindProduccionByID(ctx, produccion.ID)
	if err != nil {
		resp := produccionToResponse(&produccion)
		return &resp, nil
	}
	resp := produccionToResponse(completa)
	return &resp, nil
}

func (s *produccionService) ListarProducciones(ctx context.Context) ([]dto.ProduccionResponse, error) {
	producciones, err := s.repo.ListProducciones(ctx)
	if err != nil {
		return nil, mapError(err, "Error al listar producciones")
	}
	resp := make([]dto.ProduccionResponse, 0, len(producciones))
	for i := range producciones {
		resp = append(resp, produccionToResponse(&producciones[i]))
	}
	return resp, nil
}

func (s *produccionService) ObtenerProduccion(ctx context.Context, id uuid.UUID) (*dto.ProduccionResponse, error) {
	produccion, err := s.repo.FindProduccionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Producción no encontrada")
		}
		return nil, mapError(err, "Error al obtener la producción")
	}
	resp := produccionToResponse(produccion)
	return &resp, nil
}

// parseParticipantes valida los UUID y excluye al responsable, que ya queda
// registrado como tal.
func parseParticipantes(raw []string, responsableID uuid.UUID) ([]uuid.UUID, error) {
	participantes := make([]uuid.UUID, 0, len(raw))
	vistos := make(map[uuid.UUID]bool, len(raw))
	for _, p := range raw {
		userID, err := uuid.Parse(p)
		if err != nil {
			return nil, apierror.Validation("participante inválido")
		}
		if userID == responsableID || vistos[userID] {
			continue
		}
		vistos[userID] = true
		participantes = append(participantes, userID)
	}
	return participantes, nil
}

func recetaToResponse(r *model.Receta) dto.RecetaResponse {
	resp := dto.RecetaResponse{
		ID:          r.ID.String(),
		ProductoID:  r.ProductoID.String(),
		Nombre:      r.Nombre,
		Rendimiento: r.Rendimiento,
		Insumos:     make([]dto.RecetaInsumoResponse, 0, len(r.Insumos)),
	}
	if r.Producto != nil {
		resp.Producto = r.Producto.Nombre
	}
	for _, ri := range r.Insumos {
		item := dto.RecetaInsumoResponse{
			InsumoID: ri.InsumoID.String(),
			Cantidad: ri.Cantidad,
		}
		if ri.Insumo != nil {
			item.Insumo = ri.Insumo.Nombre
		}
		resp.Insumos = append(resp.Insumos, item)
	}
	return resp
}

func produccionToResponse(p *model.Produccion) dto.ProduccionResponse {
	resp := dto.ProduccionResponse{
		ID:                p.ID.String(),
		RecetaID:          p.RecetaID.String(),
		Fecha:             p.Fecha.Format(fechaLayout),
		Lotes:             p.Lotes,
		CantidadProducida: p.CantidadProducida,
		ResponsableID:     p.ResponsableID.String(),
	}
	if p.Receta != nil {
		resp.Receta = p.Receta.Nombre
	}
	for _, part := range p.Participantes {
		if part.Usuario != nil {
			resp.Participantes = append(resp.Participantes, part.Usuario.Nombre)
		} else {
			resp.Participantes = append(resp.Participantes, part.UsuarioID.String())
		}
	}
	return resp
}
