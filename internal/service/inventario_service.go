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
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AlertaDispatcher enqueues low-stock alert jobs. Satisfied by *worker.Dispatcher.
type AlertaDispatcher interface {
	EnqueueAlertaStock(ctx context.Context, payload interface{}) error
}

// InventarioService covers the product and supply catalogs plus manual stock
// adjustments. Production and purchasing mutate stock through their own
// services; everything funnels into movimientos_stock.
type InventarioService interface {
	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ListarProductos(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	DesactivarProducto(ctx context.Context, id uuid.UUID) error
	ReactivarProducto(ctx context.Context, id uuid.UUID) error

	CrearInsumo(ctx context.Context, req dto.CrearInsumoRequest) (*dto.InsumoResponse, error)
	ListarInsumos(ctx context.Context, incluirInactivos bool) ([]dto.InsumoResponse, error)
	ObtenerInsumo(ctx context.Context, id uuid.UUID) (*dto.InsumoResponse, error)
	ActualizarInsumo(ctx context.Context, id uuid.UUID, req dto.CrearInsumoRequest) (*dto.InsumoResponse, error)
	DesactivarInsumo(ctx context.Context, id uuid.UUID) error

	AjustarStock(ctx context.Context, itemTipo string, itemID uuid.UUID, req dto.AjustarStockRequest) (*dto.MovimientoStockResponse, error)
	ListarMovimientos(ctx context.Context, itemTipo string, itemID uuid.UUID, limit int) ([]dto.MovimientoStockResponse, error)
	ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error)
}

type inventarioService struct {
	productoRepo   repository.ProductoRepository
	insumoRepo     repository.InsumoRepository
	movimientoRepo repository.MovimientoStockRepository
	dispatcher     AlertaDispatcher
}

func NewInventarioService(
	productoRepo repository.ProductoRepository,
	insumoRepo repository.InsumoRepository,
	movimientoRepo repository.MovimientoStockRepository,
	dispatcher AlertaDispatcher,
) InventarioService {
	return &inventarioService{
		productoRepo:   productoRepo,
		insumoRepo:     insumoRepo,
		movimientoRepo: movimientoRepo,
		dispatcher:     dispatcher,
	}
}

// ─── Productos ───────────────────────────────────────────────────────────────

func (s *inventarioService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	producto := model.Producto{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		PrecioUnitario: req.PrecioUnitario,
		StockMinimo:    req.StockMinimo,
		Activo:         true,
	}
	if req.CategoriaID != nil {
		catID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.Validation("categoria_id inválido")
		}
		producto.CategoriaID = &catID
	}
	if err := s.productoRepo.Create(ctx, &producto); err != nil {
		return nil, mapError(err, "Error al crear el producto")
	}
	resp := productoToResponse(&producto)
	return &resp, nil
}

func (s *inventarioService) ListarProductos(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.productoRepo.List(ctx, filter)
	if err != nil {
		return nil, mapError(err, "Error al listar productos")
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventarioService) ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	producto, err := s.productoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		return nil, mapError(err, "Error al obtener el producto")
	}
	resp := productoToResponse(producto)
	return &resp, nil
}

func (s *inventarioService) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := s.productoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		return nil, mapError(err, "Error al obtener el producto")
	}

	producto.Nombre = req.Nombre
	producto.Descripcion = req.Descripcion
	producto.PrecioUnitario = req.PrecioUnitario
	producto.StockMinimo = req.StockMinimo
	producto.CategoriaID = nil
	if req.CategoriaID != nil {
		catID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.Validation("categoria_id inválido")
		}
		producto.CategoriaID = &catID
	}
	if err := s.productoRepo.Update(ctx, producto); err != nil {
		return nil, mapError(err, "Error al actualizar el producto")
	}
	resp := productoToResponse(producto)
	return &resp, nil
}

func (s *inventarioService) DesactivarProducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productoRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Producto no encontrado")
		}
		return mapError(err, "Error al obtener el producto")
	}
	if err := s.productoRepo.SoftDelete(ctx, id); err != nil {
		return mapError(err, "Error al desactivar el producto")
	}
	return nil
}

func (s *inventarioService) ReactivarProducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productoRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Producto no encontrado")
		}
		return mapError(err, "Error al obtener el producto")
	}
	if err := s.productoRepo.Reactivar(ctx, id); err != nil {
		return mapError(err, "Error al reactivar el producto")
	}
	return nil
}

// ─── Insumos ─────────────────────────────────────────────────────────────────

func (s *inventarioService) CrearInsumo(ctx context.Context, req dto.CrearInsumoRequest) (*dto.InsumoResponse, error) {
	insumo := model.Insumo{
		Nombre:       req.Nombre,
		UnidadMedida: req.UnidadMedida,
		StockMinimo:  req.StockMinimo,
		Activo:       true,
	}
	if err := s.insumoRepo.Create(ctx, &insumo); err != nil {
		return nil, mapError(err, "Error al crear el insumo")
	}
	resp := insumoToResponse(&insumo)
	return &resp, nil
}

func (s *inventarioService) ListarInsumos(ctx context.Context, incluirInactivos bool) ([]dto.InsumoResponse, error) {
	insumos, err := s.insumoRepo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, mapError(err, "Error al listar insumos")
	}
	resp := make([]dto.InsumoResponse, 0, len(insumos))
	for i := range insumos {
		resp = append(resp, insumoToResponse(&insumos[i]))
	}
	return resp, nil
}

func (s *inventarioService) ObtenerInsumo(ctx context.Context, id uuid.UUID) (*dto.InsumoResponse, error) {
	insumo, err := s.insumoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Insumo no encontrado")
		}
		return nil, mapError(err, "Error al obtener el insumo")
	}
	resp := insumoToResponse(insumo)
	return &resp, nil
}

func (s *inventarioService) ActualizarInsumo(ctx context.Context, id uuid.UUID, req dto.CrearInsumoRequest) (*dto.InsumoResponse, error) {
	insumo, err := s.insumoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Insumo no encontrado")
		}
		return nil, mapError(err, "Error al obtener el insumo")
	}
	insumo.Nombre = req.Nombre
	insumo.UnidadMedida = req.UnidadMedida
	insumo.StockMinimo = req.StockMinimo
	if err := s.insumoRepo.Update(ctx, insumo); err != nil {
		return nil, mapError(err, "Error al actualizar el insumo")
	}
	resp := insumoToResponse(insumo)
	return &resp, nil
}

func (s *inventarioService) DesactivarInsumo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.insumoRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Insumo no encontrado")
		}
		return mapError(err, "Error al obtener el insumo")
	}
	if err := s.insumoRepo.SoftDelete(ctx, id); err != nil {
		return mapError(err, "Error al desactivar el insumo")
	}
	return nil
}

// ─── Stock ───────────────────────────────────────────────────────────────────

// AjustarStock applies a manual delta to an item and records the movement in
// the same transaction. The resulting stock can never go negative.
func (s *inventarioService) AjustarStock(ctx context.Context, itemTipo string, itemID uuid.UUID, req dto.AjustarStockRequest) (*dto.MovimientoStockResponse, error) {
	var mov model.MovimientoStock
	var stockMinimo int
	var nombre string

	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		var stockActual int
		switch itemTipo {
		case model.ItemProducto:
			p, err := s.productoRepo.FindByIDTx(tx, itemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apierror.NotFound("Producto no encontrado")
				}
				return err
			}
			stockActual, stockMinimo, nombre = p.Stock, p.StockMinimo, p.Nombre
		case model.ItemInsumo:
			i, err := s.insumoRepo.FindByIDTx(tx, itemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apierror.NotFound("Insumo no encontrado")
				}
				return err
			}
			stockActual, stockMinimo, nombre = i.Stock, i.StockMinimo, i.Nombre
		default:
			return apierror.Validation("item_tipo inválido")
		}

		stockNuevo := stockActual + req.Delta
		if stockNuevo < 0 {
			return apierror.Validation("El ajuste dejaría el stock en negativo")
		}

		var err error
		if itemTipo == model.ItemProducto {
			err = s.productoRepo.UpdateStockTx(tx, itemID, req.Delta)
		} else {
			err = s.insumoRepo.UpdateStockTx(tx, itemID, req.Delta)
		}
		if err != nil {
			return err
		}

		mov = model.MovimientoStock{
			ItemTipo:      itemTipo,
			ItemID:        itemID,
			Tipo:          "ajuste_manual",
			Cantidad:      req.Delta,
			StockAnterior: stockActual,
			StockNuevo:    stockNuevo,
			Motivo:        req.Motivo,
		}
		return s.movimientoRepo.CreateTx(tx, &mov)
	})
	if txErr != nil {
		return nil, mapError(txErr, "Error al ajustar el stock")
	}

	s.notificarSiBajoStock(ctx, itemTipo, itemID, nombre, mov.StockNuevo, stockMinimo)

	resp := movimientoToResponse(&mov)
	return &resp, nil
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, itemTipo string, itemID uuid.UUID, limit int) ([]dto.MovimientoStockResponse, error) {
	var movs []model.MovimientoStock
	var err error
	if itemID == uuid.Nil {
		movs, err = s.movimientoRepo.List(ctx, limit)
	} else {
		movs, err = s.movimientoRepo.ListByItem(ctx, itemTipo, itemID, limit)
	}
	if err != nil {
		return nil, mapError(err, "Error al listar movimientos de stock")
	}
	resp := make([]dto.MovimientoStockResponse, 0, len(movs))
	for i := range movs {
		resp = append(resp, movimientoToResponse(&movs[i]))
	}
	return resp, nil
}

// ObtenerAlertas lists every active item at or below its minimum stock.
func (s *inventarioService) ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error) {
	productos, err := s.productoRepo.ListBajoStock(ctx)
	if err != nil {
		return nil, mapError(err, "Error al obtener alertas de stock")
	}
	insumos, err := s.insumoRepo.ListBajoStock(ctx)
	if err != nil {
		return nil, mapError(err, "Error al obtener alertas de stock")
	}

	alertas := make([]dto.AlertaStockResponse, 0, len(productos)+len(insumos))
	for i := range productos {
		alertas = append(alertas, dto.AlertaStockResponse{
			ItemTipo:    model.ItemProducto,
			ItemID:      productos[i].ID.String(),
			Nombre:      productos[i].Nombre,
			Stock:       productos[i].Stock,
			StockMinimo: productos[i].StockMinimo,
		})
	}
	for i := range insumos {
		alertas = append(alertas, dto.AlertaStockResponse{
			ItemTipo:    model.ItemInsumo,
			ItemID:      insumos[i].ID.String(),
			Nombre:      insumos[i].Nombre,
			Stock:       insumos[i].Stock,
			StockMinimo: insumos[i].StockMinimo,
		})
	}
	return alertas, nil
}

// notificarSiBajoStock enqueues an email alert when the item crosses its
// minimum. Fire-and-forget: a queue failure never affects the caller.
func (s *inventarioService) notificarSiBajoStock(ctx context.Context, itemTipo string, itemID uuid.UUID, nombre string, stock, stockMinimo int) {
	if s.dispatcher == nil || stock > stockMinimo {
		return
	}
	alerta := dto.AlertaStockResponse{
		ItemTipo:    itemTipo,
		ItemID:      itemID.String(),
		Nombre:      nombre,
		Stock:       stock,
		StockMinimo: stockMinimo,
	}
	if err := s.dispatcher.EnqueueAlertaStock(ctx, alerta); err != nil {
		log.Error().Err(err).Str("item", nombre).Msg("no se pudo encolar la alerta de stock")
	}
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:             p.ID.String(),
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		PrecioUnitario: p.PrecioUnitario,
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		Activo:         p.Activo,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	return resp
}

func insumoToResponse(i *model.Insumo) dto.InsumoResponse {
	return dto.InsumoResponse{
		ID:           i.ID.String(),
		Nombre:       i.Nombre,
		UnidadMedida: i.UnidadMedida,
		Stock:        i.Stock,
		StockMinimo:  i.StockMinimo,
		Activo:       i.Activo,
	}
}

func movimientoToResponse(m *model.MovimientoStock) dto.MovimientoStockResponse {
	return dto.MovimientoStockResponse{
		ID:            m.ID.String(),
		ItemTipo:      m.ItemTipo,
		ItemID:        m.ItemID.String(),
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		StockAnterior: m.StockAnterior,
		StockNuevo:    m.StockNuevo,
		Motivo:        m.Motivo,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
}
