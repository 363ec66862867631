package handler

import (
	"net/http"
	"strconv"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductosHandler struct {
	svc      service.InventarioService
	bitacora service.BitacoraService
}

func NewProductosHandler(svc service.InventarioService, bitacora service.BitacoraService) *ProductosHandler {
	return &ProductosHandler{svc: svc, bitacora: bitacora}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearProducto(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Producto "+resp.Nombre+" creado")
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        nombre    query string false "Búsqueda parcial por nombre"
// @Param        categoria query string false "Nombre de categoría"
// @Param        activo    query string false "false | all (default: activos)"
// @Param        page      query int    false "Página (default 1)"
// @Param        limit     query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.ProductoListResponse
// @Router       /producto [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarProductos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerProducto(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarProducto(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Producto "+id.String()+" actualizado")
	c.JSON(http.StatusOK, resp)
}

// Eliminar desactiva el producto; la historia de pedidos lo sigue referenciando.
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.DesactivarProducto(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Producto "+id.String()+" desactivado")
	c.Status(http.StatusNoContent)
}

func (h *ProductosHandler) Reactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.ReactivarProducto(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Producto "+id.String()+" reactivado")
	c.Status(http.StatusNoContent)
}

// ─── Stock ───────────────────────────────────────────────────────────────────

// AjustarStock godoc
// @Summary      Ajuste manual de stock
// @Description  Aplica un delta al stock de un producto o insumo y registra el movimiento.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_tipo path string true "insumo | producto"
// @Param        id        path string true "UUID del ítem"
// @Param        body body dto.AjustarStockRequest true "Delta y motivo"
// @Success      200 {object} dto.MovimientoStockResponse
// @Failure      400 {object} apierror.APIError
// @Router       /inventario/{item_tipo}/{id}/ajuste [post]
func (h *ProductosHandler) AjustarStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), c.Param("item_tipo"), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Ajuste de stock sobre "+c.Param("item_tipo")+" "+id.String())
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) ListarMovimientos(c *gin.Context) {
	itemID := uuid.Nil
	if raw := c.Query("item_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("item_id inválido"))
			return
		}
		itemID = parsed
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), c.Query("item_tipo"), itemID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Alertas(c *gin.Context) {
	resp, err := h.svc.ObtenerAlertas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
