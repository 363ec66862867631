package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DetallePedidoHandler works on order lines addressed by the composite key
// (producto_id, pedido_id).
type DetallePedidoHandler struct {
	svc      service.DetallePedidoService
	bitacora service.BitacoraService
}

func NewDetallePedidoHandler(svc service.DetallePedidoService, bitacora service.BitacoraService) *DetallePedidoHandler {
	return &DetallePedidoHandler{svc: svc, bitacora: bitacora}
}

// Agregar godoc
// @Summary      Agregar un producto a un pedido
// @Description  Inserta la línea y recalcula el total del pedido en la misma transacción.
// @Tags         detalle-pedido
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AgregarDetallePedidoRequest true "Línea del pedido"
// @Success      201  {object} dto.DetallePedidoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /detalle_pedido [post]
func (h *DetallePedidoHandler) Agregar(c *gin.Context) {
	var req dto.AgregarDetallePedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Producto agregado al pedido "+resp.PedidoID)
	c.JSON(http.StatusCreated, resp)
}

// Listar returns every order line in the system.
func (h *DetallePedidoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorPedido godoc
// @Summary      Listar las líneas de un pedido
// @Description  Un pedido sin líneas responde 200 con lista vacía, nunca 404.
// @Tags         detalle-pedido
// @Produce      json
// @Security     BearerAuth
// @Param        pedido_id path string true "UUID del pedido"
// @Success      200 {array} dto.DetallePedidoResponse
// @Router       /detalle_pedido/pedido/{pedido_id} [get]
func (h *DetallePedidoHandler) ListarPorPedido(c *gin.Context) {
	pedidoID, err := uuid.Parse(c.Param("pedido_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarPorPedido(c.Request.Context(), pedidoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetallePedidoHandler) Obtener(c *gin.Context) {
	productoID, pedidoID, ok := parseClaveDetalle(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), productoID, pedidoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar una línea de pedido
// @Description  Reemplaza cantidad y precio; recalcula línea y total del pedido en una transacción.
// @Tags         detalle-pedido
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        producto_id path string true "UUID del producto"
// @Param        pedido_id   path string true "UUID del pedido"
// @Param        body body dto.ActualizarDetallePedidoRequest true "Cantidad y precio"
// @Success      200 {object} dto.DetallePedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /detalle_pedido/{producto_id}/{pedido_id} [put]
func (h *DetallePedidoHandler) Actualizar(c *gin.Context) {
	productoID, pedidoID, ok := parseClaveDetalle(c)
	if !ok {
		return
	}
	var req dto.ActualizarDetallePedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), productoID, pedidoID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Detalle actualizado en el pedido "+pedidoID.String())
	c.JSON(http.StatusOK, resp)
}

func (h *DetallePedidoHandler) Eliminar(c *gin.Context) {
	productoID, pedidoID, ok := parseClaveDetalle(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), productoID, pedidoID); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Detalle eliminado del pedido "+pedidoID.String())
	c.Status(http.StatusNoContent)
}

func parseClaveDetalle(c *gin.Context) (productoID, pedidoID uuid.UUID, ok bool) {
	productoID, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, uuid.Nil, false
	}
	pedidoID, err = uuid.Parse(c.Param("pedido_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, uuid.Nil, false
	}
	return productoID, pedidoID, true
}
