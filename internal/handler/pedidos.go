package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct {
	svc      service.PedidoService
	bitacora service.BitacoraService
}

func NewPedidosHandler(svc service.PedidoService, bitacora service.BitacoraService) *PedidosHandler {
	return &PedidosHandler{svc: svc, bitacora: bitacora}
}

// Crear godoc
// @Summary      Registrar un pedido
// @Description  Crea un pedido para un cliente existente. El total inicia en 0 y lo recalcula el servidor al cargar detalles.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Datos del pedido"
// @Success      201  {object} dto.PedidoConMensaje
// @Failure      400  {object} apierror.APIError
// @Router       /pedido [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Pedido registrado para el cliente "+resp.CICliente)
	c.JSON(http.StatusCreated, dto.PedidoConMensaje{Message: "Pedido registrado exitosamente", Pedido: *resp})
}

// Listar godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PedidoResponse
// @Router       /pedido [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener un pedido
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /pedido/{id} [get]
func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estado godoc
// @Summary      Estado derivado del pedido
// @Description  Pendiente, Confirmado (pagado) o Entregado. Nunca se almacena; se deriva de los flags.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      200 {object} dto.EstadoPedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /pedido/{id}/estado [get]
func (h *PedidosHandler) Estado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Estado(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar un pedido
// @Description  Reemplaza fechas, tipo, pagado y cliente. No toca entregado ni el total.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                     true "UUID del pedido"
// @Param        body body dto.ActualizarPedidoRequest true "Campos del pedido"
// @Success      200  {object} dto.PedidoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /pedido/{id} [put]
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Pedido "+id.String()+" actualizado")
	c.JSON(http.StatusOK, resp)
}

// ConfirmarEntrega godoc
// @Summary      Confirmar la entrega de un pedido
// @Description  Marca entregado=true. Idempotente y de una sola vía: no existe operación inversa.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /pedido/{id}/confirmar-entrega [put]
func (h *PedidosHandler) ConfirmarEntrega(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ConfirmarEntrega(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Entrega confirmada del pedido "+id.String())
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar un pedido
// @Description  Borra el pedido y todos sus detalles en una transacción.
// @Tags         pedidos
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /pedido/{id} [delete]
func (h *PedidosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Pedido "+id.String()+" eliminado")
	c.Status(http.StatusNoContent)
}
