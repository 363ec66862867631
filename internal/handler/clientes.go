package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct {
	svc      service.ClienteService
	bitacora service.BitacoraService
}

func NewClientesHandler(svc service.ClienteService, bitacora service.BitacoraService) *ClientesHandler {
	return &ClientesHandler{svc: svc, bitacora: bitacora}
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Cliente "+resp.CI+" registrado")
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("ci"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("ci"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Cliente "+c.Param("ci")+" actualizado")
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("ci")); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Cliente "+c.Param("ci")+" eliminado")
	c.Status(http.StatusNoContent)
}
