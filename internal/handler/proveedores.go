package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct {
	svc      service.ProveedorService
	bitacora service.BitacoraService
}

func NewProveedoresHandler(svc service.ProveedorService, bitacora service.BitacoraService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc, bitacora: bitacora}
}

func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Proveedor "+resp.Codigo+" registrado")
	c.JSON(http.StatusCreated, resp)
}

func (h *ProveedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProveedoresHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Proveedor "+c.Param("codigo")+" actualizado")
	c.JSON(http.StatusOK, resp)
}

func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Desactivar(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Proveedor "+c.Param("codigo")+" desactivado")
	c.Status(http.StatusNoContent)
}
