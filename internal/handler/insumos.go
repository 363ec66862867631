package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InsumosHandler struct {
	svc      service.InventarioService
	bitacora service.BitacoraService
}

func NewInsumosHandler(svc service.InventarioService, bitacora service.BitacoraService) *InsumosHandler {
	return &InsumosHandler{svc: svc, bitacora: bitacora}
}

func (h *InsumosHandler) Crear(c *gin.Context) {
	var req dto.CrearInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearInsumo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Insumo "+resp.Nombre+" creado")
	c.JSON(http.StatusCreated, resp)
}

func (h *InsumosHandler) Listar(c *gin.Context) {
	incluirInactivos := c.Query("activo") == "all"
	resp, err := h.svc.ListarInsumos(c.Request.Context(), incluirInactivos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerInsumo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CrearInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarInsumo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Insumo "+id.String()+" actualizado")
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.DesactivarInsumo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Insumo "+id.String()+" desactivado")
	c.Status(http.StatusNoContent)
}
