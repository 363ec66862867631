package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotasCompraHandler struct {
	svc      service.NotaCompraService
	bitacora service.BitacoraService
}

func NewNotasCompraHandler(svc service.NotaCompraService, bitacora service.BitacoraService) *NotasCompraHandler {
	return &NotasCompraHandler{svc: svc, bitacora: bitacora}
}

// Crear godoc
// @Summary      Registrar una nota de compra
// @Description  Valida usuario y proveedor dentro de la transacción de inserción.
// @Tags         notas-compra
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearNotaCompraRequest true "Datos de la nota"
// @Success      201  {object} dto.NotaCompraConMensaje
// @Failure      400  {object} apierror.APIError
// @Router       /nota_compra [post]
func (h *NotasCompraHandler) Crear(c *gin.Context) {
	var req dto.CrearNotaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Nota de compra registrada al proveedor "+resp.ProveedorCodigo)
	c.JSON(http.StatusCreated, dto.NotaCompraConMensaje{Message: "Nota de compra registrada exitosamente", NotaCompra: *resp})
}

func (h *NotasCompraHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotasCompraHandler) Obtener(c *gin.Context) {
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

func (h *NotasCompraHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarNotaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Nota de compra "+id.String()+" actualizada")
	c.JSON(http.StatusOK, resp)
}

// Eliminar borra la nota y sus detalles en una transacción.
func (h *NotasCompraHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Nota de compra "+id.String()+" eliminada")
	c.Status(http.StatusNoContent)
}
