package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DetalleCompraHandler works on purchase lines addressed by the composite key
// (nota_compra_id, item_tipo, item_id). Insumo and producto lines share every
// route.
type DetalleCompraHandler struct {
	svc      service.DetalleCompraService
	bitacora service.BitacoraService
}

func NewDetalleCompraHandler(svc service.DetalleCompraService, bitacora service.BitacoraService) *DetalleCompraHandler {
	return &DetalleCompraHandler{svc: svc, bitacora: bitacora}
}

// Agregar godoc
// @Summary      Agregar una línea a una nota de compra
// @Description  item_tipo decide si item_id referencia un insumo o un producto. Misma política de duplicados para ambos.
// @Tags         detalle-compra
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AgregarDetalleCompraRequest true "Línea de compra"
// @Success      201  {object} dto.DetalleCompraResponse
// @Failure      400  {object} apierror.APIError
// @Router       /detalle_compra [post]
func (h *DetalleCompraHandler) Agregar(c *gin.Context) {
	var req dto.AgregarDetalleCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Línea agregada a la nota de compra "+resp.NotaCompraID)
	c.JSON(http.StatusCreated, resp)
}

func (h *DetalleCompraHandler) ListarPorNota(c *gin.Context) {
	notaID, err := uuid.Parse(c.Param("nota_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarPorNota(c.Request.Context(), notaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetalleCompraHandler) Obtener(c *gin.Context) {
	notaID, itemTipo, itemID, ok := parseClaveCompra(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), notaID, itemTipo, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetalleCompraHandler) Actualizar(c *gin.Context) {
	notaID, itemTipo, itemID, ok := parseClaveCompra(c)
	if !ok {
		return
	}
	var req dto.ActualizarDetalleCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), notaID, itemTipo, itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Línea actualizada en la nota de compra "+notaID.String())
	c.JSON(http.StatusOK, resp)
}

func (h *DetalleCompraHandler) Eliminar(c *gin.Context) {
	notaID, itemTipo, itemID, ok := parseClaveCompra(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), notaID, itemTipo, itemID); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Línea eliminada de la nota de compra "+notaID.String())
	c.Status(http.StatusNoContent)
}

func parseClaveCompra(c *gin.Context) (notaID uuid.UUID, itemTipo string, itemID uuid.UUID, ok bool) {
	notaID, err := uuid.Parse(c.Param("nota_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, "", uuid.Nil, false
	}
	itemTipo = c.Param("item_tipo")
	if itemTipo != model.ItemInsumo && itemTipo != model.ItemProducto {
		c.JSON(http.StatusBadRequest, apierror.New("item_tipo inválido"))
		return uuid.Nil, "", uuid.Nil, false
	}
	itemID, err = uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, "", uuid.Nil, false
	}
	return notaID, itemTipo, itemID, true
}
