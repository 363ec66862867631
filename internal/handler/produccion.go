package handler

import (
	"net/http"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/middleware"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProduccionHandler struct {
	svc      service.ProduccionService
	bitacora service.BitacoraService
}

func NewProduccionHandler(svc service.ProduccionService, bitacora service.BitacoraService) *ProduccionHandler {
	return &ProduccionHandler{svc: svc, bitacora: bitacora}
}

// ─── Recetas ─────────────────────────────────────────────────────────────────

func (h *ProduccionHandler) CrearReceta(c *gin.Context) {
	var req dto.CrearRecetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearReceta(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Receta "+resp.Nombre+" creada")
	c.JSON(http.StatusCreated, resp)
}

func (h *ProduccionHandler) ListarRecetas(c *gin.Context) {
	resp, err := h.svc.ListarRecetas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProduccionHandler) ObtenerReceta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerReceta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProduccionHandler) EliminarReceta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.EliminarReceta(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Receta "+id.String()+" eliminada")
	c.Status(http.StatusNoContent)
}

// ─── Producciones ────────────────────────────────────────────────────────────

// Registrar godoc
// @Summary      Registrar una producción
// @Description  Consume insumos según la receta por lote, sube el stock del producto y registra cada movimiento, todo en una transacción. El responsable sale del JWT.
// @Tags         produccion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarProduccionRequest true "Receta, fecha, lotes y participantes"
// @Success      201  {object} dto.ProduccionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /produccion [post]
func (h *ProduccionHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarProduccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	responsableID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token inválido"))
		return
	}

	resp, err := h.svc.Registrar(c.Request.Context(), responsableID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Producción registrada de la receta "+resp.Receta)
	c.JSON(http.StatusCreated, resp)
}

func (h *ProduccionHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarProducciones(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProduccionHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerProduccion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
