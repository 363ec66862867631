package handler

import (
	"net/http"
	"strconv"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	svc      service.ReporteService
	bitacora service.BitacoraService
}

func NewReportesHandler(svc service.ReporteService, bitacora service.BitacoraService) *ReportesHandler {
	return &ReportesHandler{svc: svc, bitacora: bitacora}
}

// Generar godoc
// @Summary      Generar un reporte
// @Description  Genera el reporte del tema pedido en PDF, Excel o texto plano y lo devuelve como descarga.
// @Tags         reportes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        tema    path  string true  "pedidos | inventario"
// @Param        formato query string false "pdf | excel | txt (default pdf)"
// @Param        desde   query string false "Fecha YYYY-MM-DD"
// @Param        hasta   query string false "Fecha YYYY-MM-DD"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /reporte/{tema} [get]
func (h *ReportesHandler) Generar(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("formato o fechas inválidos"))
		return
	}

	archivo, err := h.svc.Generar(c.Request.Context(), c.Param("tema"), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	auditar(c, h.bitacora, "Reporte de "+c.Param("tema")+" generado en "+filter.Formato)

	c.Header("Content-Disposition", `attachment; filename="`+archivo.Nombre+`"`)
	c.Header("Content-Length", strconv.Itoa(len(archivo.Contenido)))
	c.Data(http.StatusOK, archivo.ContentType, archivo.Contenido)
}
