package handler

import (
	"net/http"
	"reflect"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/middleware"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps a service error to its HTTP status. Typed errors carry a
// safe message; everything else already got collapsed to a generic one by the
// service layer.
func respondError(c *gin.Context, err error) {
	c.JSON(apierror.StatusOf(err), apierror.New(err.Error()))
}

// auditar queues an audit entry for a completed mutation. No-op when the
// handler was built without a bitácora service (unit tests).
func auditar(c *gin.Context, bitacora service.BitacoraService, mensaje string) {
	if bitacora == nil {
		return
	}
	entrada := dto.BitacoraEntrada{
		Metodo:  c.Request.Method,
		Ruta:    c.FullPath(),
		Mensaje: mensaje,
	}
	if claims := middleware.GetClaims(c); claims != nil {
		userID := claims.UserID
		entrada.UsuarioID = &userID
	}
	bitacora.Registrar(c.Request.Context(), entrada)
}
