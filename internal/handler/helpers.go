package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/apierror"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/middleware"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal fields validate through their float value so numeric
	// tags (min, max) work on money amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindAndValidate binds the JSON body and runs struct validation. On failure
// it writes the 400 response and returns false.
func bindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("el cuerpo de la petición no es válido"))
		return false
	}
	if err := validate.Struct(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = fe.Tag()
			}
			c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
			return false
		}
		c.JSON(http.StatusBadRequest, apierror.New("datos inválidos"))
		return false
	}
	return true
}

// respondError maps service errors to HTTP statuses. Business-rule failures
// surface their message as 400; unexpected errors log the cause and return a
// generic 500 so nothing internal leaks.
func respondError(c *gin.Context, err error) {
	var ev *service.ErrValidacion
	if errors.As(err, &ev) {
		c.JSON(http.StatusBadRequest, apierror.New(ev.Error()))
		return
	}
	var es *service.ErrStockInsuficiente
	if errors.As(err, &es) {
		c.JSON(http.StatusBadRequest, apierror.New(es.Error()))
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("recurso no encontrado"))
		return
	}

	log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("error no controlado")
	c.JSON(http.StatusInternalServerError, apierror.New("error interno del servidor"))
}

// paramUUID parses a :id-style path parameter, writing the 400 on failure.
func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("el identificador no es válido"))
		return uuid.Nil, false
	}
	return id, true
}

// usuarioActual returns the authenticated user's ID. Routes behind JWTAuth
// always have claims; the zero UUID only appears in misconfigured tests.
func usuarioActual(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
