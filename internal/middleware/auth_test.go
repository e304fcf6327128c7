package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secreto = "secreto-de-prueba"

func tokenFirmado(t *testing.T, rol string, ttl time.Duration, clave string) string {
	t.Helper()
	claims := middleware.Claims{
		UserID: uuid.New().String(),
		Email:  "prueba@tienda.mx",
		Rol:    rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "access",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(clave))
	require.NoError(t, err)
	return tok
}

func routerDePrueba() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protegido := r.Group("", middleware.JWTAuth(secreto))
	protegido.GET("/perfil", func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "rol": claims.Rol})
	})

	admin := r.Group("", middleware.JWTAuth(secreto), middleware.RequireRole("administrador"))
	admin.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func pedir(r *gin.Engine, ruta, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, ruta, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthTokenValido(t *testing.T) {
	r := routerDePrueba()
	w := pedir(r, "/perfil", tokenFirmado(t, "vendedor", time.Hour, secreto))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prueba@tienda.mx")
}

func TestJWTAuthSinToken(t *testing.T) {
	r := routerDePrueba()
	w := pedir(r, "/perfil", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthTokenExpirado(t *testing.T) {
	r := routerDePrueba()
	w := pedir(r, "/perfil", tokenFirmado(t, "vendedor", -time.Minute, secreto))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthFirmaIncorrecta(t *testing.T) {
	r := routerDePrueba()
	w := pedir(r, "/perfil", tokenFirmado(t, "vendedor", time.Hour, "otro-secreto"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolePermiteAlAdministrador(t *testing.T) {
	r := routerDePrueba()
	w := pedir(r, "/admin", tokenFirmado(t, "administrador", time.Hour, secreto))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRechazaAlVendedor(t *testing.T) {
	r := routerDePrueba()
	w := pedir(r, "/admin", tokenFirmado(t, "vendedor", time.Hour, secreto))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
