package router

import (
	"github.com/FernandoPZ/POS-AuraCreativa/internal/config"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/handler"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/middleware"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/ws"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Usuarios      *handler.UsuarioHandler
	Articulos     *handler.ArticuloHandler
	Combos        *handler.ComboHandler
	Proveedores   *handler.ProveedorHandler
	Puntos        *handler.PuntoEntregaHandler
	Entradas      *handler.EntradaHandler
	Ventas        *handler.VentaHandler
	Dashboard     *handler.DashboardHandler
	Configuracion *handler.ConfiguracionHandler
	Bitacora      *handler.BitacoraHandler
}

func New(cfg *config.Config, h Handlers, hub *ws.Hub) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.FrontendURL),
	)

	r.GET("/health", h.Health.Check)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Públicos: el kiosko de precios y el login van con rate limit.
	publico := api.Group("")
	publico.Use(middleware.RateLimiter(5, 10))
	{
		publico.POST("/auth/login", h.Auth.Login)
		publico.POST("/auth/refresh", h.Auth.Refresh)
		publico.GET("/precio/:codigo", h.Articulos.ConsultaPrecio)
	}

	api.GET("/ws", hub.HandleConnection)

	// Autenticados: cualquier rol.
	auth := api.Group("")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		auth.POST("/ventas", h.Ventas.Registrar)
		auth.GET("/ventas", h.Ventas.Listar)
		auth.GET("/ventas/:id/detalles", h.Ventas.Detalles)
		auth.GET("/ventas/:id/ticket", h.Ventas.Ticket)

		auth.GET("/articulos", h.Articulos.Listar)
		auth.GET("/articulos/alertas", h.Articulos.Alertas)
		auth.GET("/articulos/:id", h.Articulos.Obtener)
		auth.GET("/articulos/:id/movimientos", h.Articulos.Movimientos)

		auth.GET("/combos", h.Combos.Listar)
		auth.GET("/combos/:id", h.Combos.Obtener)

		auth.GET("/proveedores", h.Proveedores.Listar)
		auth.GET("/proveedores/:id", h.Proveedores.Obtener)

		auth.GET("/puntos-entrega", h.Puntos.Listar)
	}

	// Administración: catálogo, compras, usuarios y auditoría.
	admin := api.Group("")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole("administrador"))
	{
		admin.POST("/articulos", h.Articulos.Crear)
		admin.PUT("/articulos/:id", h.Articulos.Actualizar)
		admin.DELETE("/articulos/:id", h.Articulos.Eliminar)

		admin.POST("/combos", h.Combos.Crear)
		admin.PUT("/combos/:id", h.Combos.Actualizar)
		admin.DELETE("/combos/:id", h.Combos.Eliminar)

		admin.POST("/proveedores", h.Proveedores.Crear)
		admin.PUT("/proveedores/:id", h.Proveedores.Actualizar)
		admin.DELETE("/proveedores/:id", h.Proveedores.Eliminar)

		admin.POST("/puntos-entrega", h.Puntos.Crear)
		admin.PUT("/puntos-entrega/:id", h.Puntos.Actualizar)
		admin.DELETE("/puntos-entrega/:id", h.Puntos.Eliminar)

		admin.POST("/entradas", h.Entradas.Registrar)
		admin.GET("/entradas", h.Entradas.Listar)
		admin.GET("/entradas/:id/detalles", h.Entradas.Detalles)

		admin.POST("/usuarios", h.Usuarios.Crear)
		admin.GET("/usuarios", h.Usuarios.Listar)
		admin.PUT("/usuarios/:id", h.Usuarios.Actualizar)
		admin.DELETE("/usuarios/:id", h.Usuarios.Eliminar)

		admin.GET("/dashboard/resumen", h.Dashboard.Resumen)

		admin.GET("/configuracion", h.Configuracion.Obtener)
		admin.PUT("/configuracion", h.Configuracion.Actualizar)

		admin.GET("/bitacora", h.Bitacora.Listar)
	}

	return r
}
