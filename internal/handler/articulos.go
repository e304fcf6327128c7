package handler

import (
	"net/http"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
)

type ArticuloHandler struct {
	articulos  *service.ArticuloService
	inventario *service.InventarioService
}

func NewArticuloHandler(articulos *service.ArticuloService, inventario *service.InventarioService) *ArticuloHandler {
	return &ArticuloHandler{articulos: articulos, inventario: inventario}
}

func (h *ArticuloHandler) Crear(c *gin.Context) {
	var req dto.CrearArticuloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.articulos.Crear(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ArticuloHandler) Actualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarArticuloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.articulos.Actualizar(c.Request.Context(), id, req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArticuloHandler) Eliminar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.articulos.Eliminar(c.Request.Context(), id, usuarioActual(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArticuloHandler) Obtener(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.articulos.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArticuloHandler) Listar(c *gin.Context) {
	articulos, err := h.articulos.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articulos)
}

// Alertas lists articles at or below their minimum stock.
func (h *ArticuloHandler) Alertas(c *gin.Context) {
	alertas, err := h.inventario.ObtenerAlertas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alertas)
}

// Movimientos returns the stock ledger trail of one article.
func (h *ArticuloHandler) Movimientos(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	movimientos, err := h.inventario.ObtenerMovimientos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movimientos)
}

// ConsultaPrecio is the public price-check endpoint used by the store kiosk.
// No auth; responses are cached in Redis.
func (h *ArticuloHandler) ConsultaPrecio(c *gin.Context) {
	codigo := c.Param("codigo")
	resp, err := h.articulos.ConsultaPrecio(c.Request.Context(), codigo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
