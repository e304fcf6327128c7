package handler

import (
	"net/http"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
)

type ComboHandler struct {
	combos *service.ComboService
}

func NewComboHandler(combos *service.ComboService) *ComboHandler {
	return &ComboHandler{combos: combos}
}

func (h *ComboHandler) Crear(c *gin.Context) {
	var req dto.CrearComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.combos.Crear(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComboHandler) Actualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.combos.Actualizar(c.Request.Context(), id, req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComboHandler) Eliminar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.combos.Eliminar(c.Request.Context(), id, usuarioActual(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ComboHandler) Obtener(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.combos.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComboHandler) Listar(c *gin.Context) {
	combos, err := h.combos.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, combos)
}
