package handler

import (
	"net/http"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
)

type PuntoEntregaHandler struct {
	puntos *service.PuntoEntregaService
}

func NewPuntoEntregaHandler(puntos *service.PuntoEntregaService) *PuntoEntregaHandler {
	return &PuntoEntregaHandler{puntos: puntos}
}

func (h *PuntoEntregaHandler) Crear(c *gin.Context) {
	var req dto.PuntoEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.puntos.Crear(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PuntoEntregaHandler) Actualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.PuntoEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.puntos.Actualizar(c.Request.Context(), id, req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PuntoEntregaHandler) Eliminar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.puntos.Eliminar(c.Request.Context(), id, usuarioActual(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PuntoEntregaHandler) Listar(c *gin.Context) {
	puntos, err := h.puntos.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, puntos)
}
