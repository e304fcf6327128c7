package handler

import (
	"net/http"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct {
	config *service.ConfiguracionService
}

func NewConfiguracionHandler(config *service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{config: config}
}

func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	resp, err := h.config.Obtener(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConfiguracionHandler) Actualizar(c *gin.Context) {
	var req dto.ConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.config.Actualizar(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
