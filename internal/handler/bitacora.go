package handler

import (
	"net/http"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/apierror"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
)

type BitacoraHandler struct {
	bitacora *service.BitacoraService
}

func NewBitacoraHandler(bitacora *service.BitacoraService) *BitacoraHandler {
	return &BitacoraHandler{bitacora: bitacora}
}

func (h *BitacoraHandler) Listar(c *gin.Context) {
	var filter dto.BitacoraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parámetros de consulta inválidos"))
		return
	}

	resp, err := h.bitacora.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
