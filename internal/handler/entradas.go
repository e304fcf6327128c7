package handler

import (
	"net/http"
	"strconv"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
)

type EntradaHandler struct {
	entradas *service.EntradaService
}

func NewEntradaHandler(entradas *service.EntradaService) *EntradaHandler {
	return &EntradaHandler{entradas: entradas}
}

// Registrar godoc
// @Summary  Registra una entrada de mercancía
// @Tags     entradas
// @Accept   json
// @Produce  json
// @Param    entrada body dto.RegistrarEntradaRequest true "Entrada"
// @Success  201 {object} dto.EntradaResponse
// @Failure  400 {object} apierror.APIError
// @Router   /api/entradas [post]
func (h *EntradaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarEntradaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.entradas.Registrar(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EntradaHandler) Listar(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	entradas, err := h.entradas.Listar(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entradas)
}

func (h *EntradaHandler) Detalles(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	detalles, err := h.entradas.Detalles(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detalles)
}
