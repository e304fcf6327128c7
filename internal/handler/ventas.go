package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/infra"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"

	"github.com/gin-gonic/gin"
)

type VentaHandler struct {
	ventas  *service.VentaService
	config  *service.ConfiguracionService
	tickets *infra.TicketGenerator
}

func NewVentaHandler(ventas *service.VentaService, config *service.ConfiguracionService, tickets *infra.TicketGenerator) *VentaHandler {
	return &VentaHandler{ventas: ventas, config: config, tickets: tickets}
}

// Registrar godoc
// @Summary  Registra una venta
// @Tags     ventas
// @Accept   json
// @Produce  json
// @Param    venta body dto.RegistrarVentaRequest true "Venta"
// @Success  201 {object} dto.VentaResponse
// @Failure  400 {object} apierror.APIError
// @Router   /api/ventas [post]
func (h *VentaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.ventas.Registrar(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentaHandler) Listar(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	ventas, err := h.ventas.Listar(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ventas)
}

func (h *VentaHandler) Detalles(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	detalles, err := h.ventas.Detalles(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detalles)
}

// Ticket streams the receipt PDF of a committed sale.
func (h *VentaHandler) Ticket(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	venta, err := h.ventas.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	cfg, err := h.config.ObtenerModelo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := h.tickets.Generar(venta, cfg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=ticket-%06d.pdf", venta.Folio))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
