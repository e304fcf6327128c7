package service

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
)

type ConfiguracionService struct {
	repo     repository.ConfiguracionRepository
	bitacora *BitacoraService
}

func NewConfiguracionService(repo repository.ConfiguracionRepository, bitacora *BitacoraService) *ConfiguracionService {
	return &ConfiguracionService{repo: repo, bitacora: bitacora}
}

func (s *ConfiguracionService) Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return aConfiguracionResponse(c), nil
}

// ObtenerModelo returns the raw row for ticket rendering.
func (s *ConfiguracionService) ObtenerModelo(ctx context.Context) (*model.Configuracion, error) {
	return s.repo.Get(ctx)
}

func (s *ConfiguracionService) Actualizar(ctx context.Context, req dto.ConfiguracionRequest, usuarioID uuid.UUID) (*dto.ConfiguracionResponse, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	c.NombreTienda = req.NombreTienda
	c.Direccion = req.Direccion
	c.Telefono = req.Telefono
	c.RedSocial = req.RedSocial
	c.MensajeTicket = req.MensajeTicket
	c.LogoUrl = req.LogoUrl

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, usuarioID, "EDITAR_CONFIGURACION", "Datos de la tienda actualizados")
	return aConfiguracionResponse(c), nil
}

func aConfiguracionResponse(c *model.Configuracion) *dto.ConfiguracionResponse {
	return &dto.ConfiguracionResponse{
		NombreTienda:  c.NombreTienda,
		Direccion:     c.Direccion,
		Telefono:      c.Telefono,
		RedSocial:     c.RedSocial,
		MensajeTicket: c.MensajeTicket,
		LogoUrl:       c.LogoUrl,
	}
}
