package service

import (
	"context"
	"fmt"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
)

type PuntoEntregaService struct {
	repo     repository.PuntoEntregaRepository
	bitacora *BitacoraService
}

func NewPuntoEntregaService(repo repository.PuntoEntregaRepository, bitacora *BitacoraService) *PuntoEntregaService {
	return &PuntoEntregaService{repo: repo, bitacora: bitacora}
}

func (s *PuntoEntregaService) Crear(ctx context.Context, req dto.PuntoEntregaRequest, usuarioID uuid.UUID) (*dto.PuntoEntregaResponse, error) {
	p := &model.PuntoEntrega{
		NombrePunto:    req.NombrePunto,
		LinkGoogleMaps: req.LinkGoogleMaps,
		Activo:         true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.bitacora.Registrar(ctx, usuarioID, "CREAR_PUNTO_ENTREGA",
		fmt.Sprintf("Punto de entrega '%s'", p.NombrePunto))
	return aPuntoResponse(p), nil
}

func (s *PuntoEntregaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.PuntoEntregaRequest, usuarioID uuid.UUID) (*dto.PuntoEntregaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.NombrePunto = req.NombrePunto
	p.LinkGoogleMaps = req.LinkGoogleMaps

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.bitacora.Registrar(ctx, usuarioID, "EDITAR_PUNTO_ENTREGA",
		fmt.Sprintf("Punto de entrega '%s'", p.NombrePunto))
	return aPuntoResponse(p), nil
}

func (s *PuntoEntregaService) Eliminar(ctx context.Context, id uuid.UUID, usuarioID uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.bitacora.Registrar(ctx, usuarioID, "ELIMINAR_PUNTO_ENTREGA",
		fmt.Sprintf("Punto de entrega '%s'", p.NombrePunto))
	return nil
}

func (s *PuntoEntregaService) Listar(ctx context.Context) ([]dto.PuntoEntregaResponse, error) {
	puntos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PuntoEntregaResponse, 0, len(puntos))
	for i := range puntos {
		out = append(out, *aPuntoResponse(&puntos[i]))
	}
	return out, nil
}

func aPuntoResponse(p *model.PuntoEntrega) *dto.PuntoEntregaResponse {
	return &dto.PuntoEntregaResponse{
		ID:             p.ID.String(),
		NombrePunto:    p.NombrePunto,
		LinkGoogleMaps: p.LinkGoogleMaps,
		Activo:         p.Activo,
	}
}
