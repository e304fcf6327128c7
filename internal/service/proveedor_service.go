package service

import (
	"context"
	"fmt"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService struct {
	repo         repository.ProveedorRepository
	articuloRepo repository.ArticuloRepository
	bitacora     *BitacoraService
}

func NewProveedorService(
	repo repository.ProveedorRepository,
	articuloRepo repository.ArticuloRepository,
	bitacora *BitacoraService,
) *ProveedorService {
	return &ProveedorService{repo: repo, articuloRepo: articuloRepo, bitacora: bitacora}
}

func (s *ProveedorService) Crear(ctx context.Context, req dto.ProveedorRequest, usuarioID uuid.UUID) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		NomProveedor:   req.NomProveedor,
		RFC:            req.RFC,
		Direccion:      req.Direccion,
		Telefono:       req.Telefono,
		Email:          req.Email,
		NombreContacto: req.NombreContacto,
		Activo:         true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.bitacora.Registrar(ctx, usuarioID, "CREAR_PROVEEDOR",
		fmt.Sprintf("Proveedor '%s'", p.NomProveedor))
	return aProveedorResponse(p), nil
}

func (s *ProveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ProveedorRequest, usuarioID uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.NomProveedor = req.NomProveedor
	p.RFC = req.RFC
	p.Direccion = req.Direccion
	p.Telefono = req.Telefono
	p.Email = req.Email
	p.NombreContacto = req.NombreContacto

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.bitacora.Registrar(ctx, usuarioID, "EDITAR_PROVEEDOR",
		fmt.Sprintf("Proveedor '%s'", p.NomProveedor))
	return aProveedorResponse(p), nil
}

// Eliminar deactivates a supplier. Blocked while active articles still
// reference it, so purchase history keeps resolving.
func (s *ProveedorService) Eliminar(ctx context.Context, id uuid.UUID, usuarioID uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	articulos, err := s.articuloRepo.FindByProveedorID(ctx, id)
	if err != nil {
		return err
	}
	if len(articulos) > 0 {
		return Validacion("el proveedor tiene %d artículos activos asociados", len(articulos))
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.bitacora.Registrar(ctx, usuarioID, "ELIMINAR_PROVEEDOR",
		fmt.Sprintf("Proveedor '%s'", p.NomProveedor))
	return nil
}

func (s *ProveedorService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return aProveedorResponse(p), nil
}

func (s *ProveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *aProveedorResponse(&proveedores[i]))
	}
	return out, nil
}

func aProveedorResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:             p.ID.String(),
		NomProveedor:   p.NomProveedor,
		RFC:            p.RFC,
		Direccion:      p.Direccion,
		Telefono:       p.Telefono,
		Email:          p.Email,
		NombreContacto: p.NombreContacto,
		Activo:         p.Activo,
	}
}
