package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
)

type ComboService struct {
	repo         repository.ComboRepository
	articuloRepo repository.ArticuloRepository
	bitacora     *BitacoraService
}

func NewComboService(
	repo repository.ComboRepository,
	articuloRepo repository.ArticuloRepository,
	bitacora *BitacoraService,
) *ComboService {
	return &ComboService{repo: repo, articuloRepo: articuloRepo, bitacora: bitacora}
}

func (s *ComboService) Crear(ctx context.Context, req dto.CrearComboRequest, usuarioID uuid.UUID) (*dto.ComboResponse, error) {
	ingredientes, err := s.validarIngredientes(ctx, req.Ingredientes)
	if err != nil {
		return nil, err
	}

	codigo := strings.TrimSpace(req.Codigo)
	if codigo == "" {
		codigo = "CMB-" + strings.ToUpper(uuid.New().String()[:8])
	}

	combo := &model.Combo{
		Nombre:            req.Nombre,
		Codigo:            codigo,
		Precio:            req.Precio,
		Activo:            true,
		IdUsuarioCreacion: &usuarioID,
		Ingredientes:      ingredientes,
	}
	if err := s.repo.Create(ctx, combo); err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, usuarioID, "CREAR_COMBO",
		fmt.Sprintf("Combo '%s' (%s)", combo.Nombre, combo.Codigo))

	return s.obtenerResponse(ctx, combo.ID)
}

func (s *ComboService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearComboRequest, usuarioID uuid.UUID) (*dto.ComboResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	ingredientes, err := s.validarIngredientes(ctx, req.Ingredientes)
	if err != nil {
		return nil, err
	}

	combo := &model.Combo{
		ID:           id,
		Nombre:       req.Nombre,
		Codigo:       req.Codigo,
		Precio:       req.Precio,
		Ingredientes: ingredientes,
	}
	if err := s.repo.Update(ctx, combo); err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, usuarioID, "EDITAR_COMBO",
		fmt.Sprintf("Combo '%s'", req.Nombre))

	return s.obtenerResponse(ctx, id)
}

func (s *ComboService) Eliminar(ctx context.Context, id uuid.UUID, usuarioID uuid.UUID) error {
	combo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.bitacora.Registrar(ctx, usuarioID, "ELIMINAR_COMBO",
		fmt.Sprintf("Combo '%s' (%s)", combo.Nombre, combo.Codigo))
	return nil
}

func (s *ComboService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ComboResponse, error) {
	return s.obtenerResponse(ctx, id)
}

func (s *ComboService) Listar(ctx context.Context) ([]dto.ComboResponse, error) {
	combos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComboResponse, 0, len(combos))
	for i := range combos {
		out = append(out, *aComboResponse(&combos[i]))
	}
	return out, nil
}

// validarIngredientes checks every recipe line references an existing active
// article before any write happens.
func (s *ComboService) validarIngredientes(ctx context.Context, reqs []dto.IngredienteRequest) ([]model.DetalleCombo, error) {
	if len(reqs) == 0 {
		return nil, Validacion("el combo debe tener al menos un ingrediente")
	}

	ingredientes := make([]model.DetalleCombo, 0, len(reqs))
	vistos := make(map[uuid.UUID]bool, len(reqs))
	for _, ing := range reqs {
		id, err := uuid.Parse(ing.IdArticulo)
		if err != nil {
			return nil, Validacion("el ingrediente '%s' no es válido", ing.IdArticulo)
		}
		if vistos[id] {
			return nil, Validacion("el ingrediente aparece más de una vez en la receta")
		}
		vistos[id] = true
		if ing.Cantidad <= 0 {
			return nil, Validacion("la cantidad del ingrediente debe ser mayor a cero")
		}
		if _, err := s.articuloRepo.FindByID(ctx, id); err != nil {
			return nil, Validacion("el ingrediente '%s' no existe", ing.IdArticulo)
		}
		ingredientes = append(ingredientes, model.DetalleCombo{
			ArticuloID: id,
			Cantidad:   ing.Cantidad,
		})
	}
	return ingredientes, nil
}

func (s *ComboService) obtenerResponse(ctx context.Context, id uuid.UUID) (*dto.ComboResponse, error) {
	combo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return aComboResponse(combo), nil
}

func aComboResponse(c *model.Combo) *dto.ComboResponse {
	resp := &dto.ComboResponse{
		ID:           c.ID.String(),
		Nombre:       c.Nombre,
		Codigo:       c.Codigo,
		Precio:       c.Precio,
		Activo:       c.Activo,
		Ingredientes: make([]dto.IngredienteResponse, 0, len(c.Ingredientes)),
	}
	for _, ing := range c.Ingredientes {
		item := dto.IngredienteResponse{
			IdArticulo: ing.ArticuloID.String(),
			Cantidad:   ing.Cantidad,
		}
		if ing.Articulo != nil {
			item.NomArticulo = ing.Articulo.NomArticulo
			item.NombreUnidad = ing.Articulo.NombreUnidad
		}
		resp.Ingredientes = append(resp.Ingredientes, item)
	}
	return resp
}
