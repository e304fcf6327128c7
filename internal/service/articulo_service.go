package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	precioCachePrefix = "precio:"
	precioCacheTTL    = 5 * time.Minute
)

type ArticuloService struct {
	repo          repository.ArticuloRepository
	proveedorRepo repository.ProveedorRepository
	bitacora      *BitacoraService
	rdb           *redis.Client
}

func NewArticuloService(
	repo repository.ArticuloRepository,
	proveedorRepo repository.ProveedorRepository,
	bitacora *BitacoraService,
	rdb *redis.Client,
) *ArticuloService {
	return &ArticuloService{repo: repo, proveedorRepo: proveedorRepo, bitacora: bitacora, rdb: rdb}
}

func (s *ArticuloService) Crear(ctx context.Context, req dto.CrearArticuloRequest, usuarioID uuid.UUID) (*dto.ArticuloResponse, error) {
	proveedorID, err := uuid.Parse(req.IdProveedor)
	if err != nil {
		return nil, Validacion("el proveedor no es válido")
	}
	if req.CantidadMaxima > 0 && req.CantidadMinima > req.CantidadMaxima {
		return nil, Validacion("la cantidad mínima no puede superar la máxima")
	}

	codigo := strings.TrimSpace(req.CodArticulo)
	if codigo == "" {
		codigo = generarCodigo()
	}

	art := &model.Articulo{
		CodArticulo:       codigo,
		NomArticulo:       req.NomArticulo,
		Categoria:         defaultStr(req.Categoria, "GENERAL"),
		Talla:             req.Talla,
		Color:             req.Color,
		DetallesTecnicos:  req.DetallesTecnicos,
		NombreUnidad:      defaultStr(req.NombreUnidad, "Pza"),
		PrecioVenta:       req.PrecioVenta,
		CantidadMinima:    req.CantidadMinima,
		CantidadMaxima:    req.CantidadMaxima,
		ProveedorID:       &proveedorID,
		Activo:            true,
		IdUsuarioCreacion: &usuarioID,
	}
	if err := s.repo.Create(ctx, art); err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, usuarioID, "CREAR_ARTICULO",
		fmt.Sprintf("Artículo '%s' (%s)", art.NomArticulo, art.CodArticulo))

	return s.aResponse(art), nil
}

func (s *ArticuloService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarArticuloRequest, usuarioID uuid.UUID) (*dto.ArticuloResponse, error) {
	proveedorID, err := uuid.Parse(req.IdProveedor)
	if err != nil {
		return nil, Validacion("el proveedor no es válido")
	}

	art, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Stock and cost stay untouched: only entradas/ventas may move them.
	art.NomArticulo = req.NomArticulo
	art.Categoria = defaultStr(req.Categoria, art.Categoria)
	art.Talla = req.Talla
	art.Color = req.Color
	art.DetallesTecnicos = req.DetallesTecnicos
	art.NombreUnidad = defaultStr(req.NombreUnidad, art.NombreUnidad)
	art.PrecioVenta = req.PrecioVenta
	art.CantidadMinima = req.CantidadMinima
	art.CantidadMaxima = req.CantidadMaxima
	art.ProveedorID = &proveedorID

	if err := s.repo.Update(ctx, art); err != nil {
		return nil, err
	}

	s.invalidarPrecio(ctx, art.CodArticulo)
	s.bitacora.Registrar(ctx, usuarioID, "EDITAR_ARTICULO",
		fmt.Sprintf("Artículo '%s' (%s)", art.NomArticulo, art.CodArticulo))

	return s.aResponse(art), nil
}

func (s *ArticuloService) Eliminar(ctx context.Context, id uuid.UUID, usuarioID uuid.UUID) error {
	art, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidarPrecio(ctx, art.CodArticulo)
	s.bitacora.Registrar(ctx, usuarioID, "ELIMINAR_ARTICULO",
		fmt.Sprintf("Artículo '%s' (%s)", art.NomArticulo, art.CodArticulo))
	return nil
}

func (s *ArticuloService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ArticuloResponse, error) {
	art, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.aResponse(art), nil
}

func (s *ArticuloService) Listar(ctx context.Context) ([]dto.ArticuloResponse, error) {
	articulos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticuloResponse, 0, len(articulos))
	for i := range articulos {
		out = append(out, *s.aResponse(&articulos[i]))
	}
	return out, nil
}

// ConsultaPrecio serves the public price-check kiosk. Cache-aside over Redis:
// a miss reads the database and repopulates the key for 5 minutes.
func (s *ArticuloService) ConsultaPrecio(ctx context.Context, codigo string) (*dto.ConsultaPrecioResponse, error) {
	key := precioCachePrefix + codigo

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp dto.ConsultaPrecioResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	art, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	resp := &dto.ConsultaPrecioResponse{
		NomArticulo:     art.NomArticulo,
		PrecioVenta:     art.PrecioVenta,
		StockDisponible: art.StockActual,
		Categoria:       art.Categoria,
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, payload, precioCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("codigo", codigo).Msg("no se pudo cachear el precio")
			}
		}
	}
	return resp, nil
}

func (s *ArticuloService) invalidarPrecio(ctx context.Context, codigo string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, precioCachePrefix+codigo).Err(); err != nil {
		log.Warn().Err(err).Str("codigo", codigo).Msg("no se pudo invalidar el precio cacheado")
	}
}

func (s *ArticuloService) aResponse(a *model.Articulo) *dto.ArticuloResponse {
	resp := &dto.ArticuloResponse{
		ID:               a.ID.String(),
		CodArticulo:      a.CodArticulo,
		NomArticulo:      a.NomArticulo,
		Categoria:        a.Categoria,
		Talla:            a.Talla,
		Color:            a.Color,
		DetallesTecnicos: a.DetallesTecnicos,
		NombreUnidad:     a.NombreUnidad,
		Imagen:           a.Imagen,
		StockActual:      a.StockActual,
		PrecioVenta:      a.PrecioVenta,
		CostoPromedio:    a.CostoPromedio,
		CantidadMinima:   a.CantidadMinima,
		CantidadMaxima:   a.CantidadMaxima,
		Activo:           a.Activo,
	}
	if a.Proveedor != nil {
		resp.NomProveedor = a.Proveedor.NomProveedor
	}
	return resp
}

func generarCodigo() string {
	return "ART-" + strings.ToUpper(uuid.New().String()[:8])
}

func defaultStr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
