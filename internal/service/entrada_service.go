package service

import (
	"context"
	"fmt"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntradaService coordinates the purchase transaction: the entrada record,
// its lines, each article's stock increment and its new weighted-average cost
// commit together or not at all.
type EntradaService struct {
	entradaRepo   repository.EntradaRepository
	proveedorRepo repository.ProveedorRepository
	inventario    *InventarioService
	bitacora      *BitacoraService
}

func NewEntradaService(
	entradaRepo repository.EntradaRepository,
	proveedorRepo repository.ProveedorRepository,
	inventario *InventarioService,
	bitacora *BitacoraService,
) *EntradaService {
	return &EntradaService{
		entradaRepo:   entradaRepo,
		proveedorRepo: proveedorRepo,
		inventario:    inventario,
		bitacora:      bitacora,
	}
}

type lineaEntrada struct {
	articuloID uuid.UUID
	cantidad   int
	costo      decimal.Decimal
}

func (s *EntradaService) Registrar(ctx context.Context, req dto.RegistrarEntradaRequest, usuarioID uuid.UUID) (*dto.EntradaResponse, error) {
	if len(req.Productos) == 0 {
		return nil, Validacion("la entrada debe incluir al menos un producto")
	}
	proveedorID, err := uuid.Parse(req.IdProveedor)
	if err != nil {
		return nil, Validacion("el proveedor no es válido")
	}
	if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, Validacion("el proveedor no existe")
		}
		return nil, err
	}

	lineas := make([]lineaEntrada, 0, len(req.Productos))
	for _, p := range req.Productos {
		id, err := uuid.Parse(p.IdArticulo)
		if err != nil {
			return nil, Validacion("el artículo '%s' no es válido", p.IdArticulo)
		}
		if p.Cantidad <= 0 {
			return nil, Validacion("la cantidad debe ser mayor a cero")
		}
		if p.Costo.IsNegative() {
			return nil, Validacion("el costo no puede ser negativo")
		}
		lineas = append(lineas, lineaEntrada{articuloID: id, cantidad: p.Cantidad, costo: p.Costo})
	}

	entrada := &model.Entrada{
		ID:                uuid.New(),
		ProveedorID:       proveedorID,
		Comentarios:       req.Comentarios,
		IdUsuarioCreacion: &usuarioID,
	}

	err = runTx(ctx, s.entradaRepo.DB(), func(tx *gorm.DB) error {
		total := decimal.Zero
		for _, l := range lineas {
			subtotal := l.costo.Mul(decimal.NewFromInt(int64(l.cantidad))).Round(2)
			entrada.Detalles = append(entrada.Detalles, model.DetalleEntrada{
				EntradaID:     entrada.ID,
				ArticuloID:    l.articuloID,
				Cantidad:      l.cantidad,
				CostoUnitario: l.costo,
				Subtotal:      subtotal,
			})
			total = total.Add(subtotal)
		}
		entrada.Total = total

		if err := s.entradaRepo.Create(ctx, tx, entrada); err != nil {
			return err
		}

		for _, l := range lineas {
			if err := s.inventario.IngresarStockTx(tx, l.articuloID, l.cantidad, l.costo, entrada.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, usuarioID, "NUEVA_COMPRA",
		fmt.Sprintf("Entrada de mercancía por $%s (%d artículos)", entrada.Total.StringFixed(2), len(lineas)))

	return &dto.EntradaResponse{
		ID:      entrada.ID.String(),
		Mensaje: "Entrada registrada correctamente",
	}, nil
}

func (s *EntradaService) Listar(ctx context.Context, limit int) ([]dto.EntradaListItem, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entradas, err := s.entradaRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EntradaListItem, 0, len(entradas))
	for _, e := range entradas {
		item := dto.EntradaListItem{
			ID:          e.ID.String(),
			Fecha:       e.CreatedAt.Format("2006-01-02 15:04:05"),
			Total:       e.Total,
			Comentarios: e.Comentarios,
		}
		if e.Proveedor != nil {
			item.NomProveedor = e.Proveedor.NomProveedor
			if e.Proveedor.RFC != nil {
				item.RFC = *e.Proveedor.RFC
			}
		}
		if e.Usuario != nil {
			item.Usuario = e.Usuario.Nombre
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *EntradaService) Detalles(ctx context.Context, entradaID uuid.UUID) ([]dto.DetalleEntradaResponse, error) {
	detalles, err := s.entradaRepo.FindDetalles(ctx, entradaID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DetalleEntradaResponse, 0, len(detalles))
	for _, d := range detalles {
		item := dto.DetalleEntradaResponse{
			Cantidad:      d.Cantidad,
			CostoUnitario: d.CostoUnitario,
			Subtotal:      d.Subtotal,
		}
		if d.Articulo != nil {
			item.NomArticulo = d.Articulo.NomArticulo
			item.CodArticulo = d.Articulo.CodArticulo
		}
		out = append(out, item)
	}
	return out, nil
}
