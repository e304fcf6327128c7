package service

import (
	"context"
	"fmt"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Broadcaster pushes real-time events to connected POS terminals.
type Broadcaster interface {
	Broadcast(evento string, payload interface{})
}

// VentaService coordinates the sale transaction: folio assignment, per-line
// stock consumption and the sale record commit or roll back as one unit.
type VentaService struct {
	ventaRepo  repository.VentaRepository
	puntoRepo  repository.PuntoEntregaRepository
	inventario *InventarioService
	bitacora   *BitacoraService
	queue      JobQueue
	hub        Broadcaster
}

func NewVentaService(
	ventaRepo repository.VentaRepository,
	puntoRepo repository.PuntoEntregaRepository,
	inventario *InventarioService,
	bitacora *BitacoraService,
	queue JobQueue,
	hub Broadcaster,
) *VentaService {
	return &VentaService{
		ventaRepo:  ventaRepo,
		puntoRepo:  puntoRepo,
		inventario: inventario,
		bitacora:   bitacora,
		queue:      queue,
		hub:        hub,
	}
}

type lineaVenta struct {
	id       uuid.UUID
	cantidad int
	precio   decimal.Decimal
	esCombo  bool
}

func (s *VentaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest, usuarioID uuid.UUID) (*dto.VentaResponse, error) {
	if len(req.Productos) == 0 {
		return nil, Validacion("la venta debe incluir al menos un producto")
	}
	if req.IdPuntoEntrega == "" {
		return nil, Validacion("el punto de entrega es obligatorio")
	}
	puntoID, err := uuid.Parse(req.IdPuntoEntrega)
	if err != nil {
		return nil, Validacion("el punto de entrega no es válido")
	}

	// All IDs must parse before touching the database.
	lineas := make([]lineaVenta, 0, len(req.Productos))
	for _, p := range req.Productos {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, Validacion("el producto '%s' no es válido", p.ID)
		}
		lineas = append(lineas, lineaVenta{
			id:       id,
			cantidad: p.Cantidad,
			precio:   p.Precio,
			esCombo:  p.Tipo == "COMBO",
		})
	}

	cliente := req.ClienteNombre
	if cliente == "" {
		cliente = "Público General"
	}

	venta := &model.Venta{
		ID:             uuid.New(),
		ClienteNombre:  cliente,
		PuntoEntregaID: puntoID,
		Estado:         "COMPLETADA",
		UsuarioID:      &usuarioID,
	}

	err = runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		existe, err := s.puntoRepo.ExistsTx(tx, puntoID)
		if err != nil {
			return err
		}
		if !existe {
			return Validacion("el punto de entrega no existe")
		}

		folio, err := s.ventaRepo.NextFolio(tx)
		if err != nil {
			return err
		}
		venta.Folio = folio

		total := decimal.Zero
		for _, l := range lineas {
			if l.esCombo {
				if err := s.inventario.DescontarComboTx(tx, l.id, l.cantidad, venta.ID); err != nil {
					return err
				}
			} else {
				if err := s.inventario.DescontarArticuloTx(tx, l.id, l.cantidad, "venta", venta.ID); err != nil {
					return err
				}
			}

			subtotal := l.precio.Mul(decimal.NewFromInt(int64(l.cantidad)))
			detalle := model.DetalleVenta{
				VentaID:        venta.ID,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
				Subtotal:       subtotal,
			}
			if l.esCombo {
				comboID := l.id
				detalle.ComboID = &comboID
			} else {
				articuloID := l.id
				detalle.ArticuloID = &articuloID
			}
			venta.Detalles = append(venta.Detalles, detalle)
			total = total.Add(subtotal)
		}
		venta.Total = total

		return s.ventaRepo.Create(ctx, tx, venta)
	})
	if err != nil {
		return nil, err
	}

	// Post-commit side effects are best-effort: the sale is already final.
	s.bitacora.Registrar(ctx, usuarioID, "NUEVA_VENTA",
		fmt.Sprintf("Venta folio %d por $%s", venta.Folio, venta.Total.StringFixed(2)))
	if s.hub != nil {
		s.hub.Broadcast("nueva_venta", dto.VentaResponse{
			ID:    venta.ID.String(),
			Folio: venta.Folio,
		})
	}
	s.alertarStockBajo(ctx)

	return &dto.VentaResponse{
		ID:      venta.ID.String(),
		Folio:   venta.Folio,
		Mensaje: "Venta registrada correctamente",
	}, nil
}

// alertarStockBajo enqueues an email alert when the sale left articles at or
// below their minimum. Failures are only logged.
func (s *VentaService) alertarStockBajo(ctx context.Context) {
	alertas, err := s.inventario.ObtenerAlertas(ctx)
	if err != nil || len(alertas) == 0 {
		return
	}

	cuerpo := "Los siguientes artículos están en o por debajo de su stock mínimo:\n\n"
	for _, a := range alertas {
		cuerpo += fmt.Sprintf("- %s: %d (mínimo %d)\n", a.NomArticulo, a.StockActual, a.CantidadMinima)
	}

	job := worker.EmailJob{
		Asunto: fmt.Sprintf("Alerta de stock bajo (%d artículos)", len(alertas)),
		Cuerpo: cuerpo,
	}
	if err := s.queue.Enqueue(ctx, worker.QueueEmail, job); err != nil {
		log.Warn().Err(err).Msg("no se pudo encolar la alerta de stock bajo")
	}
}

func (s *VentaService) Listar(ctx context.Context, limit int) ([]dto.VentaListItem, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	ventas, err := s.ventaRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VentaListItem, 0, len(ventas))
	for _, v := range ventas {
		vendedor := ""
		if v.Usuario != nil {
			vendedor = v.Usuario.Nombre
		}
		punto := ""
		if v.PuntoEntrega != nil {
			punto = v.PuntoEntrega.NombrePunto
		}
		items = append(items, dto.VentaListItem{
			ID:            v.ID.String(),
			Folio:         v.Folio,
			Fecha:         v.CreatedAt.Format("2006-01-02 15:04:05"),
			Total:         v.Total,
			Estado:        v.Estado,
			ClienteNombre: v.ClienteNombre,
			Vendedor:      vendedor,
			PuntoEntrega:  punto,
		})
	}
	return items, nil
}

func (s *VentaService) Obtener(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	return s.ventaRepo.FindByID(ctx, id)
}

func (s *VentaService) Detalles(ctx context.Context, id uuid.UUID) ([]dto.DetalleVentaResponse, error) {
	venta, err := s.ventaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detalles := make([]dto.DetalleVentaResponse, 0, len(venta.Detalles))
	for _, d := range venta.Detalles {
		producto := ""
		tipo := "ARTICULO"
		if d.Combo != nil {
			producto = d.Combo.Nombre
			tipo = "COMBO"
		} else if d.Articulo != nil {
			producto = d.Articulo.NomArticulo
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			Producto:       producto,
			Tipo:           tipo,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return detalles, nil
}
