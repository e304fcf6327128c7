package service

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventarioService is the stock ledger: the only code path that mutates
// StockActual and CostoPromedio. Entradas and ventas call its Tx methods
// inside their own transaction so stock, cost and the movement trail commit
// or roll back together.
type InventarioService struct {
	articuloRepo repository.ArticuloRepository
	comboRepo    repository.ComboRepository
	movRepo      repository.MovimientoStockRepository
}

func NewInventarioService(
	articuloRepo repository.ArticuloRepository,
	comboRepo repository.ComboRepository,
	movRepo repository.MovimientoStockRepository,
) *InventarioService {
	return &InventarioService{
		articuloRepo: articuloRepo,
		comboRepo:    comboRepo,
		movRepo:      movRepo,
	}
}

// IngresarStockTx receives cantidad units at costoUnitario and recomputes the
// weighted-average cost:
//
//	nuevo = (stockAnterior*costoAnterior + cantidad*costoUnitario) / stockNuevo
//
// Rounded to 4 decimal places. A reception into zero stock simply adopts the
// incoming unit cost.
func (s *InventarioService) IngresarStockTx(tx *gorm.DB, articuloID uuid.UUID, cantidad int, costoUnitario decimal.Decimal, entradaID uuid.UUID) error {
	if cantidad <= 0 {
		return Validacion("la cantidad a ingresar debe ser mayor a cero")
	}
	if costoUnitario.IsNegative() {
		return Validacion("el costo unitario no puede ser negativo")
	}

	art, err := s.articuloRepo.FindByIDTx(tx, articuloID)
	if err != nil {
		return err
	}

	stockAnterior := art.StockActual
	stockNuevo := stockAnterior + cantidad

	cantDec := decimal.NewFromInt(int64(cantidad))
	valorExistente := decimal.NewFromInt(int64(stockAnterior)).Mul(art.CostoPromedio)
	valorEntrante := cantDec.Mul(costoUnitario)
	nuevoCosto := valorExistente.Add(valorEntrante).
		DivRound(decimal.NewFromInt(int64(stockNuevo)), 4)

	if err := s.articuloRepo.IngresarStockTx(tx, articuloID, cantidad, nuevoCosto); err != nil {
		return err
	}

	return s.movRepo.CreateTx(tx, &model.MovimientoStock{
		ArticuloID:    articuloID,
		Tipo:          "entrada",
		Cantidad:      cantidad,
		StockAnterior: stockAnterior,
		StockNuevo:    stockNuevo,
		Motivo:        "Compra a proveedor",
		ReferenciaID:  &entradaID,
	})
}

// DescontarArticuloTx consumes cantidad units of an article. The decrement is
// a single guarded UPDATE; when it affects no rows the stock was short and the
// article is untouched.
func (s *InventarioService) DescontarArticuloTx(tx *gorm.DB, articuloID uuid.UUID, cantidad int, tipo string, ventaID uuid.UUID) error {
	if cantidad <= 0 {
		return Validacion("la cantidad a descontar debe ser mayor a cero")
	}

	art, err := s.articuloRepo.FindByIDTx(tx, articuloID)
	if err != nil {
		return err
	}

	ok, err := s.articuloRepo.ConsumirStockTx(tx, articuloID, cantidad)
	if err != nil {
		return err
	}
	if !ok {
		return &ErrStockInsuficiente{NomArticulo: art.NomArticulo}
	}

	return s.movRepo.CreateTx(tx, &model.MovimientoStock{
		ArticuloID:    articuloID,
		Tipo:          tipo,
		Cantidad:      -cantidad,
		StockAnterior: art.StockActual,
		StockNuevo:    art.StockActual - cantidad,
		Motivo:        "Venta",
		ReferenciaID:  &ventaID,
	})
}

// DescontarComboTx expands the combo recipe and consumes each ingredient,
// multiplying recipe quantities by the number of combos sold. Any short
// ingredient aborts the whole transaction.
func (s *InventarioService) DescontarComboTx(tx *gorm.DB, comboID uuid.UUID, cantidadCombos int, ventaID uuid.UUID) error {
	if cantidadCombos <= 0 {
		return Validacion("la cantidad de combos debe ser mayor a cero")
	}

	receta, err := s.comboRepo.FindRecetaTx(tx, comboID)
	if err != nil {
		return err
	}
	if len(receta) == 0 {
		return Validacion("el combo no tiene ingredientes configurados")
	}

	for _, linea := range receta {
		total := linea.Cantidad * cantidadCombos
		if err := s.DescontarArticuloTx(tx, linea.ArticuloID, total, "venta_combo", ventaID); err != nil {
			return err
		}
	}
	return nil
}

// ObtenerAlertas lists active articles at or below their configured minimum.
func (s *InventarioService) ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error) {
	articulos, err := s.articuloRepo.ListStockBajo(ctx)
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaStockResponse, 0, len(articulos))
	for _, a := range articulos {
		alertas = append(alertas, dto.AlertaStockResponse{
			ID:             a.ID.String(),
			NomArticulo:    a.NomArticulo,
			StockActual:    a.StockActual,
			CantidadMinima: a.CantidadMinima,
		})
	}
	return alertas, nil
}

// ObtenerMovimientos returns the recent ledger trail of one article.
func (s *InventarioService) ObtenerMovimientos(ctx context.Context, articuloID uuid.UUID) ([]dto.MovimientoStockResponse, error) {
	movimientos, err := s.movRepo.ListByArticulo(ctx, articuloID, 100)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoStockResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, dto.MovimientoStockResponse{
			ID:            m.ID.String(),
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			Fecha:         m.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}
