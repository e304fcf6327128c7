package service

import (
	"context"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"
)

type DashboardService struct {
	ventaRepo    repository.VentaRepository
	articuloRepo repository.ArticuloRepository
	ventas       *VentaService
}

func NewDashboardService(
	ventaRepo repository.VentaRepository,
	articuloRepo repository.ArticuloRepository,
	ventas *VentaService,
) *DashboardService {
	return &DashboardService{ventaRepo: ventaRepo, articuloRepo: articuloRepo, ventas: ventas}
}

func (s *DashboardService) Resumen(ctx context.Context) (*dto.ResumenResponse, error) {
	ahora := time.Now()
	inicioDia := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())

	ventasHoy, err := s.ventaRepo.SumTotalDesde(ctx, inicioDia)
	if err != nil {
		return nil, err
	}
	ventasMes, err := s.ventaRepo.SumTotalDesde(ctx, inicioMes)
	if err != nil {
		return nil, err
	}
	stockBajo, err := s.articuloRepo.CountStockBajo(ctx)
	if err != nil {
		return nil, err
	}
	recientes, err := s.ventas.Listar(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &dto.ResumenResponse{
		VentasHoy:       ventasHoy,
		VentasMes:       ventasMes,
		StockBajo:       stockBajo,
		VentasRecientes: recientes,
	}, nil
}
