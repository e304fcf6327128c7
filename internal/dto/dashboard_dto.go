package dto

import "github.com/shopspring/decimal"

// ResumenResponse feeds the admin dashboard landing page.
type ResumenResponse struct {
	VentasHoy       decimal.Decimal `json:"ventas_hoy"`
	VentasMes       decimal.Decimal `json:"ventas_mes"`
	StockBajo       int64           `json:"stock_bajo"`
	VentasRecientes []VentaListItem `json:"ventas_recientes"`
}
