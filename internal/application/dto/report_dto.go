package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO un producto en o por debajo de su umbral de reposición.
type LowStockItemDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Stock     int64           `json:"stock_actual"`
	MinStock  int64           `json:"stock_minimo"`
	Shortage  int64           `json:"shortage"` // MinStock - Stock, mínimo 0
	Price     decimal.Decimal `json:"price"`
}

// LowStockReportResponse reporte de productos bajo el umbral de reposición.
type LowStockReportResponse struct {
	Total int               `json:"total"`
	Items []LowStockItemDTO `json:"items"`
}
