package dto

import "github.com/shopspring/decimal"

// ── Requests ──────────────────────────────────────────────────────────────────

// AddStockItemRequest alta de un ítem de inventario. El campo status no se
// acepta como entrada: siempre lo deriva el clasificador.
// ReorderThreshold es puntero para distinguir "no enviado" de cero: el
// producto terminado sin umbral explícito recibe el default configurado.
type AddStockItemRequest struct {
	Kind             string          `json:"kind"` // raw | finished
	Name             string          `json:"name"`
	Quantity         int64           `json:"quantity"`
	Unit             string          `json:"unit"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	ReorderThreshold *int64          `json:"reorder_threshold"`
	ExpiryDate       string          `json:"expiry_date"` // YYYY-MM-DD
	BatchNumber      string          `json:"batch_number"`

	// Solo materia prima
	Supplier     string `json:"supplier,omitempty"`
	Location     string `json:"location,omitempty"`
	QualityGrade string `json:"quality_grade,omitempty"`

	// Solo producto terminado
	SKU            string          `json:"sku,omitempty"`
	Category       string          `json:"category,omitempty"`
	SellingPrice   decimal.Decimal `json:"selling_price,omitempty"`
	DemandForecast int64           `json:"demand_forecast,omitempty"`
	ActualSales    int64           `json:"actual_sales,omitempty"`
	Overproduction int64           `json:"overproduction,omitempty"`
}

// AdjustStockRequest ajuste de cantidad por delta (positivo o negativo).
type AdjustStockRequest struct {
	Delta int64 `json:"delta"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// StockItemDTO proyección de un ítem para la capa HTTP.
type StockItemDTO struct {
	ID               string          `json:"id"`
	Kind             string          `json:"kind"`
	Name             string          `json:"name"`
	Quantity         int64           `json:"quantity"`
	Unit             string          `json:"unit"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	ReorderThreshold int64           `json:"reorder_threshold"`
	ExpiryDate       string          `json:"expiry_date"`
	BatchNumber      string          `json:"batch_number"`
	Status           string          `json:"status"`
	LastUpdated      string          `json:"last_updated"`

	Supplier     string `json:"supplier,omitempty"`
	Location     string `json:"location,omitempty"`
	QualityGrade string `json:"quality_grade,omitempty"`

	SKU            string          `json:"sku,omitempty"`
	Category       string          `json:"category,omitempty"`
	SellingPrice   decimal.Decimal `json:"selling_price,omitempty"`
	DemandForecast int64           `json:"demand_forecast,omitempty"`
	ActualSales    int64           `json:"actual_sales,omitempty"`
	Overproduction int64           `json:"overproduction,omitempty"`
}
