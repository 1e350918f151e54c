package dto

import "github.com/shopspring/decimal"

// ProfitabilityDTO análisis de rentabilidad global.
// Fórmula: grossProfit = ingresos − costo; margen = grossProfit/ingresos×100
// con guarda explícita en cero (es analítica de tablero, no un libro contable:
// un cero silencioso aquí no es peligroso).
type ProfitabilityDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"` // Σ totalAmount de órdenes de venta
	TotalCost    decimal.Decimal `json:"total_cost"`    // Σ totalCost de lotes (cualquier estado)
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"` // %; 0 si no hay ingresos
}

// InventoryTurnoverDTO rotación de inventario.
type InventoryTurnoverDTO struct {
	InventoryValue decimal.Decimal `json:"inventory_value"` // Σ qty × costo unitario
	COGS           decimal.Decimal `json:"cogs"`            // Σ totalCost de lotes
	TurnoverRatio  decimal.Decimal `json:"turnover_ratio"`  // COGS/valor; 0 si inventario vacío
}
