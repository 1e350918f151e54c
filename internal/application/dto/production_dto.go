package dto

import "github.com/shopspring/decimal"

// ── Requests ──────────────────────────────────────────────────────────────────

// PlanMaterialLine línea de consumo planeado de materia prima.
type PlanMaterialLine struct {
	MaterialID string `json:"material_id"`
	PlannedQty int64  `json:"planned_qty"`
}

// PlanProductionRequest planeación de un lote. PlannedQuantity debe ser > 0;
// el costo total se fija aquí con los costos unitarios vigentes.
type PlanProductionRequest struct {
	ProductID       string             `json:"product_id"`
	ProductName     string             `json:"product_name"`
	BatchNumber     string             `json:"batch_number"`
	PlannedQuantity int64              `json:"planned_quantity"`
	Materials       []PlanMaterialLine `json:"materials"`
	LaborCost       decimal.Decimal    `json:"labor_cost"`
	OverheadCost    decimal.Decimal    `json:"overhead_cost"`
	Supervisor      string             `json:"supervisor"`
}

// MaterialActual consumo real de una materia prima al completar el lote.
type MaterialActual struct {
	MaterialID string `json:"material_id"`
	ActualQty  int64  `json:"actual_qty"`
}

// CompleteProductionRequest cierre de un lote en progreso.
type CompleteProductionRequest struct {
	ActualQuantity  int64            `json:"actual_quantity"`
	MaterialActuals []MaterialActual `json:"material_actuals"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// MaterialLineDTO línea de consumo con su merma derivada.
type MaterialLineDTO struct {
	MaterialID   string `json:"material_id"`
	MaterialName string `json:"material_name"`
	PlannedQty   int64  `json:"planned_qty"`
	ActualQty    int64  `json:"actual_qty"`
	WastageQty   int64  `json:"wastage_qty"`
}

// ProductionBatchDTO proyección de un lote para la capa HTTP.
type ProductionBatchDTO struct {
	ID              string            `json:"id"`
	ProductID       string            `json:"product_id"`
	ProductName     string            `json:"product_name"`
	BatchNumber     string            `json:"batch_number"`
	PlannedQuantity int64             `json:"planned_quantity"`
	ActualQuantity  int64             `json:"actual_quantity"`
	Materials       []MaterialLineDTO `json:"materials"`
	LaborCost       decimal.Decimal   `json:"labor_cost"`
	OverheadCost    decimal.Decimal   `json:"overhead_cost"`
	TotalCost       decimal.Decimal   `json:"total_cost"`
	YieldPercentage decimal.Decimal   `json:"yield_percentage"`
	Status          string            `json:"status"`
	Supervisor      string            `json:"supervisor"`
	StartDate       string            `json:"start_date,omitempty"`
	EndDate         string            `json:"end_date,omitempty"`
}

// EfficiencyDTO agregados de producción sobre TODOS los lotes, incluidos los
// aún planeados (cuyo actual es 0); el llamador que quiera filtrar por estado
// debe hacerlo por su cuenta.
type EfficiencyDTO struct {
	Efficiency   decimal.Decimal `json:"efficiency"`    // Σ actual / Σ planeado × 100
	AverageYield decimal.Decimal `json:"average_yield"` // media aritmética de yield
}
