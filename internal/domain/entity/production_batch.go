package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del lote de producción. Las transiciones son solo hacia adelante:
// planned → in-progress → completed, o cancelación desde planned/in-progress.
// completed y cancelled son terminales.
type ProductionStatus string

const (
	ProductionPlanned    ProductionStatus = "planned"
	ProductionInProgress ProductionStatus = "in-progress"
	ProductionCompleted  ProductionStatus = "completed"
	ProductionCancelled  ProductionStatus = "cancelled"
)

// MaterialLine consumo de una materia prima dentro de un lote.
// WastageQty = max(0, PlannedQty − ActualQty), fijado al completar el lote.
type MaterialLine struct {
	MaterialID   string
	MaterialName string
	PlannedQty   int64
	ActualQty    int64
	WastageQty   int64
}

// ProductionBatch lote de producción. TotalCost se calcula al planear con los
// costos unitarios vigentes de las materias primas (costeo a tiempo de
// planeación) y no se recalcula cuando los consumos reales divergen.
type ProductionBatch struct {
	ID              string
	ProductID       string
	ProductName     string
	BatchNumber     string
	PlannedQuantity int64 // > 0, validado al crear
	ActualQuantity  int64 // solo significativo fuera de planned
	Materials       []MaterialLine
	LaborCost       decimal.Decimal
	OverheadCost    decimal.Decimal
	TotalCost       decimal.Decimal
	YieldPercentage decimal.Decimal // actual/planned×100; 0 mientras no se complete
	Status          ProductionStatus
	Supervisor      string
	StartDate       time.Time
	EndDate         time.Time
}
