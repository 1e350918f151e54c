package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clase de ítem almacenado.
type ItemKind string

const (
	ItemKindRaw      ItemKind = "raw"
	ItemKindFinished ItemKind = "finished"
)

// StockStatus estado de ciclo de vida de un ítem. Se deriva siempre con el
// clasificador de stock; ningún otro camino lo escribe.
type StockStatus string

const (
	StatusInStock    StockStatus = "in-stock"
	StatusLowStock   StockStatus = "low-stock"
	StatusOutOfStock StockStatus = "out-of-stock"
	StatusExpired    StockStatus = "expired"
	StatusNearExpiry StockStatus = "near-expiry"
)

// ItemCore campos comunes a materias primas y producto terminado.
type ItemCore struct {
	ID               string
	Name             string
	Quantity         int64 // unidades enteras; nunca negativo (los ajustes se recortan en 0)
	Unit             string
	UnitCost         decimal.Decimal
	ReorderThreshold int64
	ExpiryDate       time.Time
	BatchNumber      string
	Status           StockStatus
	LastUpdated      time.Time
}

// StockItem variante etiquetada RawMaterial | FinishedGood.
// El discriminante es Kind(); los consumidores resuelven la variante con un
// type switch exhaustivo.
type StockItem interface {
	Core() *ItemCore
	Kind() ItemKind
}

// RawMaterial materia prima farmacéutica (principio activo, excipiente, etc.).
type RawMaterial struct {
	ItemCore
	Supplier     string
	Location     string
	QualityGrade string // A, B o C
}

func (m *RawMaterial) Core() *ItemCore { return &m.ItemCore }
func (m *RawMaterial) Kind() ItemKind  { return ItemKindRaw }

// FinishedGood producto terminado listo para venta. Lleva precio de venta y los
// datos de demanda que alimentan la regla de sobreproducción.
type FinishedGood struct {
	ItemCore
	SKU            string
	Category       string
	SellingPrice   decimal.Decimal
	DemandForecast int64
	ActualSales    int64
	Overproduction int64 // unidades producidas por encima de la venta real vs. pronóstico
}

func (g *FinishedGood) Core() *ItemCore { return &g.ItemCore }
func (g *FinishedGood) Kind() ItemKind  { return ItemKindFinished }
