// Package analytics contiene el motor de analítica transversal: rentabilidad
// y rotación de inventario. Pull-based y sin estado: cada llamada recomputa
// todo desde el contenido actual de los ledgers, nunca cachea.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/ports"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// UseCase motor de analítica. Seguro para lectores concurrentes: solo lee
// bajo el candado de lectura del almacén.
type UseCase struct {
	store ports.LedgerStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store ports.LedgerStore) *UseCase {
	return &UseCase{store: store}
}

// Profitability ingresos contra costo de producción de TODOS los lotes, en
// cualquier estado. La división lleva guarda explícita: sin ingresos el
// margen es 0, no NaN ni pánico.
func (uc *UseCase) Profitability() (dto.ProfitabilityDTO, error) {
	out := dto.ProfitabilityDTO{
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		GrossProfit:  decimal.Zero,
		ProfitMargin: decimal.Zero,
	}
	err := uc.store.View(func(l *repository.Ledgers) error {
		for _, o := range l.SalesOrders {
			out.TotalRevenue = out.TotalRevenue.Add(o.TotalAmount)
		}
		for _, b := range l.Batches {
			out.TotalCost = out.TotalCost.Add(b.TotalCost)
		}
		out.GrossProfit = out.TotalRevenue.Sub(out.TotalCost)
		if out.TotalRevenue.GreaterThan(decimal.Zero) {
			out.ProfitMargin = out.GrossProfit.Div(out.TotalRevenue).Mul(hundred)
		}
		return nil
	})
	return out, err
}

// InventoryTurnover COGS (costo total de lotes) sobre el valor actual del
// inventario (materias primas y producto terminado a costo unitario).
// Inventario vacío devuelve ratio 0 con guarda explícita.
func (uc *UseCase) InventoryTurnover() (dto.InventoryTurnoverDTO, error) {
	out := dto.InventoryTurnoverDTO{
		InventoryValue: decimal.Zero,
		COGS:           decimal.Zero,
		TurnoverRatio:  decimal.Zero,
	}
	err := uc.store.View(func(l *repository.Ledgers) error {
		for _, item := range l.Items {
			core := item.Core()
			out.InventoryValue = out.InventoryValue.Add(
				decimal.NewFromInt(core.Quantity).Mul(core.UnitCost))
		}
		for _, b := range l.Batches {
			out.COGS = out.COGS.Add(b.TotalCost)
		}
		if out.InventoryValue.GreaterThan(decimal.Zero) {
			out.TurnoverRatio = out.COGS.Div(out.InventoryValue)
		}
		return nil
	})
	return out, err
}
