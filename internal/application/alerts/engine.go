// Package alerts implementa el motor de reglas de alertas operativas y su
// caso de uso de reconocimiento.
package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/domain/stock"
)

// Engine evalúa las reglas de alerta sobre el snapshot actual de inventario y
// producción. No tiene estado propio: todo lo que necesita viene en el
// snapshot, de modo que el almacén puede invocarlo dentro de su candado.
type Engine struct {
	nearExpiryDays int
}

// NewEngine construye el motor con la misma ventana de pre-vencimiento que el
// clasificador, para que alerta y status cuenten la misma historia.
func NewEngine(nearExpiryDays int) *Engine {
	if nearExpiryDays <= 0 {
		nearExpiryDays = stock.DefaultNearExpiryDays
	}
	return &Engine{nearExpiryDays: nearExpiryDays}
}

// Regenerate reevalúa todas las reglas y reemplaza el conjunto de alertas:
// las reconocidas se conservan, las no reconocidas se descartan y quedan las
// de la evaluación fresca. No hay dedup por causa: re-disparar la misma regla
// sobre el mismo ítem sin reconocimiento intermedio produce un id nuevo en
// cada pasada (ver DESIGN.md).
func (e *Engine) Regenerate(l *repository.Ledgers, now time.Time) {
	fresh := e.evaluate(l, now)

	merged := make([]entity.Alert, 0, len(fresh))
	for _, a := range l.Alerts {
		if a.Acknowledged {
			merged = append(merged, a)
		}
	}
	l.Alerts = append(merged, fresh...)
}

// evaluate emite el conjunto candidato de alertas, todas con acknowledged en
// false.
func (e *Engine) evaluate(l *repository.Ledgers, now time.Time) []entity.Alert {
	var out []entity.Alert

	for _, item := range l.Items {
		core := item.Core()

		// Regla 1: stock en o bajo el punto de reorden.
		if core.Quantity <= core.ReorderThreshold {
			sev := entity.SeverityHigh
			if core.Quantity == 0 {
				sev = entity.SeverityCritical
			}
			out = append(out, entity.Alert{
				ID:       uuid.New().String(),
				Kind:     entity.AlertLowStock,
				Severity: sev,
				Title:    "Stock bajo",
				Message: fmt.Sprintf("%s se está agotando (%d %s restantes)",
					core.Name, core.Quantity, core.Unit),
				RelatedID:      core.ID,
				Date:           now,
				ActionRequired: true,
			})
		}

		// Regla 2: vencimiento dentro de la ventana (o ya vencido).
		if d := stock.DaysUntil(core.ExpiryDate, now); d <= e.nearExpiryDays {
			sev := entity.SeverityMedium
			if d <= 0 {
				sev = entity.SeverityCritical
			}
			out = append(out, entity.Alert{
				ID:       uuid.New().String(),
				Kind:     entity.AlertExpiry,
				Severity: sev,
				Title:    "Alerta de vencimiento",
				Message: fmt.Sprintf("%s (Lote: %s) vence el %s",
					core.Name, core.BatchNumber, core.ExpiryDate.Format("2006-01-02")),
				RelatedID:      core.ID,
				Date:           now,
				ActionRequired: true,
			})
		}

		// Regla 3: sobreproducción de producto terminado.
		if g, ok := item.(*entity.FinishedGood); ok && g.Overproduction > 0 {
			out = append(out, entity.Alert{
				ID:       uuid.New().String(),
				Kind:     entity.AlertProduction,
				Severity: entity.SeverityMedium,
				Title:    "Sobreproducción",
				Message: fmt.Sprintf("%s tiene sobreproducción de %d unidades",
					core.Name, g.Overproduction),
				RelatedID:      core.ID,
				Date:           now,
				ActionRequired: true,
			})
		}
	}

	return out
}
