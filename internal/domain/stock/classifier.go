// Package stock contiene el servicio de dominio que deriva el estado de ciclo
// de vida de un ítem a partir de sus hechos crudos (cantidad, punto de
// reorden, fecha de vencimiento).
package stock

import (
	"time"

	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
)

// NowFunc provee la hora actual. Se inyecta en lugar de llamar time.Now
// directamente para que la aritmética de vencimientos sea determinista en
// tests.
type NowFunc func() time.Time

// DefaultNearExpiryDays ventana de pre-vencimiento por defecto.
const DefaultNearExpiryDays = 30

// Classifier clasificador puro de estado de stock. Sin efectos secundarios:
// misma entrada, misma salida, cuantas veces se llame.
type Classifier struct {
	nearExpiryDays int
}

// NewClassifier construye el clasificador con la ventana de pre-vencimiento
// indicada (días); valores no positivos caen al default de 30.
func NewClassifier(nearExpiryDays int) Classifier {
	if nearExpiryDays <= 0 {
		nearExpiryDays = DefaultNearExpiryDays
	}
	return Classifier{nearExpiryDays: nearExpiryDays}
}

// Classify evalúa las reglas en orden; gana la primera que aplica. El orden es
// una decisión de diseño y no es incidental: un ítem agotado y vencido se
// reporta como agotado.
//
//  1. quantity == 0                → out-of-stock
//  2. días a vencer <= 0           → expired
//  3. días a vencer <= ventana     → near-expiry
//  4. quantity <= reorderThreshold → low-stock
//  5. resto                        → in-stock
func (c Classifier) Classify(quantity, reorderThreshold int64, expiryDate, now time.Time) entity.StockStatus {
	switch {
	case quantity == 0:
		return entity.StatusOutOfStock
	case DaysUntil(expiryDate, now) <= 0:
		return entity.StatusExpired
	case DaysUntil(expiryDate, now) <= c.nearExpiryDays:
		return entity.StatusNearExpiry
	case quantity <= reorderThreshold:
		return entity.StatusLowStock
	default:
		return entity.StatusInStock
	}
}

// NearExpiryDays ventana configurada, en días.
func (c Classifier) NearExpiryDays() int { return c.nearExpiryDays }

// DaysUntil días calendario entre now y expiry, truncando hacia el día
// anterior: las horas dentro del día no cuentan, solo el cambio de fecha.
func DaysUntil(expiry, now time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(n).Hours() / 24)
}
