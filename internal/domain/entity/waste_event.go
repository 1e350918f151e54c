package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Causas de merma reconocidas.
type WasteReason string

const (
	WasteExpired        WasteReason = "expired"
	WasteDamaged        WasteReason = "damaged"
	WasteContaminated   WasteReason = "contaminated"
	WasteProductionLoss WasteReason = "production-loss"
	WasteSpillage       WasteReason = "spillage"
	WasteOther          WasteReason = "other"
)

// ValidWasteReason indica si la causa pertenece al catálogo.
func ValidWasteReason(r WasteReason) bool {
	switch r {
	case WasteExpired, WasteDamaged, WasteContaminated,
		WasteProductionLoss, WasteSpillage, WasteOther:
		return true
	}
	return false
}

// WasteEvent registro de merma. Inmutable una vez creado salvo el flag
// Approved. Value queda fijado al costo unitario vigente del ítem en el
// momento del registro y nunca se recalcula.
type WasteEvent struct {
	ID             string
	ItemID         string
	ItemName       string
	ItemKind       ItemKind
	Quantity       int64 // > 0
	Reason         WasteReason
	Value          decimal.Decimal
	Date           time.Time
	ReportedBy     string
	DisposalMethod string
	Approved       bool
}
