package dto

import "github.com/shopspring/decimal"

// RecordWasteRequest registro de una merma. El valor no se acepta como
// entrada: se fija con el costo unitario vigente del ítem.
type RecordWasteRequest struct {
	ItemID         string `json:"item_id"`
	Quantity       int64  `json:"quantity"` // > 0
	Reason         string `json:"reason"`
	ReportedBy     string `json:"reported_by"`
	DisposalMethod string `json:"disposal_method"`
}

// ApproveWasteRequest cambia el flag de aprobación (única mutación permitida).
type ApproveWasteRequest struct {
	Approved bool `json:"approved"`
}

// WasteEventDTO proyección de una merma.
type WasteEventDTO struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name"`
	ItemKind       string          `json:"item_kind"`
	Quantity       int64           `json:"quantity"`
	Reason         string          `json:"reason"`
	Value          decimal.Decimal `json:"value"`
	Date           string          `json:"date"`
	ReportedBy     string          `json:"reported_by"`
	DisposalMethod string          `json:"disposal_method"`
	Approved       bool            `json:"approved"`
}

// WastageAnalyticsDTO totales de merma acumulados.
type WastageAnalyticsDTO struct {
	TotalValue decimal.Decimal            `json:"total_value"`
	ByReason   map[string]decimal.Decimal `json:"by_reason"`
}
