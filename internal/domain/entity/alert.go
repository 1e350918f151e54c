package entity

import "time"

// Tipos de alerta operativa.
type AlertKind string

const (
	AlertLowStock   AlertKind = "low-stock"
	AlertExpiry     AlertKind = "expiry"
	AlertOverstock  AlertKind = "overstock"
	AlertQuality    AlertKind = "quality"
	AlertFinancial  AlertKind = "financial"
	AlertProduction AlertKind = "production"
)

// AlertSeverity severidad con orden total: low < medium < high < critical.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

var severityRank = map[AlertSeverity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank posición en el orden total de severidades.
func (s AlertSeverity) Rank() int { return severityRank[s] }

// Alert alerta operativa emitida únicamente por el motor de reglas.
// Acknowledged es monótono (false → true) y es la única mutación externa
// permitida; el resto del registro es inmutable.
type Alert struct {
	ID             string
	Kind           AlertKind
	Severity       AlertSeverity
	Title          string
	Message        string
	RelatedID      string // StockItem o ProductionBatch
	Date           time.Time
	ActionRequired bool
	Acknowledged   bool
}
