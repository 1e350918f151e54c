package dto

// AlertDTO proyección de una alerta operativa.
type AlertDTO struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	Severity       string `json:"severity"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	RelatedID      string `json:"related_id,omitempty"`
	Date           string `json:"date"`
	ActionRequired bool   `json:"action_required"`
	Acknowledged   bool   `json:"acknowledged"`
}
