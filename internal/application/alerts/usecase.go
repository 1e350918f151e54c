package alerts

import (
	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/ports"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
)

// UseCase expone el listado de alertas y su reconocimiento.
type UseCase struct {
	store ports.LedgerStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store ports.LedgerStore) *UseCase {
	return &UseCase{store: store}
}

// List devuelve el conjunto de alertas vivas (reconocidas y no reconocidas).
func (uc *UseCase) List() ([]dto.AlertDTO, error) {
	var out []dto.AlertDTO
	err := uc.store.View(func(l *repository.Ledgers) error {
		out = make([]dto.AlertDTO, 0, len(l.Alerts))
		for _, a := range l.Alerts {
			out = append(out, dto.AlertDTO{
				ID:             a.ID,
				Kind:           string(a.Kind),
				Severity:       string(a.Severity),
				Title:          a.Title,
				Message:        a.Message,
				RelatedID:      a.RelatedID,
				Date:           a.Date.Format("2006-01-02"),
				ActionRequired: a.ActionRequired,
				Acknowledged:   a.Acknowledged,
			})
		}
		return nil
	})
	return out, err
}

// Acknowledge marca la alerta como reconocida (false → true, monótono).
// Reconocer una alerta ya reconocida no es error; un id inexistente sí.
// No dispara regeneración: reconocer no es una mutación de inventario.
func (uc *UseCase) Acknowledge(alertID string) error {
	return uc.store.Update(func(l *repository.Ledgers) error {
		a, ok := l.FindAlert(alertID)
		if !ok {
			return domain.ErrNotFound
		}
		a.Acknowledged = true
		return nil
	})
}
