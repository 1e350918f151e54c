// Package waste implementa el ledger de mermas: registro inmutable de eventos
// con valor fijado al momento del registro y totales por causa.
package waste

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/ports"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/domain/stock"
	"github.com/jhoicas/pharma-erp-api/pkg/logger"
)

// UseCase ledger de mermas. No existe camino de borrado ni corrección: el
// único campo mutable de un evento ya registrado es el flag Approved.
type UseCase struct {
	store ports.LedgerStore
	now   stock.NowFunc
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store ports.LedgerStore, now stock.NowFunc, log *logger.Logger) *UseCase {
	return &UseCase{store: store, now: now, log: log}
}

// Record registra una merma. El valor se calcula con el costo unitario
// VIGENTE del ítem en este momento, no con el costo histórico al que se
// compró lo mermado, y no se recalcula nunca después.
func (uc *UseCase) Record(in dto.RecordWasteRequest) (dto.WasteEventDTO, error) {
	if in.Quantity <= 0 || !entity.ValidWasteReason(entity.WasteReason(in.Reason)) {
		return dto.WasteEventDTO{}, domain.ErrInvalidInput
	}

	var out dto.WasteEventDTO
	err := uc.store.Update(func(l *repository.Ledgers) error {
		item, ok := l.FindItem(in.ItemID)
		if !ok {
			return domain.ErrNotFound
		}
		core := item.Core()

		event := &entity.WasteEvent{
			ID:             uuid.New().String(),
			ItemID:         core.ID,
			ItemName:       core.Name,
			ItemKind:       item.Kind(),
			Quantity:       in.Quantity,
			Reason:         entity.WasteReason(in.Reason),
			Value:          decimal.NewFromInt(in.Quantity).Mul(core.UnitCost),
			Date:           uc.now(),
			ReportedBy:     in.ReportedBy,
			DisposalMethod: in.DisposalMethod,
		}
		l.WasteEvents = append(l.WasteEvents, event)
		out = eventToDTO(event)
		return nil
	})
	if err != nil {
		return dto.WasteEventDTO{}, err
	}

	uc.log.Info().
		Str("waste_id", out.ID).
		Str("item_id", in.ItemID).
		Str("reason", in.Reason).
		Str("value", out.Value.String()).
		Msg("merma registrada")

	return out, nil
}

// SetApproved cambia el flag de aprobación, la única mutación permitida sobre
// un evento ya registrado.
func (uc *UseCase) SetApproved(eventID string, approved bool) (dto.WasteEventDTO, error) {
	var out dto.WasteEventDTO
	err := uc.store.Update(func(l *repository.Ledgers) error {
		event, ok := l.FindWasteEvent(eventID)
		if !ok {
			return domain.ErrNotFound
		}
		event.Approved = approved
		out = eventToDTO(event)
		return nil
	})
	if err != nil {
		return dto.WasteEventDTO{}, err
	}
	return out, nil
}

// List devuelve todos los eventos de merma.
func (uc *UseCase) List() ([]dto.WasteEventDTO, error) {
	var out []dto.WasteEventDTO
	err := uc.store.View(func(l *repository.Ledgers) error {
		out = make([]dto.WasteEventDTO, 0, len(l.WasteEvents))
		for _, w := range l.WasteEvents {
			out = append(out, eventToDTO(w))
		}
		return nil
	})
	return out, err
}

// Totals valor total de merma y desglose por causa, recomputados del ledger
// completo en cada llamada.
func (uc *UseCase) Totals() (dto.WastageAnalyticsDTO, error) {
	out := dto.WastageAnalyticsDTO{
		TotalValue: decimal.Zero,
		ByReason:   map[string]decimal.Decimal{},
	}
	err := uc.store.View(func(l *repository.Ledgers) error {
		for _, w := range l.WasteEvents {
			out.TotalValue = out.TotalValue.Add(w.Value)
			reason := string(w.Reason)
			out.ByReason[reason] = out.ByReason[reason].Add(w.Value)
		}
		return nil
	})
	return out, err
}

func eventToDTO(w *entity.WasteEvent) dto.WasteEventDTO {
	return dto.WasteEventDTO{
		ID:             w.ID,
		ItemID:         w.ItemID,
		ItemName:       w.ItemName,
		ItemKind:       string(w.ItemKind),
		Quantity:       w.Quantity,
		Reason:         string(w.Reason),
		Value:          w.Value,
		Date:           w.Date.Format("2006-01-02"),
		ReportedBy:     w.ReportedBy,
		DisposalMethod: w.DisposalMethod,
		Approved:       w.Approved,
	}
}
