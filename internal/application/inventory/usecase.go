// Package inventory contiene los casos de uso de alta y ajuste de ítems de
// inventario: el único camino de escritura sobre el ledger de stock.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/ports"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/domain/stock"
	"github.com/jhoicas/pharma-erp-api/pkg/logger"
)

// Thresholds umbrales de reorden por defecto por clase de ítem. El producto
// terminado sin umbral explícito recibe FinishedDefault; las materias primas
// exigen el umbral en la petición.
type Thresholds struct {
	FinishedDefault int64
}

// UseCase caso de uso de inventario. Toda mutación pasa por
// store.UpdateInventory, que reclasifica y regenera alertas de forma síncrona
// antes de devolver el control.
type UseCase struct {
	store      ports.LedgerStore
	classifier stock.Classifier
	thresholds Thresholds
	now        stock.NowFunc
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store ports.LedgerStore, classifier stock.Classifier, thresholds Thresholds, now stock.NowFunc, log *logger.Logger) *UseCase {
	return &UseCase{
		store:      store,
		classifier: classifier,
		thresholds: thresholds,
		now:        now,
		log:        log,
	}
}

// AddStockItem registra un ítem nuevo. El status no se acepta como entrada:
// lo deriva el clasificador con los hechos del propio ítem.
func (uc *UseCase) AddStockItem(in dto.AddStockItemRequest) (dto.StockItemDTO, error) {
	if in.Name == "" || in.Unit == "" || in.Quantity < 0 || in.UnitCost.IsNegative() {
		return dto.StockItemDTO{}, domain.ErrInvalidInput
	}
	expiry, err := time.Parse("2006-01-02", in.ExpiryDate)
	if err != nil {
		return dto.StockItemDTO{}, domain.ErrInvalidInput
	}

	now := uc.now()

	var threshold int64
	switch entity.ItemKind(in.Kind) {
	case entity.ItemKindRaw:
		// Materia prima: el umbral es obligatorio y explícito.
		if in.ReorderThreshold == nil || *in.ReorderThreshold < 0 {
			return dto.StockItemDTO{}, domain.ErrInvalidInput
		}
		threshold = *in.ReorderThreshold
	case entity.ItemKindFinished:
		threshold = uc.thresholds.FinishedDefault
		if in.ReorderThreshold != nil {
			if *in.ReorderThreshold < 0 {
				return dto.StockItemDTO{}, domain.ErrInvalidInput
			}
			threshold = *in.ReorderThreshold
		}
	default:
		return dto.StockItemDTO{}, domain.ErrInvalidInput
	}

	core := entity.ItemCore{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Quantity:         in.Quantity,
		Unit:             in.Unit,
		UnitCost:         in.UnitCost,
		ReorderThreshold: threshold,
		ExpiryDate:       expiry,
		BatchNumber:      in.BatchNumber,
		Status:           uc.classifier.Classify(in.Quantity, threshold, expiry, now),
		LastUpdated:      now,
	}

	var item entity.StockItem
	if entity.ItemKind(in.Kind) == entity.ItemKindRaw {
		item = &entity.RawMaterial{
			ItemCore:     core,
			Supplier:     in.Supplier,
			Location:     in.Location,
			QualityGrade: in.QualityGrade,
		}
	} else {
		item = &entity.FinishedGood{
			ItemCore:       core,
			SKU:            in.SKU,
			Category:       in.Category,
			SellingPrice:   in.SellingPrice,
			DemandForecast: in.DemandForecast,
			ActualSales:    in.ActualSales,
			Overproduction: in.Overproduction,
		}
	}

	err = uc.store.UpdateInventory(func(l *repository.Ledgers) error {
		l.Items = append(l.Items, item)
		return nil
	})
	if err != nil {
		return dto.StockItemDTO{}, err
	}

	uc.log.Info().
		Str("item_id", core.ID).
		Str("kind", in.Kind).
		Str("status", string(core.Status)).
		Msg("ítem de inventario registrado")

	return ItemToDTO(item), nil
}

// AdjustStock aplica un delta a la cantidad del ítem. La cantidad resultante
// se recorta en 0 (un ajuste negativo nunca deja stock negativo) y el status
// se rederiva con el clasificador en la misma mutación.
func (uc *UseCase) AdjustStock(itemID string, delta int64) (dto.StockItemDTO, error) {
	var out dto.StockItemDTO
	err := uc.store.UpdateInventory(func(l *repository.Ledgers) error {
		item, ok := l.FindItem(itemID)
		if !ok {
			return domain.ErrNotFound
		}
		core := item.Core()
		now := uc.now()

		qty := core.Quantity + delta
		if qty < 0 {
			qty = 0
		}
		core.Quantity = qty
		core.Status = uc.classifier.Classify(qty, core.ReorderThreshold, core.ExpiryDate, now)
		core.LastUpdated = now

		out = ItemToDTO(item)
		return nil
	})
	if err != nil {
		return dto.StockItemDTO{}, err
	}

	uc.log.Debug().
		Str("item_id", itemID).
		Int64("delta", delta).
		Str("status", out.Status).
		Msg("stock ajustado")

	return out, nil
}

// List devuelve todos los ítems (materias primas y producto terminado).
func (uc *UseCase) List() ([]dto.StockItemDTO, error) {
	var out []dto.StockItemDTO
	err := uc.store.View(func(l *repository.Ledgers) error {
		out = make([]dto.StockItemDTO, 0, len(l.Items))
		for _, item := range l.Items {
			out = append(out, ItemToDTO(item))
		}
		return nil
	})
	return out, err
}

// ItemToDTO proyecta la variante al DTO plano de la capa HTTP, resolviendo el
// discriminante con un type switch exhaustivo.
func ItemToDTO(item entity.StockItem) dto.StockItemDTO {
	core := item.Core()
	out := dto.StockItemDTO{
		ID:               core.ID,
		Kind:             string(item.Kind()),
		Name:             core.Name,
		Quantity:         core.Quantity,
		Unit:             core.Unit,
		UnitCost:         core.UnitCost,
		ReorderThreshold: core.ReorderThreshold,
		ExpiryDate:       core.ExpiryDate.Format("2006-01-02"),
		BatchNumber:      core.BatchNumber,
		Status:           string(core.Status),
		LastUpdated:      core.LastUpdated.Format("2006-01-02"),
	}

	switch v := item.(type) {
	case *entity.RawMaterial:
		out.Supplier = v.Supplier
		out.Location = v.Location
		out.QualityGrade = v.QualityGrade
	case *entity.FinishedGood:
		out.SKU = v.SKU
		out.Category = v.Category
		out.SellingPrice = v.SellingPrice
		out.DemandForecast = v.DemandForecast
		out.ActualSales = v.ActualSales
		out.Overproduction = v.Overproduction
	}
	return out
}
