// Package production implementa el ledger de lotes de producción: máquina de
// estados hacia adelante y agregados de rendimiento.
package production

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

var hundred = decimal.NewFromInt(100)

// UseCase ledger de producción. Planear/iniciar/completar/cancelar mutan el
// ledger; Efficiency es una consulta de recomputación pura.
type UseCase struct {
	store ports.LedgerStore
	now   stock.NowFunc
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store ports.LedgerStore, now stock.NowFunc, log *logger.Logger) *UseCase {
	return &UseCase{store: store, now: now, log: log}
}

// Plan crea un lote en estado planned. PlannedQuantity debe ser > 0 (esta
// validación es además la guarda del cálculo de yield al completar). El costo
// total queda fijado aquí: cantidades planeadas × costo unitario vigente de
// cada materia prima, más mano de obra y overhead. No se recalcula cuando los
// consumos reales divergen: el costeo es a tiempo de planeación.
func (uc *UseCase) Plan(in dto.PlanProductionRequest) (dto.ProductionBatchDTO, error) {
	if in.PlannedQuantity <= 0 {
		return dto.ProductionBatchDTO{}, domain.ErrInvalidInput
	}
	if in.LaborCost.IsNegative() || in.OverheadCost.IsNegative() {
		return dto.ProductionBatchDTO{}, domain.ErrInvalidInput
	}

	var out dto.ProductionBatchDTO
	err := uc.store.Update(func(l *repository.Ledgers) error {
		materials := make([]entity.MaterialLine, 0, len(in.Materials))
		materialCost := decimal.Zero
		for _, m := range in.Materials {
			if m.PlannedQty <= 0 {
				return domain.ErrInvalidInput
			}
			item, ok := l.FindItem(m.MaterialID)
			if !ok || item.Kind() != entity.ItemKindRaw {
				return domain.ErrNotFound
			}
			core := item.Core()
			materialCost = materialCost.Add(
				decimal.NewFromInt(m.PlannedQty).Mul(core.UnitCost))
			materials = append(materials, entity.MaterialLine{
				MaterialID:   core.ID,
				MaterialName: core.Name,
				PlannedQty:   m.PlannedQty,
			})
		}

		batch := &entity.ProductionBatch{
			ID:              uuid.New().String(),
			ProductID:       in.ProductID,
			ProductName:     in.ProductName,
			BatchNumber:     in.BatchNumber,
			PlannedQuantity: in.PlannedQuantity,
			Materials:       materials,
			LaborCost:       in.LaborCost,
			OverheadCost:    in.OverheadCost,
			TotalCost:       materialCost.Add(in.LaborCost).Add(in.OverheadCost),
			YieldPercentage: decimal.Zero,
			Status:          entity.ProductionPlanned,
			Supervisor:      in.Supervisor,
		}
		l.Batches = append(l.Batches, batch)
		out = BatchToDTO(batch)
		return nil
	})
	if err != nil {
		return dto.ProductionBatchDTO{}, err
	}

	uc.log.Info().
		Str("batch_id", out.ID).
		Str("product_id", in.ProductID).
		Int64("planned_quantity", in.PlannedQuantity).
		Msg("lote de producción planeado")

	return out, nil
}

// Start transición planned → in-progress.
func (uc *UseCase) Start(batchID string) (dto.ProductionBatchDTO, error) {
	var out dto.ProductionBatchDTO
	err := uc.store.Update(func(l *repository.Ledgers) error {
		batch, ok := l.FindBatch(batchID)
		if !ok {
			return domain.ErrNotFound
		}
		if batch.Status != entity.ProductionPlanned {
			return domain.ErrInvalidTransition
		}
		batch.Status = entity.ProductionInProgress
		batch.StartDate = uc.now()
		out = BatchToDTO(batch)
		return nil
	})
	if err != nil {
		return dto.ProductionBatchDTO{}, err
	}
	return out, nil
}

// Complete transición in-progress → completed. Fija la cantidad real, deriva
// yieldPercentage = actual/planned×100 (planned > 0 garantizado al crear) y
// escribe la merma por línea como max(0, planeado − real). completed es
// terminal: cantidad real, yield y consumos quedan fijados para siempre.
func (uc *UseCase) Complete(batchID string, in dto.CompleteProductionRequest) (dto.ProductionBatchDTO, error) {
	if in.ActualQuantity < 0 {
		return dto.ProductionBatchDTO{}, domain.ErrInvalidInput
	}

	var out dto.ProductionBatchDTO
	err := uc.store.Update(func(l *repository.Ledgers) error {
		batch, ok := l.FindBatch(batchID)
		if !ok {
			return domain.ErrNotFound
		}
		if batch.Status != entity.ProductionInProgress {
			return domain.ErrInvalidTransition
		}

		actualByID := make(map[string]int64, len(in.MaterialActuals))
		for _, a := range in.MaterialActuals {
			if a.ActualQty < 0 {
				return domain.ErrInvalidInput
			}
			actualByID[a.MaterialID] = a.ActualQty
		}

		batch.ActualQuantity = in.ActualQuantity
		batch.YieldPercentage = decimal.NewFromInt(in.ActualQuantity).
			Div(decimal.NewFromInt(batch.PlannedQuantity)).
			Mul(hundred)

		for i := range batch.Materials {
			line := &batch.Materials[i]
			line.ActualQty = actualByID[line.MaterialID]
			wastage := line.PlannedQty - line.ActualQty
			if wastage < 0 {
				wastage = 0
			}
			line.WastageQty = wastage
		}

		batch.Status = entity.ProductionCompleted
		batch.EndDate = uc.now()
		out = BatchToDTO(batch)
		return nil
	})
	if err != nil {
		return dto.ProductionBatchDTO{}, err
	}

	uc.log.Info().
		Str("batch_id", batchID).
		Str("yield", out.YieldPercentage.String()).
		Msg("lote de producción completado")

	return out, nil
}

// Cancel transición planned|in-progress → cancelled. cancelled es terminal.
func (uc *UseCase) Cancel(batchID string) (dto.ProductionBatchDTO, error) {
	var out dto.ProductionBatchDTO
	err := uc.store.Update(func(l *repository.Ledgers) error {
		batch, ok := l.FindBatch(batchID)
		if !ok {
			return domain.ErrNotFound
		}
		if batch.Status != entity.ProductionPlanned && batch.Status != entity.ProductionInProgress {
			return domain.ErrInvalidTransition
		}
		batch.Status = entity.ProductionCancelled
		out = BatchToDTO(batch)
		return nil
	})
	if err != nil {
		return dto.ProductionBatchDTO{}, err
	}
	return out, nil
}

// List devuelve todos los lotes.
func (uc *UseCase) List() ([]dto.ProductionBatchDTO, error) {
	var out []dto.ProductionBatchDTO
	err := uc.store.View(func(l *repository.Ledgers) error {
		out = make([]dto.ProductionBatchDTO, 0, len(l.Batches))
		for _, b := range l.Batches {
			out = append(out, BatchToDTO(b))
		}
		return nil
	})
	return out, err
}

// Efficiency agregados sobre TODOS los lotes sin filtrar por estado,
// incluidos los planeados cuyo actual es 0; con lotes en vuelo el número puede
// verse artificialmente bajo y el llamador que quiera filtrar debe hacerlo por
// su cuenta. averageYield es la media aritmética del yield por lote (0 en
// lotes no completados, lo que también arrastra la media hacia abajo).
func (uc *UseCase) Efficiency() (dto.EfficiencyDTO, error) {
	out := dto.EfficiencyDTO{
		Efficiency:   decimal.Zero,
		AverageYield: decimal.Zero,
	}
	err := uc.store.View(func(l *repository.Ledgers) error {
		if len(l.Batches) == 0 {
			return nil
		}
		var totalPlanned, totalActual int64
		yieldSum := decimal.Zero
		for _, b := range l.Batches {
			totalPlanned += b.PlannedQuantity
			totalActual += b.ActualQuantity
			yieldSum = yieldSum.Add(b.YieldPercentage)
		}
		if totalPlanned > 0 {
			out.Efficiency = decimal.NewFromInt(totalActual).
				Div(decimal.NewFromInt(totalPlanned)).
				Mul(hundred)
		}
		out.AverageYield = yieldSum.Div(decimal.NewFromInt(int64(len(l.Batches))))
		return nil
	})
	return out, err
}

// BatchToDTO proyecta el lote al DTO de la capa HTTP.
func BatchToDTO(b *entity.ProductionBatch) dto.ProductionBatchDTO {
	materials := make([]dto.MaterialLineDTO, 0, len(b.Materials))
	for _, m := range b.Materials {
		materials = append(materials, dto.MaterialLineDTO{
			MaterialID:   m.MaterialID,
			MaterialName: m.MaterialName,
			PlannedQty:   m.PlannedQty,
			ActualQty:    m.ActualQty,
			WastageQty:   m.WastageQty,
		})
	}
	out := dto.ProductionBatchDTO{
		ID:              b.ID,
		ProductID:       b.ProductID,
		ProductName:     b.ProductName,
		BatchNumber:     b.BatchNumber,
		PlannedQuantity: b.PlannedQuantity,
		ActualQuantity:  b.ActualQuantity,
		Materials:       materials,
		LaborCost:       b.LaborCost,
		OverheadCost:    b.OverheadCost,
		TotalCost:       b.TotalCost,
		YieldPercentage: b.YieldPercentage,
		Status:          string(b.Status),
		Supervisor:      b.Supervisor,
	}
	if !b.StartDate.IsZero() {
		out.StartDate = b.StartDate.Format("2006-01-02")
	}
	if !b.EndDate.IsZero() {
		out.EndDate = b.EndDate.Format("2006-01-02")
	}
	return out
}
