package production_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/production"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/infrastructure/memory"
	"github.com/jhoicas/pharma-erp-api/pkg/logger"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func frozenNow() time.Time { return testNow }

// newProductionUC almacén real sin motor de alertas (la producción no
// regenera alertas) con una materia prima sembrada para el costeo.
func newProductionUC(t *testing.T) (*production.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(nil, frozenNow)
	require.NoError(t, store.Update(func(l *repository.Ledgers) error {
		l.Items = append(l.Items, &entity.RawMaterial{
			ItemCore: entity.ItemCore{
				ID:       "mat-1",
				Name:     "Ácido Ascórbico",
				Quantity: 500,
				Unit:     "kg",
				UnitCost: decimal.NewFromInt(100),
			},
		})
		return nil
	}))
	return production.NewUseCase(store, frozenNow, logger.Nop()), store
}

func planRequest(planned int64) dto.PlanProductionRequest {
	return dto.PlanProductionRequest{
		ProductID:       "prod-1",
		ProductName:     "Vitamina C 1000mg",
		BatchNumber:     "VCT-2024-001",
		PlannedQuantity: planned,
		Materials: []dto.PlanMaterialLine{
			{MaterialID: "mat-1", PlannedQty: 20},
		},
		LaborCost:    decimal.NewFromInt(500),
		OverheadCost: decimal.NewFromInt(300),
		Supervisor:   "Dr. Ahmed Khan",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Planeación y costeo
// ──────────────────────────────────────────────────────────────────────────────

func TestPlan_CosteoATiempoDePlaneacion(t *testing.T) {
	uc, _ := newProductionUC(t)

	batch, err := uc.Plan(planRequest(1000))
	require.NoError(t, err)

	// 20 kg × 100 + 500 labor + 300 overhead = 2800
	assert.True(t, decimal.NewFromInt(2800).Equal(batch.TotalCost),
		"el costo total se fija al planear con los costos unitarios vigentes")
	assert.Equal(t, string(entity.ProductionPlanned), batch.Status)
	assert.True(t, batch.YieldPercentage.IsZero(), "yield es 0 mientras no se complete")
}

func TestPlan_Validacion(t *testing.T) {
	uc, _ := newProductionUC(t)

	_, err := uc.Plan(planRequest(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"plannedQuantity debe ser > 0; es también la guarda de la división del yield")

	req := planRequest(100)
	req.Materials[0].MaterialID = "no-existe"
	_, err = uc.Plan(req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_YieldYMermaPorLinea(t *testing.T) {
	uc, _ := newProductionUC(t)

	batch, err := uc.Plan(planRequest(1000))
	require.NoError(t, err)
	_, err = uc.Start(batch.ID)
	require.NoError(t, err)

	done, err := uc.Complete(batch.ID, dto.CompleteProductionRequest{
		ActualQuantity: 950,
		MaterialActuals: []dto.MaterialActual{
			{MaterialID: "mat-1", ActualQty: 18},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(95).Equal(done.YieldPercentage),
		"950/1000×100 debe dar exactamente 95")
	assert.Equal(t, string(entity.ProductionCompleted), done.Status)
	require.Len(t, done.Materials, 1)
	assert.Equal(t, int64(2), done.Materials[0].WastageQty, "merma = planeado − real")

	// El costo no se recalcula con los consumos reales.
	assert.True(t, decimal.NewFromInt(2800).Equal(done.TotalCost))
}

func TestComplete_MermaRecortadaEnCero(t *testing.T) {
	uc, _ := newProductionUC(t)
	batch, _ := uc.Plan(planRequest(1000))
	_, err := uc.Start(batch.ID)
	require.NoError(t, err)

	// Consumo real por encima del planeado: la merma no puede ser negativa.
	done, err := uc.Complete(batch.ID, dto.CompleteProductionRequest{
		ActualQuantity: 1000,
		MaterialActuals: []dto.MaterialActual{
			{MaterialID: "mat-1", ActualQty: 25},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), done.Materials[0].WastageQty)
}

func TestTransiciones_SoloHaciaAdelante(t *testing.T) {
	uc, _ := newProductionUC(t)

	batch, err := uc.Plan(planRequest(1000))
	require.NoError(t, err)

	// planned no se puede completar directo.
	_, err = uc.Complete(batch.ID, dto.CompleteProductionRequest{ActualQuantity: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Start(batch.ID)
	require.NoError(t, err)

	// in-progress no se puede volver a iniciar.
	_, err = uc.Start(batch.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Complete(batch.ID, dto.CompleteProductionRequest{ActualQuantity: 900})
	require.NoError(t, err)

	// completed es terminal: ni cancelar ni reiniciar ni recompletar.
	_, err = uc.Cancel(batch.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.Start(batch.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.Complete(batch.ID, dto.CompleteProductionRequest{ActualQuantity: 901})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancel_DesdePlannedYEnProgreso(t *testing.T) {
	uc, _ := newProductionUC(t)

	b1, _ := uc.Plan(planRequest(100))
	out, err := uc.Cancel(b1.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ProductionCancelled), out.Status)

	b2, _ := uc.Plan(planRequest(100))
	_, err = uc.Start(b2.ID)
	require.NoError(t, err)
	_, err = uc.Cancel(b2.ID)
	require.NoError(t, err)

	// cancelled también es terminal.
	_, err = uc.Start(b1.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

// TestEfficiency_TodosLosLotes el agregado cuenta TODOS los lotes, incluidos
// los planeados con actual 0, lo que arrastra la cifra hacia abajo con lotes
// en vuelo; quien quiera otra cosa filtra por su cuenta.
func TestEfficiency_TodosLosLotes(t *testing.T) {
	uc, _ := newProductionUC(t)

	b1, _ := uc.Plan(planRequest(1000))
	_, err := uc.Start(b1.ID)
	require.NoError(t, err)
	_, err = uc.Complete(b1.ID, dto.CompleteProductionRequest{ActualQuantity: 900})
	require.NoError(t, err)

	// Segundo lote aún planeado: actual 0.
	_, err = uc.Plan(planRequest(1000))
	require.NoError(t, err)

	eff, err := uc.Efficiency()
	require.NoError(t, err)

	// 900 / 2000 × 100 = 45
	assert.True(t, decimal.NewFromInt(45).Equal(eff.Efficiency))
	// (90 + 0) / 2 = 45
	assert.True(t, decimal.NewFromInt(45).Equal(eff.AverageYield))
}

func TestEfficiency_SinLotes(t *testing.T) {
	uc, _ := newProductionUC(t)
	eff, err := uc.Efficiency()
	require.NoError(t, err)
	assert.True(t, eff.Efficiency.IsZero())
	assert.True(t, eff.AverageYield.IsZero())
}
