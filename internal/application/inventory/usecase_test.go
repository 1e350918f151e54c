package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pharma-erp-api/internal/application/alerts"
	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/inventory"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
	"github.com/jhoicas/pharma-erp-api/internal/domain/stock"
	"github.com/jhoicas/pharma-erp-api/internal/infrastructure/memory"
	"github.com/jhoicas/pharma-erp-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: almacén real + motor de alertas real, reloj congelado.
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func frozenNow() time.Time { return testNow }

func newInventoryUC(t *testing.T) (*inventory.UseCase, *alerts.UseCase) {
	t.Helper()
	engine := alerts.NewEngine(30)
	store := memory.NewStore(engine, frozenNow)
	uc := inventory.NewUseCase(store, stock.NewClassifier(30),
		inventory.Thresholds{FinishedDefault: 50}, frozenNow, logger.Nop())
	return uc, alerts.NewUseCase(store)
}

func threshold(n int64) *int64 { return &n }

func rawRequest(qty, reorder int64, expiryDays int) dto.AddStockItemRequest {
	return dto.AddStockItemRequest{
		Kind:             string(entity.ItemKindRaw),
		Name:             "Óxido de Magnesio",
		Quantity:         qty,
		Unit:             "kg",
		UnitCost:         decimal.NewFromInt(1575),
		ReorderThreshold: threshold(reorder),
		ExpiryDate:       testNow.AddDate(0, 0, expiryDays).Format("2006-01-02"),
		BatchNumber:      "MG-2024-002",
		Supplier:         "Lahore Pharma Supplies",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStockItem_StatusDerivado(t *testing.T) {
	uc, _ := newInventoryUC(t)

	item, err := uc.AddStockItem(rawRequest(500, 100, 400))
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusInStock), item.Status,
		"el status lo deriva el clasificador, no la entrada")
	assert.NotEmpty(t, item.ID)
}

func TestAddStockItem_Validacion(t *testing.T) {
	uc, _ := newInventoryUC(t)

	cases := []struct {
		name   string
		mutate func(*dto.AddStockItemRequest)
	}{
		{"clase desconocida", func(r *dto.AddStockItemRequest) { r.Kind = "semi" }},
		{"cantidad negativa", func(r *dto.AddStockItemRequest) { r.Quantity = -1 }},
		{"sin nombre", func(r *dto.AddStockItemRequest) { r.Name = "" }},
		{"fecha inválida", func(r *dto.AddStockItemRequest) { r.ExpiryDate = "30-06-2025" }},
		{"materia prima sin umbral", func(r *dto.AddStockItemRequest) { r.ReorderThreshold = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := rawRequest(500, 100, 400)
			tc.mutate(&req)
			_, err := uc.AddStockItem(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestAddStockItem_UmbralPorDefectoTerminado el producto terminado sin umbral
// explícito recibe el default configurado.
func TestAddStockItem_UmbralPorDefectoTerminado(t *testing.T) {
	uc, _ := newInventoryUC(t)

	item, err := uc.AddStockItem(dto.AddStockItemRequest{
		Kind:         string(entity.ItemKindFinished),
		Name:         "Vitamina C 1000mg",
		Quantity:     2500,
		Unit:         "frascos",
		UnitCost:     decimal.NewFromInt(850),
		ExpiryDate:   testNow.AddDate(0, 0, 400).Format("2006-01-02"),
		SKU:          "VIT-C-1000",
		SellingPrice: decimal.NewFromInt(1599),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), item.ReorderThreshold)
}

func TestAdjustStock_RecorteEnCero(t *testing.T) {
	uc, _ := newInventoryUC(t)
	item, err := uc.AddStockItem(rawRequest(30, 100, 400))
	require.NoError(t, err)

	adjusted, err := uc.AdjustStock(item.ID, -80)
	require.NoError(t, err)
	assert.Equal(t, int64(0), adjusted.Quantity,
		"un ajuste negativo nunca deja cantidad negativa")
	assert.Equal(t, string(entity.StatusOutOfStock), adjusted.Status)
}

func TestAdjustStock_NoEncontrado(t *testing.T) {
	uc, _ := newInventoryUC(t)
	_, err := uc.AdjustStock("no-existe", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario extremo a extremo: mutación de inventario → reclasificación →
// regeneración síncrona de alertas.
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_EscenarioCompleto(t *testing.T) {
	uc, alertsUC := newInventoryUC(t)

	// Materia prima con cantidad igual al umbral: nace low-stock y con una
	// alerta low-stock de severidad high.
	item, err := uc.AddStockItem(rawRequest(100, 100, 400))
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusLowStock), item.Status)

	list, err := alertsUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "debe existir exactamente una alerta low-stock")
	assert.Equal(t, string(entity.AlertLowStock), list[0].Kind)
	assert.Equal(t, string(entity.SeverityHigh), list[0].Severity)
	assert.Equal(t, item.ID, list[0].RelatedID)

	// Consumir todo el stock: out-of-stock y la alerta escala a critical.
	adjusted, err := uc.AdjustStock(item.ID, -100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), adjusted.Quantity)
	assert.Equal(t, string(entity.StatusOutOfStock), adjusted.Status)

	list, err = alertsUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, string(entity.SeverityCritical), list[0].Severity,
		"con cantidad cero la severidad debe escalar a critical")
}
