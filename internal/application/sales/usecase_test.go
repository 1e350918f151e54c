package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/sales"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/infrastructure/memory"
	"github.com/jhoicas/pharma-erp-api/pkg/logger"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newSalesUC(t *testing.T) (*sales.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(nil, func() time.Time { return testNow })
	return sales.NewUseCase(store, func() time.Time { return testNow }, logger.Nop()), store
}

func TestAddSalesOrder_Acumula(t *testing.T) {
	uc, store := newSalesUC(t)

	id, err := uc.AddSalesOrder(dto.AddSalesOrderRequest{
		CustomerName: "Farmacia Central",
		OrderDate:    "2024-06-10",
		TotalAmount:  decimal.NewFromInt(179247),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, store.View(func(l *repository.Ledgers) error {
		require.Len(t, l.SalesOrders, 1)
		assert.Equal(t, id, l.SalesOrders[0].ID)
		return nil
	}))
}

func TestAddSalesOrder_FechaVaciaUsaReloj(t *testing.T) {
	uc, store := newSalesUC(t)

	_, err := uc.AddSalesOrder(dto.AddSalesOrderRequest{
		TotalAmount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	require.NoError(t, store.View(func(l *repository.Ledgers) error {
		assert.Equal(t, testNow, l.SalesOrders[0].OrderDate)
		return nil
	}))
}

func TestAddTransaction_Validacion(t *testing.T) {
	uc, _ := newSalesUC(t)

	_, err := uc.AddTransaction(dto.AddTransactionRequest{
		Type: "transferencia", Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el tipo debe ser income o expense")

	_, err = uc.AddTransaction(dto.AddTransactionRequest{
		Type: "income", Amount: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	id, err := uc.AddTransaction(dto.AddTransactionRequest{
		Type: "income", Category: "Product Sales", Amount: decimal.NewFromInt(1500000),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
