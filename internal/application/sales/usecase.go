// Package sales recibe los snapshots de órdenes de venta y transacciones que
// producen los módulos comercial y financiero. El núcleo solo los acumula:
// la aritmética de cada documento viene ya calculada por su módulo dueño.
package sales

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

// UseCase ingesta de snapshots comerciales.
type UseCase struct {
	store ports.LedgerStore
	now   stock.NowFunc
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store ports.LedgerStore, now stock.NowFunc, log *logger.Logger) *UseCase {
	return &UseCase{store: store, now: now, log: log}
}

// AddSalesOrder acumula una orden de venta para la analítica de rentabilidad.
func (uc *UseCase) AddSalesOrder(in dto.AddSalesOrderRequest) (string, error) {
	if in.TotalAmount.IsNegative() {
		return "", domain.ErrInvalidInput
	}
	orderDate, err := parseDateOr(in.OrderDate, uc.now())
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	items := make([]entity.SalesOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.SalesOrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Total:       it.Total,
		})
	}

	order := entity.SalesOrder{
		ID:             uuid.New().String(),
		CustomerID:     in.CustomerID,
		CustomerName:   in.CustomerName,
		OrderDate:      orderDate,
		Status:         in.Status,
		Items:          items,
		Subtotal:       in.Subtotal,
		DiscountAmount: in.DiscountAmount,
		TaxAmount:      in.TaxAmount,
		TotalAmount:    in.TotalAmount,
		PaymentStatus:  in.PaymentStatus,
		SalesPerson:    in.SalesPerson,
	}

	err = uc.store.Update(func(l *repository.Ledgers) error {
		l.SalesOrders = append(l.SalesOrders, order)
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.log.Debug().Str("order_id", order.ID).Msg("orden de venta recibida")
	return order.ID, nil
}

// AddTransaction acumula una transacción financiera.
func (uc *UseCase) AddTransaction(in dto.AddTransactionRequest) (string, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return "", domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return "", domain.ErrInvalidInput
	}
	date, err := parseDateOr(in.Date, uc.now())
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	tx := entity.Transaction{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Category:      in.Category,
		Amount:        in.Amount,
		Description:   in.Description,
		Date:          date,
		Reference:     in.Reference,
		PaymentMethod: in.PaymentMethod,
		Approved:      in.Approved,
	}

	err = uc.store.Update(func(l *repository.Ledgers) error {
		l.Transactions = append(l.Transactions, tx)
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.log.Debug().Str("transaction_id", tx.ID).Msg("transacción recibida")
	return tx.ID, nil
}

// parseDateOr interpreta YYYY-MM-DD; vacío usa el fallback.
func parseDateOr(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", s)
}
