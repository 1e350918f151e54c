package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction movimiento financiero del módulo de finanzas, consumido por el
// núcleo solo como snapshot de lectura.
type Transaction struct {
	ID            string
	Type          string // income | expense
	Category      string
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
	Reference     string
	PaymentMethod string // cash | bank | cheque | online
	Approved      bool
}
