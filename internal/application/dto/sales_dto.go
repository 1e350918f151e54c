package dto

import "github.com/shopspring/decimal"

// ── Snapshots comerciales ─────────────────────────────────────────────────────
// Las órdenes de venta y transacciones pertenecen a los módulos de ventas y
// finanzas; el núcleo las recibe ya calculadas y no valida su aritmética.

// SalesOrderItemRequest línea de una orden de venta.
type SalesOrderItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// AddSalesOrderRequest alta de una orden de venta.
type AddSalesOrderRequest struct {
	CustomerID     string                  `json:"customer_id"`
	CustomerName   string                  `json:"customer_name"`
	OrderDate      string                  `json:"order_date"` // YYYY-MM-DD
	Status         string                  `json:"status"`
	Items          []SalesOrderItemRequest `json:"items"`
	Subtotal       decimal.Decimal         `json:"subtotal"`
	DiscountAmount decimal.Decimal         `json:"discount_amount"`
	TaxAmount      decimal.Decimal         `json:"tax_amount"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	PaymentStatus  string                  `json:"payment_status"`
	SalesPerson    string                  `json:"sales_person"`
}

// AddTransactionRequest alta de una transacción financiera.
type AddTransactionRequest struct {
	Type          string          `json:"type"` // income | expense
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Reference     string          `json:"reference"`
	PaymentMethod string          `json:"payment_method"`
	Approved      bool            `json:"approved"`
}
